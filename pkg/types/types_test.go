// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() ArticleDocument {
	return ArticleDocument{
		Title:      "Coffee Brewing",
		TitleImage: "coffee cup",
		Content: []Section{
			{Heading: "Beans", Content: "Pick fresh beans.", Image: "coffee beans"},
			{Heading: "Grind", Content: "Grind just before brewing.", Image: "coffee grinder"},
		},
	}
}

func TestArticleDocument_Validate(t *testing.T) {
	doc := validDoc()
	require.NoError(t, doc.Validate())

	doc.Title = ""
	assert.ErrorContains(t, doc.Validate(), "title is required")

	doc.Title = " \t\n"
	assert.ErrorContains(t, doc.Validate(), "title must not be blank")

	doc = validDoc()
	doc.Content = nil
	assert.ErrorContains(t, doc.Validate(), "at least one section")

	doc = validDoc()
	doc.Content[1].Heading = ""
	assert.ErrorContains(t, doc.Validate(), "heading is required")
}

func TestArticleDocument_ImageQueries(t *testing.T) {
	doc := validDoc()
	queries := doc.ImageQueries()
	assert.Equal(t, []string{"coffee cup", "coffee beans", "coffee grinder"}, queries)
	assert.Equal(t, doc.TitleImage, queries[TitleImageIndex])
	assert.Equal(t, doc.Content[1].Image, queries[SectionImageIndex(1)])
}

func TestLicense_Valid(t *testing.T) {
	assert.True(t, LicenseAny.Valid())
	assert.True(t, LicenseShareCommercially.Valid())
	assert.False(t, License("Proprietary").Valid())
}

func TestPipelineConfig_Validate(t *testing.T) {
	cfg := DefaultPipelineConfig()
	require.NoError(t, cfg.Validate())

	cfg.AI.Provider = "deepseek"
	require.Error(t, cfg.Validate())
	cfg.AI.BaseURL = "https://api.deepseek.com"
	require.NoError(t, cfg.Validate())

	cfg = DefaultPipelineConfig()
	cfg.Images.Backend = ImageBackendSearXNG
	require.Error(t, cfg.Validate())
	cfg.Images.SearXNGURL = "http://localhost:8888"
	require.NoError(t, cfg.Validate())

	cfg = DefaultPipelineConfig()
	cfg.Output.Dir = ""
	require.Error(t, cfg.Validate())
}

func TestMalformedGenerationError(t *testing.T) {
	cause := errors.New("invalid character 'H'")
	err := error(&MalformedGenerationError{Issues: []string{"/: not JSON", "/title: empty"}, Err: cause})

	assert.ErrorIs(t, err, ErrMalformedGeneration)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "malformed generation: /: not JSON; /title: empty", err.Error())
}

func TestImageAcquisitionError(t *testing.T) {
	err := error(&ImageAcquisitionError{Index: 2, Query: "coffee grinder", Attempts: 3, Err: ErrImageDownload})

	assert.ErrorIs(t, err, ErrImageAcquisition)
	assert.ErrorIs(t, err, ErrImageDownload)
	assert.Contains(t, err.Error(), `slot 2 ("coffee grinder") after 3 attempts`)
}
