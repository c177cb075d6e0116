// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/article-engine/pkg/types"
)

func TestParseDocument_Valid(t *testing.T) {
	doc, err := ParseDocument(coffeeReply)
	require.NoError(t, err)

	again, err := json.Marshal(doc)
	require.NoError(t, err)
	var back types.ArticleDocument
	require.NoError(t, json.Unmarshal(again, &back))
	assert.Equal(t, *doc, back)
}

func TestParseDocument_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		issue string
	}{
		{"empty", "  ", "empty"},
		{"prose", "Sure! Here is the article.", "not a single JSON value"},
		{"fenced", "```json\n" + coffeeReply + "\n```", "not a single JSON value"},
		{"trailing data", coffeeReply + "\nThanks!", "not a single JSON value"},
		{"two objects", coffeeReply + coffeeReply, "not a single JSON value"},
		{"array", `[]`, "/"},
		{"missing content", `{"title":"t","date":"d","tags":[],"description":"x","title_image":"i"}`, "content"},
		{"empty content", `{"title":"t","date":"d","tags":[],"description":"x","title_image":"i","content":[]}`, "/content"},
		{"empty title", `{"title":"","date":"d","tags":[],"description":"x","title_image":"i","content":[{"heading":"h","content":"c","image":"q"}]}`, "/title"},
		{"blank title", `{"title":"   ","date":"d","tags":[],"description":"x","title_image":"i","content":[{"heading":"h","content":"c","image":"q"}]}`, "/title"},
		{"wrong type", `{"title":"t","date":"d","tags":"coffee","description":"x","title_image":"i","content":[{"heading":"h","content":"c","image":"q"}]}`, "/tags"},
		{"unknown field", `{"title":"t","date":"d","tags":[],"description":"x","title_image":"i","author":"me","content":[{"heading":"h","content":"c","image":"q"}]}`, "author"},
		{"section missing image", `{"title":"t","date":"d","tags":[],"description":"x","title_image":"i","content":[{"heading":"h","content":"c"}]}`, "/content/0"},
		{"blank heading", `{"title":"t","date":"d","tags":[],"description":"x","title_image":"i","content":[{"heading":"","content":"c","image":"q"}]}`, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(tt.input)
			require.Error(t, err)
			assert.Nil(t, doc)
			require.ErrorIs(t, err, types.ErrMalformedGeneration)

			var mErr *types.MalformedGenerationError
			require.True(t, errors.As(err, &mErr))
			require.NotEmpty(t, mErr.Issues)
			assert.Contains(t, mErr.Error(), tt.issue)
		})
	}
}
