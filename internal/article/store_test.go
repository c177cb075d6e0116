// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/article-engine/pkg/types"
)

func testDoc() *types.ArticleDocument {
	return &types.ArticleDocument{
		Title:       "Coffee Brewing",
		Date:        "March 05, 2024",
		Tags:        []string{"coffee"},
		Description: "How to brew coffee",
		TitleImage:  "coffee cup",
		Content: []types.Section{
			{Heading: "Beans", Content: "Pick fresh beans.", Image: "coffee beans"},
		},
	}
}

func TestFolderName(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Coffee Brewing", "Coffee_Brewing"},
		{"  Tea 101  ", "Tea_101"},
		{"Either/Or: A Guide", "EitherOr:_A_Guide"},
		{`back\slash`, "backslash"},
		{"..", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FolderName(tt.title), tt.title)
	}
}

func TestStore_DocumentRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := testDoc()

	dir, err := s.Create(doc.Title)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.BaseDir, "Coffee_Brewing"), dir)

	require.NoError(t, s.WriteDocument(dir, doc))
	got, err := s.ReadDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	data, err := os.ReadFile(filepath.Join(dir, DocumentFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title_image": "coffee cup"`)
}

func TestStore_CreateRejectsUnusableTitle(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Create("  ")
	require.Error(t, err)
}

func TestStore_ReadDocumentRejectsInvalid(t *testing.T) {
	s := NewStore(t.TempDir())
	dir := t.TempDir()

	_, err := s.ReadDocument(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentFile),
		[]byte(`{"title":"t","content":[],"extra":1}`), 0o644))
	_, err = s.ReadDocument(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentFile),
		[]byte(`{"title":"t","content":[]}`), 0o644))
	_, err = s.ReadDocument(dir)
	require.Error(t, err)
}

func TestStore_WriteMarkdown(t *testing.T) {
	s := NewStore(t.TempDir())
	dir, err := s.Create("Coffee Brewing")
	require.NoError(t, err)

	p, err := s.WriteMarkdown(dir, "# hi\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Coffee_Brewing.md"), p)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(data))
}

func TestStore_Assets(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := testDoc()
	dir, err := s.Create(doc.Title)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(ImagePath(dir, 1), []byte("png"), 0o644))

	assets, err := s.Assets(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, []types.ImageAsset{{Index: 1, Path: filepath.Join(dir, "1.png")}}, assets)
}
