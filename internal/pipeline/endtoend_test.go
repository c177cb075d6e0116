// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/article-engine/internal/article"
	"github.com/pdiddy/article-engine/internal/generate"
	"github.com/pdiddy/article-engine/internal/llm"
)

type cannedLLM struct{ reply string }

func (c cannedLLM) Complete(context.Context, llm.Request) (string, error) {
	return c.reply, nil
}

func TestRunTopic_EndToEnd(t *testing.T) {
	reply := `{
	  "title": "Coffee Brewing Methods",
	  "date": "March 05, 2024",
	  "tags": ["coffee", "brewing"],
	  "description": "Pour-over, French press and espresso compared.",
	  "title_image": "coffee brewing equipment",
	  "content": [
	    {"heading": "Pour-Over", "content": "Slow and clean.", "image": "pour over coffee"},
	    {"heading": "French Press", "content": "Full bodied.", "image": "french press"}
	  ]
	}`
	gen, err := generate.New(cannedLLM{reply: reply}, generate.DefaultSyntax(),
		generate.WithClock(func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)

	base := t.TempDir()
	store := article.NewStore(base)
	r := NewRunner(gen, &fakeAcquirer{}, store, testPipelineConfig(), nil)

	res, err := r.RunTopic(context.Background(), "coffee brewing methods")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Document.Title)
	assert.GreaterOrEqual(t, len(res.Document.Content), 1)

	saved, err := store.ReadDocument(res.Dir)
	require.NoError(t, err)
	assert.Equal(t, res.Document, saved)

	md, err := os.ReadFile(res.MarkdownPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "---\ntitle: \""))
	assert.Contains(t, string(md), "![french press prompt](/img/posts/Coffee_Brewing_Methods/2.png \"french press\")")
}
