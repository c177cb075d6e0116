// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/article-engine/internal/llm"
	"github.com/pdiddy/article-engine/pkg/types"
)

const articleHTML = `<!DOCTYPE html>
<html><head><title>Espresso at Home</title></head>
<body>
<nav>Home | About | Contact</nav>
<article>
<h1>Espresso at Home</h1>
<p>Maria Rossi opened Caffè Lungo in Milan on March 3, 2021, and has trained hundreds of baristas since.</p>
<p>"Grind fresh and weigh everything," Rossi said during a workshop hosted by Lavazza in Turin.</p>
<p>The shop now roasts its own beans sourced from growers in Huila, Colombia, and serves a seasonal single origin.</p>
<p>Rossi recommends a ratio of one to two for a classic shot, pulled over roughly twenty eight seconds.</p>
</article>
<footer>Copyright 2024</footer>
</body></html>`

type fakeLLM struct {
	reply   string
	err     error
	lastReq llm.Request
	calls   int
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	return f.reply, f.err
}

type stubLoader struct {
	page Page
	err  error
}

func (s stubLoader) Load(context.Context, string) (Page, error) {
	return s.page, s.err
}

func testLoader() *WebLoader {
	return NewWebLoader(types.SummaryConfig{
		HTTPConfig:    types.HTTPConfig{Timeout: 5 * time.Second},
		MaxPageSizeMB: 1,
	})
}

func TestWebLoader_ExtractsArticle(t *testing.T) {
	var gotUA, gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	page, err := testLoader().Load(context.Background(), srv.URL+"/espresso")
	require.NoError(t, err)

	assert.Equal(t, types.DefaultUserAgent, gotUA)
	assert.Equal(t, "https://www.google.com/", gotReferer)
	assert.Equal(t, "Espresso at Home", page.Title)
	assert.Contains(t, page.Text, "Maria Rossi")
	assert.Contains(t, page.Text, "Huila, Colombia")
}

func TestWebLoader_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/huge":
			_, _ = w.Write([]byte("<html><body><p>" + strings.Repeat("a", 2*1024*1024) + "</p></body></html>"))
		case "/empty":
			_, _ = w.Write([]byte("<html><body><script>var x = 1;</script></body></html>"))
		}
	}))
	defer srv.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"not found", srv.URL + "/missing"},
		{"too large", srv.URL + "/huge"},
		{"no text", srv.URL + "/empty"},
		{"bad scheme", "ftp://example.com/file"},
		{"not a url", "coffee brewing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testLoader().Load(context.Background(), tt.url)
			require.ErrorIs(t, err, types.ErrFetch)
		})
	}
}

func TestSummarize(t *testing.T) {
	fake := &fakeLLM{reply: "  Maria Rossi opened Caffè Lungo in Milan.  "}
	s := New(stubLoader{page: Page{Title: "Espresso", Text: "Maria Rossi opened Caffè Lungo."}}, fake, 0, nil)

	summary, err := s.Summarize(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Maria Rossi opened Caffè Lungo in Milan.", summary)
	assert.Contains(t, fake.lastReq.Prompt, "Title: Espresso")
	assert.Contains(t, fake.lastReq.Prompt, "Maria Rossi opened Caffè Lungo.")
	assert.Contains(t, fake.lastReq.Prompt, "quotation")
}

func TestSummarize_FetchErrorSkipsService(t *testing.T) {
	fake := &fakeLLM{reply: "x"}
	s := New(stubLoader{err: types.ErrFetch}, fake, 0, nil)

	_, err := s.Summarize(context.Background(), "https://example.com")
	require.ErrorIs(t, err, types.ErrFetch)
	assert.Zero(t, fake.calls)
}

func TestSummarize_ServiceErrors(t *testing.T) {
	page := stubLoader{page: Page{Text: "content"}}

	s := New(page, &fakeLLM{err: errors.New("rate limited")}, 0, nil)
	_, err := s.Summarize(context.Background(), "https://example.com")
	require.ErrorIs(t, err, types.ErrGeneration)

	s = New(page, &fakeLLM{reply: "   "}, 0, nil)
	_, err = s.Summarize(context.Background(), "https://example.com")
	require.ErrorIs(t, err, types.ErrGeneration)
}

func TestSummarize_TruncatesInput(t *testing.T) {
	fake := &fakeLLM{reply: "ok"}
	s := New(stubLoader{page: Page{Text: strings.Repeat("é", 50) + "TAIL"}}, fake, 50, nil)

	_, err := s.Summarize(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.NotContains(t, fake.lastReq.Prompt, "TAIL")
}

func TestTruncate(t *testing.T) {
	out, cut := Truncate("héllo", 2)
	assert.True(t, cut)
	assert.Equal(t, "hé", out)

	out, cut = Truncate("héllo", 0)
	assert.False(t, cut)
	assert.Equal(t, "héllo", out)

	out, cut = Truncate("hi", 5)
	assert.False(t, cut)
	assert.Equal(t, "hi", out)
}
