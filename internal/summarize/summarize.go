// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize fetches a web page and condenses it into detailed notes
// that keep the page's named entities intact.
package summarize

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/pdiddy/article-engine/internal/llm"
	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/pkg/types"
)

const systemPrompt = "You are an SEO specialist who writes faithful, detailed summaries of web pages."

var promptTmpl = template.Must(template.New("summarize").Parse(`Write a very detailed summary of the following page content.
Keep every name, quotation, date, place, company and other entity exactly as written.
Do not invent facts that are not in the content.
{{if .Title}}
Title: {{.Title}}
{{end}}
Content:
{{.Text}}`))

// Summarizer produces notes for the generator's summary mode.
type Summarizer struct {
	loader   PageLoader
	llm      llm.TextGenerator
	maxChars int
	log      logging.Logger
}

// New returns a Summarizer. maxChars caps the page text sent to the model;
// zero disables the cap.
func New(loader PageLoader, gen llm.TextGenerator, maxChars int, log logging.Logger) *Summarizer {
	if log == nil {
		log = logging.NoOp()
	}
	return &Summarizer{loader: loader, llm: gen, maxChars: maxChars, log: log}
}

// Summarize fetches rawURL and returns the model's summary. Fetch failures
// wrap types.ErrFetch; service failures and empty summaries wrap
// types.ErrGeneration.
func (s *Summarizer) Summarize(ctx context.Context, rawURL string) (string, error) {
	start := time.Now()
	page, err := s.loader.Load(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text, truncated := Truncate(page.Text, s.maxChars)
	if truncated {
		s.log.Warn("page text truncated", "url", rawURL, "max_chars", s.maxChars)
	}

	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, struct{ Title, Text string }{page.Title, text}); err != nil {
		return "", fmt.Errorf("rendering summary prompt: %w", err)
	}

	summary, err := s.llm.Complete(ctx, llm.Request{System: systemPrompt, Prompt: buf.String()})
	if err != nil {
		return "", fmt.Errorf("%w: summarizing %s: %w", types.ErrGeneration, rawURL, err)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary for %s", types.ErrGeneration, rawURL)
	}

	s.log.Info("summarized page", "url", rawURL, "title", page.Title,
		"input_chars", len(text), "summary_chars", len(summary),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return summary, nil
}

// Truncate cuts s to at most limit runes. limit <= 0 leaves s unchanged.
func Truncate(s string, limit int) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
