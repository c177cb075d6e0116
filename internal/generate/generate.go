// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns a topic or a page summary into a validated
// ArticleDocument by prompting a text-generation service with the syntax
// template and parsing the reply strictly.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/article-engine/internal/llm"
	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Summarizer condenses the page at url into notes for summary mode.
type Summarizer interface {
	Summarize(ctx context.Context, url string) (string, error)
}

// Generator produces ArticleDocuments. It is safe for concurrent use when
// the underlying TextGenerator is.
type Generator struct {
	llm        llm.TextGenerator
	syntax     string
	summarizer Summarizer
	now        func() time.Time
	log        logging.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSummarizer enables FromURL.
func WithSummarizer(s Summarizer) Option {
	return func(g *Generator) { g.summarizer = s }
}

// WithClock overrides the clock used for the prompt date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the stage logger.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New returns a Generator prompting gen with the given syntax template.
func New(gen llm.TextGenerator, syntax string, opts ...Option) (*Generator, error) {
	if gen == nil {
		return nil, errors.New("generate: text generator is required")
	}
	if strings.TrimSpace(syntax) == "" {
		return nil, errors.New("generate: syntax template is empty")
	}
	g := &Generator{
		llm:    gen,
		syntax: syntax,
		now:    time.Now,
		log:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// FromTopic generates an article about topic dated today.
func (g *Generator) FromTopic(ctx context.Context, topic string) (*types.ArticleDocument, error) {
	return g.Generate(ctx, ModeTopic, topic, g.now())
}

// FromSummary generates an article from summarizer notes dated today.
func (g *Generator) FromSummary(ctx context.Context, summary string) (*types.ArticleDocument, error) {
	return g.Generate(ctx, ModeSummary, summary, g.now())
}

// FromURL summarizes the page at url and generates an article from the notes.
func (g *Generator) FromURL(ctx context.Context, url string) (*types.ArticleDocument, error) {
	if g.summarizer == nil {
		return nil, errors.New("generate: no summarizer configured for URL input")
	}
	summary, err := g.summarizer.Summarize(ctx, url)
	if err != nil {
		return nil, err
	}
	return g.FromSummary(ctx, summary)
}

// Generate prompts the service with source in the given mode and parses the
// reply. Service failures wrap types.ErrGeneration; unusable replies are
// *types.MalformedGenerationError.
func (g *Generator) Generate(ctx context.Context, mode Mode, source string, date time.Time) (*types.ArticleDocument, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("generate: empty %s", mode)
	}

	prompt, err := renderPrompt(mode, promptData{
		Source: source,
		Syntax: g.syntax,
		Date:   date.Format(DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s prompt: %w", mode, err)
	}

	g.log.Info("generating article", "mode", mode.String(), "source_chars", len(source))
	start := time.Now()
	reply, err := g.llm.Complete(ctx, llm.Request{System: systemPrompt, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrGeneration, err)
	}

	doc, err := ParseDocument(reply)
	if err != nil {
		g.log.Warn("rejected generation", "mode", mode.String(), "error", err)
		return nil, err
	}
	g.log.Info("generated article", "title", doc.Title, "sections", len(doc.Content),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return doc, nil
}
