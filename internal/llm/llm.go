// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the text-generation service behind TextGenerator so
// the summarizer and generator can be tested with a mock. Every backend pins
// sampling temperature to 0.
package llm

import (
	"context"
	"fmt"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Temperature is the sampling temperature sent with every request.
const Temperature = 0.0

const defaultMaxTokens = 4096

// Request is a single-turn prompt.
type Request struct {
	System string
	Prompt string
}

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds the backend selected by cfg.Provider.
func New(cfg types.AIConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAI(cfg)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible endpoint; base_url is mandatory.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAI(cfg)
	case "anthropic":
		return NewAnthropic(cfg)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

func maxTokens(cfg types.AIConfig) int {
	if cfg.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return cfg.MaxTokens
}
