// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds settings for the text-generation service.
type AIConfig struct {
	// Provider selects the backend: openai, deepseek (OpenAI-compatible), or anthropic.
	Provider string `json:"provider" yaml:"provider"`

	// Model is the model identifier passed to the provider.
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint (required for deepseek).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxTokens caps the length of a completion (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// SummaryConfig holds settings for the URL summarization stage.
type SummaryConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxPageSizeMB caps the fetched page body (default 5).
	MaxPageSizeMB int `json:"max_page_size_mb" yaml:"max_page_size_mb"`

	// MaxInputChars truncates extracted page text before prompting (0 = no cap).
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`
}

// Image search backends.
const (
	ImageBackendDuckDuckGo = "duckduckgo"
	ImageBackendSearXNG    = "searxng"
)

// FailurePolicy decides what happens to a document when one image slot fails.
type FailurePolicy string

const (
	// FailureAbort stops acquisition for the whole document on the first failed slot.
	FailureAbort FailurePolicy = "abort"
	// FailureSkip records the failed slot and continues with the remaining slots.
	FailureSkip FailurePolicy = "skip"
)

// ImageConfig holds settings for the image acquisition stage.
type ImageConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the image search service: duckduckgo or searxng.
	Backend string `json:"backend" yaml:"backend"`

	// SearXNGURL is the base URL of a SearXNG instance (searxng backend only).
	SearXNGURL string `json:"searxng_url,omitempty" yaml:"searxng_url,omitempty"`

	// License is the license filter applied to every search (default ShareCommercially).
	License License `json:"license" yaml:"license"`

	// MaxAttempts is the number of primary search+download attempts per slot (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// RetryDelay is the fixed wait between attempts (default 5s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`

	// SlotDelay is the fixed wait between successive slots (default 5s).
	SlotDelay time.Duration `json:"slot_delay" yaml:"slot_delay"`

	// FailurePolicy is abort (default) or skip.
	FailurePolicy FailurePolicy `json:"failure_policy" yaml:"failure_policy"`

	// MaxImageSizeMB caps a downloaded image body (default 20).
	MaxImageSizeMB int `json:"max_image_size_mb" yaml:"max_image_size_mb"`
}

// OutputConfig holds settings for the persisted article layout.
type OutputConfig struct {
	// Dir is the base directory that receives one folder per article.
	Dir string `json:"dir" yaml:"dir"`

	// SyntaxFile is the path of the JSON syntax template (empty = built-in).
	SyntaxFile string `json:"syntax_file,omitempty" yaml:"syntax_file,omitempty"`

	// ImagePrefix is the site path under which article image folders are served.
	ImagePrefix string `json:"image_prefix" yaml:"image_prefix"`

	// RenderMarkdown writes <folder>.md after image acquisition.
	RenderMarkdown bool `json:"render_markdown" yaml:"render_markdown"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	AI      AIConfig      `json:"ai" yaml:"ai"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Images  ImageConfig   `json:"images" yaml:"images"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Log     LogConfig     `json:"log" yaml:"log"`

	// ItemDelay is the wait between consecutive batch items.
	ItemDelay time.Duration `json:"item_delay" yaml:"item_delay"`
}

// DefaultUserAgent mimics a desktop browser to reduce host-side blocking.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/119.0"

// DefaultPipelineConfig returns the configuration used when nothing is overridden.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		AI: AIConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			MaxTokens: 4096,
		},
		Summary: SummaryConfig{
			HTTPConfig:    HTTPConfig{Timeout: 30 * time.Second, UserAgent: DefaultUserAgent},
			MaxPageSizeMB: 5,
			MaxInputChars: 60000,
		},
		Images: ImageConfig{
			HTTPConfig:     HTTPConfig{Timeout: 10 * time.Second, UserAgent: DefaultUserAgent},
			Backend:        ImageBackendDuckDuckGo,
			License:        LicenseShareCommercially,
			MaxAttempts:    3,
			RetryDelay:     5 * time.Second,
			SlotDelay:      5 * time.Second,
			FailurePolicy:  FailureAbort,
			MaxImageSizeMB: 20,
		},
		Output: OutputConfig{
			Dir:            "output",
			ImagePrefix:    "/img/posts",
			RenderMarkdown: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the settings every command depends on.
func (c PipelineConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AI),
		validation.Field(&c.Images),
		validation.Field(&c.Output),
	)
}

// Validate checks the provider selection.
func (c AIConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.Required, validation.In("openai", "deepseek", "anthropic")),
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.BaseURL, validation.When(c.Provider == "deepseek", validation.Required.Error("deepseek requires base_url"))),
	)
}

// Validate checks the image backend and retry settings.
func (c ImageConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Backend, validation.Required, validation.In(ImageBackendDuckDuckGo, ImageBackendSearXNG)),
		validation.Field(&c.SearXNGURL, validation.When(c.Backend == ImageBackendSearXNG, validation.Required.Error("searxng backend requires searxng_url"))),
		validation.Field(&c.License, validation.By(func(value any) error {
			if l, _ := value.(License); !l.Valid() {
				return validation.NewError("validation_license_unknown", "unknown license filter")
			}
			return nil
		})),
		validation.Field(&c.MaxAttempts, validation.Min(1)),
		validation.Field(&c.FailurePolicy, validation.In(FailureAbort, FailureSkip)),
	)
}

// Validate checks the output layout settings.
func (c OutputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
	)
}
