// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/pdiddy/article-engine/internal/secrets"
	"github.com/pdiddy/article-engine/pkg/types"
)

// setDefaults registers every config key so environment variables can
// override keys absent from the config file.
func setDefaults(v *viper.Viper) {
	d := types.DefaultPipelineConfig()

	v.SetDefault("ai.provider", d.AI.Provider)
	v.SetDefault("ai.model", d.AI.Model)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.max_tokens", d.AI.MaxTokens)

	v.SetDefault("summary.timeout", d.Summary.Timeout)
	v.SetDefault("summary.user_agent", d.Summary.UserAgent)
	v.SetDefault("summary.max_page_size_mb", d.Summary.MaxPageSizeMB)
	v.SetDefault("summary.max_input_chars", d.Summary.MaxInputChars)

	v.SetDefault("images.timeout", d.Images.Timeout)
	v.SetDefault("images.user_agent", d.Images.UserAgent)
	v.SetDefault("images.backend", d.Images.Backend)
	v.SetDefault("images.searxng_url", "")
	v.SetDefault("images.license", string(d.Images.License))
	v.SetDefault("images.max_attempts", d.Images.MaxAttempts)
	v.SetDefault("images.retry_delay", d.Images.RetryDelay)
	v.SetDefault("images.slot_delay", d.Images.SlotDelay)
	v.SetDefault("images.failure_policy", string(d.Images.FailurePolicy))
	v.SetDefault("images.max_image_size_mb", d.Images.MaxImageSizeMB)

	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.syntax_file", "")
	v.SetDefault("output.image_prefix", d.Output.ImagePrefix)
	v.SetDefault("output.render_markdown", d.Output.RenderMarkdown)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("item_delay", d.ItemDelay)
}

// loadConfig decodes the merged flag, env, file and default settings and
// fills the API key from the secrets directory when the config has none.
func loadConfig(v *viper.Viper, s *secrets.Set) (types.PipelineConfig, error) {
	cfg := types.DefaultPipelineConfig()
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
		dc.Squash = true
	})
	if err != nil {
		return types.PipelineConfig{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = s.Get(secrets.ProviderKey(cfg.AI.Provider))
	}

	if err := cfg.Validate(); err != nil {
		return types.PipelineConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
