// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images finds and downloads one picture per article image slot.
// Searches go to a pluggable Searcher backend; downloads use browser headers.
// Acquisition is strictly sequential with fixed waits between attempts and
// between slots.
package images

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Result is one image search hit.
type Result struct {
	ImageURL     string
	ThumbnailURL string
	Title        string
	SourceURL    string
	Width        int
	Height       int
}

// Searcher is an image search backend.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, license types.License, maxResults int) ([]Result, error)
}

// Provider is the external capability the Acquirer depends on.
type Provider interface {
	Search(ctx context.Context, query string, license types.License, maxResults int) ([]Result, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// WebProvider pairs a Searcher backend with the HTTP Downloader.
type WebProvider struct {
	Searcher
	*Downloader
}

// NewWebProvider builds the provider selected by cfg.Backend.
func NewWebProvider(cfg types.ImageConfig, log logging.Logger) (*WebProvider, error) {
	if log == nil {
		log = logging.NoOp()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = types.DefaultUserAgent
	}
	client := &http.Client{Timeout: cfg.Timeout}

	var searcher Searcher
	switch cfg.Backend {
	case "", types.ImageBackendDuckDuckGo:
		searcher = &DuckDuckGo{Client: client, UserAgent: ua}
	case types.ImageBackendSearXNG:
		if cfg.SearXNGURL == "" {
			return nil, fmt.Errorf("image backend searxng requires searxng_url")
		}
		if cfg.License != types.LicenseAny {
			log.Warn("searxng does not support license filtering; results are unfiltered",
				"license", string(cfg.License))
		}
		searcher = &SearXNG{Client: client, BaseURL: cfg.SearXNGURL, UserAgent: ua}
	default:
		return nil, fmt.Errorf("image backend %s not supported", cfg.Backend)
	}

	return &WebProvider{
		Searcher:   searcher,
		Downloader: NewDownloader(client, ua, cfg.MaxImageSizeMB),
	}, nil
}
