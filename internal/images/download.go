// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Downloader fetches image bytes with browser headers.
type Downloader struct {
	Client    *http.Client
	UserAgent string
	MaxBytes  int64
}

// NewDownloader returns a Downloader capped at maxMB megabytes per image.
func NewDownloader(client *http.Client, userAgent string, maxMB int) *Downloader {
	return &Downloader{Client: client, UserAgent: userAgent, MaxBytes: httputil.MB(maxMB)}
}

// Download returns the body at url. Transport errors, non-2xx statuses,
// oversized and empty bodies all wrap types.ErrImageDownload.
func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", types.ErrImageDownload, err)
	}
	httputil.SetBrowserHeaders(req, d.UserAgent)

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrImageDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", types.ErrImageDownload, resp.StatusCode, url)
	}

	data, err := httputil.ReadLimited(resp.Body, d.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrImageDownload, url, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body from %s", types.ErrImageDownload, url)
	}
	return data, nil
}
