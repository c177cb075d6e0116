// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// SearXNG queries a self-hosted SearXNG instance in the images category.
// SearXNG has no license filter; the license argument is ignored.
type SearXNG struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// Name returns the backend identifier.
func (s *SearXNG) Name() string { return types.ImageBackendSearXNG }

type searxngResponse struct {
	Results []struct {
		URL          string `json:"url"`
		Title        string `json:"title"`
		ImgSrc       string `json:"img_src"`
		ThumbnailSrc string `json:"thumbnail_src"`
		Resolution   string `json:"resolution"`
	} `json:"results"`
}

// Search returns up to maxResults image hits for query.
func (s *SearXNG) Search(ctx context.Context, query string, _ types.License, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("categories", "images")

	endpoint := strings.TrimRight(s.BaseURL, "/") + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", types.ErrImageSearch, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: searxng request: %w", types.ErrImageSearch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: searxng returned HTTP %d", types.ErrImageSearch, resp.StatusCode)
	}

	var body searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: parsing searxng response: %w", types.ErrImageSearch, err)
	}

	results := make([]Result, 0, len(body.Results))
	for _, r := range body.Results {
		if r.ImgSrc == "" {
			continue
		}
		w, h := parseResolution(r.Resolution)
		results = append(results, Result{
			ImageURL:     absolute(s.BaseURL, r.ImgSrc),
			ThumbnailURL: absolute(s.BaseURL, r.ThumbnailSrc),
			Title:        r.Title,
			SourceURL:    r.URL,
			Width:        w,
			Height:       h,
		})
		if maxResults > 0 && len(results) == maxResults {
			break
		}
	}
	return results, nil
}

// absolute resolves protocol-relative and path-relative image sources.
func absolute(base, src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	b, err := url.Parse(base)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return b.ResolveReference(ref).String()
}

// parseResolution reads "1920 x 1080" or "1920x1080".
func parseResolution(s string) (int, int) {
	var w, h int
	s = strings.ReplaceAll(s, " ", "")
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0
	}
	return w, h
}
