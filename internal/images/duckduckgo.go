// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/pkg/types"
)

// duckDuckGoBase is the DuckDuckGo origin. Declared as a var so tests can
// substitute an httptest server.
var duckDuckGoBase = "https://duckduckgo.com"

var vqdPattern = regexp.MustCompile(`vqd=["']?([0-9-]+)`)

// DuckDuckGo searches DuckDuckGo images. The license filter is passed
// through to the service.
type DuckDuckGo struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the backend identifier.
func (d *DuckDuckGo) Name() string { return types.ImageBackendDuckDuckGo }

type ddgResponse struct {
	Results []struct {
		Image     string `json:"image"`
		Thumbnail string `json:"thumbnail"`
		Title     string `json:"title"`
		URL       string `json:"url"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"results"`
}

// Search returns up to maxResults images for query. No hits is an empty
// slice, not an error.
func (d *DuckDuckGo) Search(ctx context.Context, query string, license types.License, maxResults int) ([]Result, error) {
	vqd, err := d.token(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrImageSearch, err)
	}

	params := url.Values{}
	params.Set("l", "wt-wt")
	params.Set("o", "json")
	params.Set("q", query)
	params.Set("vqd", vqd)
	params.Set("f", ",,,,,"+licenseFilter(license))
	params.Set("p", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, duckDuckGoBase+"/i.js?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", types.ErrImageSearch, err)
	}
	req.Header.Set("User-Agent", d.UserAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Referer", duckDuckGoBase+"/")

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo request: %w", types.ErrImageSearch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: duckduckgo returned HTTP %d", types.ErrImageSearch, resp.StatusCode)
	}

	var body ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: parsing duckduckgo response: %w", types.ErrImageSearch, err)
	}

	results := make([]Result, 0, len(body.Results))
	for _, r := range body.Results {
		if r.Image == "" {
			continue
		}
		results = append(results, Result{
			ImageURL:     r.Image,
			ThumbnailURL: r.Thumbnail,
			Title:        r.Title,
			SourceURL:    r.URL,
			Width:        r.Width,
			Height:       r.Height,
		})
		if maxResults > 0 && len(results) == maxResults {
			break
		}
	}
	return results, nil
}

// token fetches the per-query vqd value the image endpoint requires.
func (d *DuckDuckGo) token(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, duckDuckGoBase+"/?"+url.Values{"q": {query}}.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	httputil.SetBrowserHeaders(req, d.UserAgent)

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned HTTP %d", resp.StatusCode)
	}
	page, err := httputil.ReadLimited(resp.Body, httputil.MB(2))
	if err != nil {
		return "", fmt.Errorf("reading token page: %w", err)
	}
	m := vqdPattern.FindSubmatch(page)
	if m == nil {
		return "", fmt.Errorf("no vqd token in search page")
	}
	return string(m[1]), nil
}

func licenseFilter(l types.License) string {
	if l == types.LicenseAny {
		return ""
	}
	return "license:" + string(l)
}
