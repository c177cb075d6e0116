// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Page is the extracted readable content of a web page.
type Page struct {
	URL   string
	Title string
	Text  string
}

// PageLoader fetches a URL and extracts its readable text.
type PageLoader interface {
	Load(ctx context.Context, rawURL string) (Page, error)
}

// WebLoader fetches pages over HTTP with browser headers.
type WebLoader struct {
	Client    *http.Client
	UserAgent string
	MaxBytes  int64
}

// NewWebLoader builds a WebLoader from the summary config.
func NewWebLoader(cfg types.SummaryConfig) *WebLoader {
	ua := cfg.UserAgent
	if ua == "" {
		ua = types.DefaultUserAgent
	}
	return &WebLoader{
		Client:    &http.Client{Timeout: cfg.Timeout},
		UserAgent: ua,
		MaxBytes:  httputil.MB(cfg.MaxPageSizeMB),
	}
}

// Load retrieves rawURL and extracts its article text. Every failure wraps
// types.ErrFetch.
func (l *WebLoader) Load(ctx context.Context, rawURL string) (Page, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return Page{}, fmt.Errorf("%w: invalid URL %q", types.ErrFetch, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %w", types.ErrFetch, err)
	}
	httputil.SetBrowserHeaders(req, l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("%w: fetching %s: %w", types.ErrFetch, parsed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, fmt.Errorf("%w: fetching %s: HTTP %d", types.ErrFetch, parsed, resp.StatusCode)
	}

	body, err := httputil.ReadLimited(resp.Body, l.MaxBytes)
	if err != nil {
		return Page{}, fmt.Errorf("%w: reading %s: %w", types.ErrFetch, parsed, err)
	}

	page, err := extract(body, parsed)
	if err != nil {
		return Page{}, fmt.Errorf("%w: parsing %s: %w", types.ErrFetch, parsed, err)
	}
	if page.Text == "" {
		return Page{}, fmt.Errorf("%w: no readable text at %s", types.ErrFetch, parsed)
	}
	return page, nil
}

// extract prefers readability output and falls back to the body text with
// page chrome removed.
func extract(body []byte, pageURL *url.URL) (Page, error) {
	page := Page{URL: pageURL.String()}

	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		page.Title = strings.TrimSpace(article.Title)
		page.Text = normalizeSpace(article.TextContent)
		if page.Text != "" {
			return page, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Page{}, err
	}
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	doc.Find("script, style, noscript, nav, header, footer, aside, form, svg").Remove()
	page.Text = normalizeSpace(doc.Find("body").Text())
	return page, nil
}

// normalizeSpace collapses runs of blank lines and trims each line.
func normalizeSpace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
