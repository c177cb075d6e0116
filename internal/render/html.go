// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// FrontMatter is the metadata block written at the top of rendered markdown.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ParseFrontMatter splits rendered markdown into its metadata and body.
func ParseFrontMatter(md string) (FrontMatter, string, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(md), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, string(body), nil
}

// HTML converts rendered markdown to an HTML preview. The front matter is
// dropped and the title becomes a top-level heading.
func HTML(md string) (string, error) {
	meta, body, err := ParseFrontMatter(md)
	if err != nil {
		return "", err
	}

	var src bytes.Buffer
	if meta.Title != "" {
		fmt.Fprintf(&src, "# %s\n\n", meta.Title)
	}
	src.WriteString(body)

	var out bytes.Buffer
	if err := markdown.Convert(src.Bytes(), &out); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return out.String(), nil
}
