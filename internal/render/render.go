// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns an ArticleDocument into Hugo markdown that links the
// slot images under the site image path.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// DefaultImagePrefix is the site path holding article image folders.
const DefaultImagePrefix = "/img/posts"

// ImageBasePath returns the site path of an article's image folder.
func ImageBasePath(prefix, folder string) string {
	if prefix == "" {
		prefix = DefaultImagePrefix
	}
	return path.Join("/", prefix, folder)
}

// Render produces the markdown for doc. It is deterministic and does not
// check that the referenced images exist. Section 0 carries no inline image
// because the title image already represents it.
func Render(doc *types.ArticleDocument, imageBasePath string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", quote(doc.Title))
	fmt.Fprintf(&b, "date: %s\n", quote(doc.Date))
	fmt.Fprintf(&b, "tags: [%s]\n", tagList(doc.Tags))
	fmt.Fprintf(&b, "image: %s\n", quote(imageURL(imageBasePath, types.TitleImageIndex)))
	fmt.Fprintf(&b, "description: %s\n", quote(doc.Description))
	b.WriteString("---\n\n")

	for i, section := range doc.Content {
		fmt.Fprintf(&b, "\n---\n# %s\n\n", section.Heading)
		if i != 0 {
			fmt.Fprintf(&b, "![%s prompt](%s %s)\n\n",
				section.Image, imageURL(imageBasePath, types.SectionImageIndex(i)), quote(section.Image))
		}
		b.WriteString(section.Content)
		b.WriteString("\n\n\n")
	}
	return b.String()
}

func imageURL(base string, index int) string {
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(base, "/"), index)
}

// quote wraps s in double quotes, escaping backslashes and quotes so the
// value stays a valid YAML and markdown title string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// tagList renders tags as JSON strings joined by ", ".
func tagList(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(tag); err != nil {
			continue
		}
		parts = append(parts, strings.TrimRight(buf.String(), "\n"))
	}
	return strings.Join(parts, ", ")
}
