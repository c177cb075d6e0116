// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed templates/blog_template.json
var defaultSyntax string

// DefaultSyntax returns the built-in syntax template.
func DefaultSyntax() string {
	return defaultSyntax
}

// LoadSyntax reads the JSON syntax template at path. An empty path selects the
// built-in template. The content is only checked for being well-formed JSON;
// it is embedded verbatim into prompts and never decoded as an article.
func LoadSyntax(path string) (string, error) {
	if path == "" {
		return defaultSyntax, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("syntax file not found at path %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if !json.Valid([]byte(text)) {
		return "", fmt.Errorf("syntax file %s is not valid JSON", path)
	}
	return text, nil
}
