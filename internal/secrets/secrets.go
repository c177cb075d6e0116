// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files, one
// secret per file: the filename is the key name and the trimmed contents are
// the value. Keys missing from the directory fall back to an environment
// variable.
//
// Supported key files: openai-api-key, deepseek-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Key names and the environment variables consulted when the file is absent.
const (
	OpenAIKey    = "openai-api-key"
	DeepSeekKey  = "deepseek-api-key"
	AnthropicKey = "anthropic-api-key"
)

var envFallback = map[string]string{
	OpenAIKey:    "OPENAI_API_KEY",
	DeepSeekKey:  "DEEPSEEK_API_KEY",
	AnthropicKey: "ANTHROPIC_API_KEY",
}

// ProviderKey maps an AI provider name to its secret key name.
func ProviderKey(provider string) string {
	switch provider {
	case "anthropic":
		return AnthropicKey
	case "deepseek":
		return DeepSeekKey
	default:
		return OpenAIKey
	}
}

// Set holds the secrets read from disk.
type Set struct {
	values map[string]string
	getenv func(string) string
}

// Load reads all files in dir. A missing directory is not an error; Load
// returns an empty Set. Unreadable files produce a warning on warn but do
// not abort.
func Load(dir string, warn io.Writer) (*Set, error) {
	s := &Set{values: map[string]string{}, getenv: os.Getenv}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			}
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s.values[name] = value
		}
	}
	return s, nil
}

// Get returns the secret for key, consulting the environment fallback when
// the key was not loaded from disk.
func (s *Set) Get(key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.values[key]; ok {
		return v
	}
	if env, ok := envFallback[key]; ok && s.getenv != nil {
		return strings.TrimSpace(s.getenv(env))
	}
	return ""
}

// Keys returns the names loaded from disk.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
