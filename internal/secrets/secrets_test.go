// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantKeys []string
		want     map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKey, "  sk-abc123  \n")
				writeFile(t, dir, AnthropicKey, "ak_xyz789")
				return dir
			},
			wantKeys: []string{OpenAIKey, AnthropicKey},
			want: map[string]string{
				OpenAIKey:    "sk-abc123",
				AnthropicKey: "ak_xyz789",
			},
		},
		{
			name: "returns empty set for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			wantKeys: []string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKey, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".hidden-key", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			wantKeys: []string{OpenAIKey},
			want:     map[string]string{OpenAIKey: "valid-key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			s.getenv = func(string) string { return "" }

			assert.ElementsMatch(t, tt.wantKeys, s.Keys())
			for k, v := range tt.want {
				assert.Equal(t, v, s.Get(k))
			}
		})
	}
}

func TestGetFallsBackToEnvironment(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	s.getenv = func(name string) string {
		if name == "ANTHROPIC_API_KEY" {
			return " from-env "
		}
		return ""
	}

	assert.Equal(t, "from-env", s.Get(AnthropicKey))
	assert.Equal(t, "", s.Get(OpenAIKey))
	assert.Equal(t, "", s.Get("unknown-key"))
}

func TestFileTakesPrecedenceOverEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OpenAIKey, "from-file")

	s, err := Load(dir, nil)
	require.NoError(t, err)
	s.getenv = func(string) string { return "from-env" }

	assert.Equal(t, "from-file", s.Get(OpenAIKey))
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warn bytes.Buffer
	s, err := Load(dir, &warn)
	require.NoError(t, err)
	assert.Equal(t, []string{"good-key"}, s.Keys())
	assert.Contains(t, warn.String(), "bad-key")
}

func TestProviderKey(t *testing.T) {
	assert.Equal(t, OpenAIKey, ProviderKey("openai"))
	assert.Equal(t, DeepSeekKey, ProviderKey("deepseek"))
	assert.Equal(t, AnthropicKey, ProviderKey("anthropic"))
	assert.Equal(t, OpenAIKey, ProviderKey(""))
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Equal(t, "", s.Get(OpenAIKey))
	assert.Nil(t, s.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
