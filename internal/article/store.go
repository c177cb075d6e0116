// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article manages the on-disk layout of generated articles: one
// folder per article holding blog.json, the slot images and the markdown.
package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// DocumentFile is the name of the persisted ArticleDocument.
const DocumentFile = "blog.json"

// Store creates and reads article folders under BaseDir.
type Store struct {
	BaseDir string
}

// NewStore returns a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// FolderName derives the folder name of an article from its title: spaces
// become underscores and path separators are removed.
func FolderName(title string) string {
	name := strings.TrimSpace(title)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		}
		return r
	}, name)
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// Create makes the folder for title and returns its path. An existing folder
// is reused.
func (s *Store) Create(title string) (string, error) {
	folder := FolderName(title)
	if folder == "" {
		return "", fmt.Errorf("no usable folder name for title %q", title)
	}
	dir := filepath.Join(s.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating article folder: %w", err)
	}
	return dir, nil
}

// WriteDocument writes doc as indented JSON to dir/blog.json.
func (s *Store) WriteDocument(dir string, doc *types.ArticleDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling article: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, DocumentFile), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", DocumentFile, err)
	}
	return nil
}

// ReadDocument reads dir/blog.json strictly and validates it.
func (s *Store) ReadDocument(dir string) (*types.ArticleDocument, error) {
	f, err := os.Open(filepath.Join(dir, DocumentFile))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", DocumentFile, err)
	}
	defer f.Close()

	var doc types.ArticleDocument
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", DocumentFile, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", DocumentFile, err)
	}
	return &doc, nil
}

// MarkdownPath returns the markdown file path of the article in dir.
func MarkdownPath(dir string) string {
	return filepath.Join(dir, filepath.Base(dir)+".md")
}

// WriteMarkdown writes md to dir/<folder>.md and returns the path.
func (s *Store) WriteMarkdown(dir, md string) (string, error) {
	p := MarkdownPath(dir)
	if err := os.WriteFile(p, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown: %w", err)
	}
	return p, nil
}

// ImagePath returns the file path of image slot index in dir.
func ImagePath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%d.png", index))
}

// Assets lists the slot images already present in dir for doc.
func (s *Store) Assets(dir string, doc *types.ArticleDocument) ([]types.ImageAsset, error) {
	var assets []types.ImageAsset
	for i := range doc.ImageQueries() {
		p := ImagePath(dir, i)
		_, err := os.Stat(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		assets = append(assets, types.ImageAsset{Index: i, Path: p})
	}
	return assets, nil
}
