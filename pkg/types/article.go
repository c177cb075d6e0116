// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the article-engine pipeline:
// the generated article document, its image assets, the error taxonomy, and
// the stage configuration structs.
package types

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ArticleDocument is the structured output of content generation. It is
// produced once per generation request and persisted as blog.json without
// further mutation.
type ArticleDocument struct {
	// Title is the article title. Must not be empty.
	Title string `json:"title" yaml:"title"`

	// Date is the generation date as written by the model (e.g. "October 19, 2026").
	Date string `json:"date" yaml:"date"`

	// Tags lists topic tags in the order the model produced them.
	Tags []string `json:"tags" yaml:"tags"`

	// Description is the short SEO description used in front matter.
	Description string `json:"description" yaml:"description"`

	// TitleImage is a natural-language image search query for the title image.
	TitleImage string `json:"title_image" yaml:"title_image"`

	// Content lists the article sections in reading order. Must not be empty.
	Content []Section `json:"content" yaml:"content"`
}

// Section is one headed block of article body text with its illustration query.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
	Image   string `json:"image" yaml:"image"`
}

// Validate checks the document invariants: a non-empty title and at least
// one section, each section carrying a heading.
func (d ArticleDocument) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank("title must not be blank")),
		),
		validation.Field(&d.Content, validation.Required.Error("content must have at least one section")),
	)
}

func notBlank(msg string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError("validation_blank", msg)
		}
		return nil
	}
}

// Validate implements validation.Validatable so ArticleDocument.Validate
// descends into every section.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Heading, validation.Required.Error("heading is required")),
	)
}

// ImageQueries returns the search query for every image slot in slot order:
// index 0 is the title image, index i+1 is Content[i].
func (d ArticleDocument) ImageQueries() []string {
	queries := make([]string, 0, len(d.Content)+1)
	queries = append(queries, d.TitleImage)
	for _, sec := range d.Content {
		queries = append(queries, sec.Image)
	}
	return queries
}

// TitleImageIndex is the slot index reserved for the title image.
const TitleImageIndex = 0

// SectionImageIndex maps a 0-based section position to its image slot index.
func SectionImageIndex(section int) int {
	return section + 1
}

// ImageAsset records one downloaded image: its slot index and file path.
type ImageAsset struct {
	Index int    `json:"index" yaml:"index"`
	Path  string `json:"path" yaml:"path"`
}

// License is an image license filter understood by image search backends.
type License string

const (
	LicenseAny                License = ""
	LicensePublic             License = "Public"
	LicenseShare              License = "Share"
	LicenseShareCommercially  License = "ShareCommercially"
	LicenseModify             License = "Modify"
	LicenseModifyCommercially License = "ModifyCommercially"
)

// validLicenses is the set of accepted License values.
var validLicenses = map[License]bool{
	LicenseAny:                true,
	LicensePublic:             true,
	LicenseShare:              true,
	LicenseShareCommercially:  true,
	LicenseModify:             true,
	LicenseModifyCommercially: true,
}

// Valid reports whether l is a known license filter.
func (l License) Valid() bool {
	return validLicenses[l]
}
