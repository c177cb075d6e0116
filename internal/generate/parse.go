// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdiddy/article-engine/pkg/types"
)

//go:embed templates/article.schema.json
var articleSchemaJSON []byte

const articleSchemaURL = "article.schema.json"

var (
	schemaOnce     sync.Once
	articleSchema  *jsonschema.Schema
	articleSchemaE error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(articleSchemaURL, bytes.NewReader(articleSchemaJSON)); err != nil {
			articleSchemaE = fmt.Errorf("adding article schema: %w", err)
			return
		}
		articleSchema, articleSchemaE = compiler.Compile(articleSchemaURL)
	})
	return articleSchema, articleSchemaE
}

// ParseDocument decodes a generation response into an ArticleDocument.
// The response must be exactly one JSON object matching the article schema;
// no repair is attempted. Every failure is a *types.MalformedGenerationError.
func ParseDocument(raw string) (*types.ArticleDocument, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, malformed(nil, "response is empty")
	}

	generic, err := decodeSingle(text)
	if err != nil {
		return nil, malformed(err, "response is not a single JSON value: "+err.Error())
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling article schema: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, malformed(err, schemaIssues(err)...)
	}

	var doc types.ArticleDocument
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed(err, "decoding article: "+err.Error())
	}

	if err := doc.Validate(); err != nil {
		return nil, malformed(err, validationIssues(err)...)
	}
	return &doc, nil
}

// decodeSingle decodes text as one JSON value and rejects trailing data.
func decodeSingle(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON value")
	}
	return v, nil
}

func malformed(err error, issues ...string) error {
	return &types.MalformedGenerationError{Issues: issues, Err: err}
}

// schemaIssues flattens a jsonschema error tree into "location: message" lines.
func schemaIssues(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var issues []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			issues = append(issues, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	if len(issues) == 0 {
		issues = append(issues, ve.Error())
	}
	return issues
}

func validationIssues(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	issues := make([]string, 0, len(keys))
	for _, k := range keys {
		issues = append(issues, k+": "+errs[k].Error())
	}
	return issues
}
