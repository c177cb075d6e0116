// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the pipeline stages. Callers match them with errors.Is.
var (
	// ErrFetch reports that a source page could not be retrieved or parsed.
	ErrFetch = errors.New("fetch failed")

	// ErrGeneration reports that the text-generation service call itself failed.
	ErrGeneration = errors.New("generation failed")

	// ErrMalformedGeneration reports a generation response that does not
	// match the ArticleDocument shape.
	ErrMalformedGeneration = errors.New("malformed generation")

	// ErrImageSearch reports a failed image search. Retried internally.
	ErrImageSearch = errors.New("image search failed")

	// ErrImageDownload reports a failed image download. Retried internally.
	ErrImageDownload = errors.New("image download failed")

	// ErrImageAcquisition reports that every attempt and the fallback for a
	// slot were exhausted.
	ErrImageAcquisition = errors.New("image acquisition failed")
)

// MalformedGenerationError carries the validation issues found in a
// generation response.
type MalformedGenerationError struct {
	Issues []string
	Err    error
}

func (e *MalformedGenerationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", ErrMalformedGeneration, e.Err)
		}
		return ErrMalformedGeneration.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedGeneration, strings.Join(e.Issues, "; "))
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *MalformedGenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedGeneration}
	}
	return []error{ErrMalformedGeneration, e.Err}
}

// ImageAcquisitionError reports a terminal failure for one image slot.
type ImageAcquisitionError struct {
	Index    int
	Query    string
	Attempts int
	Err      error
}

func (e *ImageAcquisitionError) Error() string {
	return fmt.Sprintf("%s: slot %d (%q) after %d attempts and fallback: %v",
		ErrImageAcquisition, e.Index, e.Query, e.Attempts, e.Err)
}

// Unwrap exposes both the sentinel and the last underlying cause.
func (e *ImageAcquisitionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrImageAcquisition}
	}
	return []error{ErrImageAcquisition, e.Err}
}
