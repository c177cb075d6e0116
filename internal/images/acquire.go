// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/article-engine/internal/article"
	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Acquirer fills an article's image slots one at a time.
type Acquirer struct {
	provider  Provider
	license   types.License
	retry     httputil.Policy
	slotDelay time.Duration
	policy    types.FailurePolicy
	log       logging.Logger
}

// NewAcquirer returns an Acquirer using the retry, pacing and failure
// settings from cfg.
func NewAcquirer(p Provider, cfg types.ImageConfig, log logging.Logger) *Acquirer {
	if log == nil {
		log = logging.NoOp()
	}
	policy := cfg.FailurePolicy
	if policy == "" {
		policy = types.FailureAbort
	}
	return &Acquirer{
		provider:  p,
		license:   cfg.License,
		retry:     httputil.Policy{MaxAttempts: cfg.MaxAttempts, Delay: cfg.RetryDelay},
		slotDelay: cfg.SlotDelay,
		policy:    policy,
		log:       log,
	}
}

// Acquire fetches every image slot of doc into dir: slot 0 is the title
// image, slot i+1 belongs to doc.Content[i]. Slots are spaced by the slot
// delay. Under the abort policy the first failed slot stops acquisition and
// the already written assets are returned with the error. Under the skip
// policy every slot is attempted and the error joins all slot failures.
func (a *Acquirer) Acquire(ctx context.Context, doc *types.ArticleDocument, dir string) ([]types.ImageAsset, error) {
	queries := doc.ImageQueries()
	assets := make([]types.ImageAsset, 0, len(queries))
	var failures []error

	for i, query := range queries {
		if i > 0 {
			if err := httputil.Wait(ctx, a.slotDelay); err != nil {
				return assets, err
			}
		}

		asset, err := a.AcquireSlot(ctx, i, query, dir)
		if err != nil {
			if ctx.Err() != nil || a.policy != types.FailureSkip {
				return assets, err
			}
			a.log.Warn("skipping image slot", "index", i, "query", query, "error", err)
			failures = append(failures, err)
			continue
		}
		assets = append(assets, asset)
	}

	a.log.Info("acquired images", "dir", dir, "written", len(assets), "failed", len(failures))
	return assets, errors.Join(failures...)
}

// AcquireSlot searches for query and writes the first hit to dir/<index>.png.
// Failed searches or downloads are retried with a fixed delay. When every
// attempt fails, one fallback search for two results is made and only the
// second result is downloaded. A slot that still has no image returns a
// *types.ImageAcquisitionError and leaves no file behind.
func (a *Acquirer) AcquireSlot(ctx context.Context, index int, query, dir string) (types.ImageAsset, error) {
	path := article.ImagePath(dir, index)
	log := logging.With(a.log, "index", index, "query", query)

	if strings.TrimSpace(query) == "" {
		return types.ImageAsset{}, &types.ImageAcquisitionError{
			Index: index, Query: query,
			Err: fmt.Errorf("%w: empty query", types.ErrImageSearch),
		}
	}

	attempts, err := a.retry.Do(ctx, func(attempt int) error {
		err := a.fetch(ctx, query, 1, 0, path)
		if err != nil {
			log.Warn("image attempt failed", "attempt", attempt, "error", err)
		}
		return err
	})
	if err == nil {
		log.Info("image saved", "path", path, "attempts", attempts)
		return types.ImageAsset{Index: index, Path: path}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return types.ImageAsset{}, ctxErr
	}

	if err := httputil.Wait(ctx, a.retry.Delay); err != nil {
		return types.ImageAsset{}, err
	}
	log.Info("trying fallback image", "attempts", attempts)
	if fbErr := a.fetch(ctx, query, 2, 1, path); fbErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.ImageAsset{}, ctxErr
		}
		log.Error("image slot failed", "attempts", attempts, "error", fbErr)
		return types.ImageAsset{}, &types.ImageAcquisitionError{
			Index:    index,
			Query:    query,
			Attempts: attempts,
			Err:      errors.Join(err, fbErr),
		}
	}
	log.Info("fallback image saved", "path", path)
	return types.ImageAsset{Index: index, Path: path}, nil
}

// fetch searches for up to maxResults hits and downloads hit pick to path.
func (a *Acquirer) fetch(ctx context.Context, query string, maxResults, pick int, path string) error {
	results, err := a.provider.Search(ctx, query, a.license, maxResults)
	if err != nil {
		return err
	}
	if len(results) <= pick {
		return fmt.Errorf("%w: %d results for %q, need %d", types.ErrImageSearch, len(results), query, pick+1)
	}
	data, err := a.provider.Download(ctx, results[pick].ImageURL)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".image-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing image: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
