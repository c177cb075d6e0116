// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline chains generation, persistence, image acquisition and
// rendering for single articles and for batches.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/article-engine/internal/article"
	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/internal/render"
	"github.com/pdiddy/article-engine/pkg/types"
)

// ArticleGenerator produces documents from topics or page URLs.
type ArticleGenerator interface {
	FromTopic(ctx context.Context, topic string) (*types.ArticleDocument, error)
	FromURL(ctx context.Context, url string) (*types.ArticleDocument, error)
}

// ImageAcquirer fills a document's image slots inside dir.
type ImageAcquirer interface {
	Acquire(ctx context.Context, doc *types.ArticleDocument, dir string) ([]types.ImageAsset, error)
}

// Result is the outcome of one article run.
type Result struct {
	RunID        string
	Dir          string
	Document     *types.ArticleDocument
	Assets       []types.ImageAsset
	MarkdownPath string
}

// Runner executes article runs. A nil ImageAcquirer disables image
// acquisition. A Runner built with a nil ArticleGenerator only serves
// RunImages.
type Runner struct {
	gen         ArticleGenerator
	images      ImageAcquirer
	store       *article.Store
	imagePrefix string
	render      bool
	skipFailed  bool
	itemDelay   time.Duration
	log         logging.Logger
}

// NewRunner wires a Runner from the pipeline config.
func NewRunner(gen ArticleGenerator, images ImageAcquirer, store *article.Store, cfg types.PipelineConfig, log logging.Logger) *Runner {
	if log == nil {
		log = logging.NoOp()
	}
	return &Runner{
		gen:         gen,
		images:      images,
		store:       store,
		imagePrefix: cfg.Output.ImagePrefix,
		render:      cfg.Output.RenderMarkdown,
		skipFailed:  cfg.Images.FailurePolicy == types.FailureSkip,
		itemDelay:   cfg.ItemDelay,
		log:         log,
	}
}

// RunTopic generates and persists an article about topic.
func (r *Runner) RunTopic(ctx context.Context, topic string) (*Result, error) {
	return r.run(ctx, ItemTopic, topic, func(ctx context.Context) (*types.ArticleDocument, error) {
		return r.gen.FromTopic(ctx, topic)
	})
}

// RunURL summarizes the page at url and persists an article built from it.
func (r *Runner) RunURL(ctx context.Context, url string) (*Result, error) {
	return r.run(ctx, ItemURL, url, func(ctx context.Context) (*types.ArticleDocument, error) {
		return r.gen.FromURL(ctx, url)
	})
}

// run writes nothing when generation fails.
func (r *Runner) run(ctx context.Context, kind ItemKind, source string,
	produce func(context.Context) (*types.ArticleDocument, error)) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := logging.With(r.log, "run_id", res.RunID, string(kind), source)
	start := time.Now()

	doc, err := produce(ctx)
	if err != nil {
		log.Error("generation failed", "error", err)
		return nil, err
	}
	res.Document = doc

	dir, err := r.store.Create(doc.Title)
	if err != nil {
		return nil, err
	}
	res.Dir = dir
	if err := r.store.WriteDocument(dir, doc); err != nil {
		return nil, err
	}
	log.Info("article saved", "dir", dir, "title", doc.Title)

	err = r.finish(ctx, log, res)
	log.Info("article complete", "dir", dir, "assets", len(res.Assets),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return res, err
}

// RunImages acquires the images of the article already saved in dir and
// renders its markdown, under the same failure rules as a full run.
func (r *Runner) RunImages(ctx context.Context, dir string) (*Result, error) {
	doc, err := r.store.ReadDocument(dir)
	if err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.NewString(), Dir: dir, Document: doc}
	log := logging.With(r.log, "run_id", res.RunID, "dir", dir)
	return res, r.finish(ctx, log, res)
}

// finish acquires images and renders markdown for res. When image
// acquisition fails the folder keeps blog.json and whatever images were
// written, and rendering is skipped unless the failure policy is skip.
func (r *Runner) finish(ctx context.Context, log logging.Logger, res *Result) error {
	doc, dir := res.Document, res.Dir

	var imgErr error
	if r.images != nil {
		res.Assets, imgErr = r.images.Acquire(ctx, doc, dir)
		if imgErr != nil {
			log.Error("image acquisition failed", "dir", dir, "assets", len(res.Assets), "error", imgErr)
			if !r.skipFailed || !errors.Is(imgErr, types.ErrImageAcquisition) {
				return fmt.Errorf("acquiring images for %s: %w", dir, imgErr)
			}
		}
	}

	if r.render {
		md := render.Render(doc, render.ImageBasePath(r.imagePrefix, filepath.Base(dir)))
		p, err := r.store.WriteMarkdown(dir, md)
		if err != nil {
			return err
		}
		res.MarkdownPath = p
	}

	if imgErr != nil {
		return fmt.Errorf("acquiring images for %s: %w", dir, imgErr)
	}
	return nil
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Generated int
	Failed    int
	Results   []*Result
}

// Total returns the number of items processed.
func (b BatchResult) Total() int {
	return b.Generated + b.Failed
}

// HasFailures reports whether any item failed.
func (b BatchResult) HasFailures() bool {
	return b.Failed > 0
}

// RunBatch processes every job item in order, printing a status line per
// item to w. It continues after failures and waits the item delay between
// items. A cancelled context stops the batch; remaining items are not
// counted.
func (r *Runner) RunBatch(ctx context.Context, job Job, w io.Writer) BatchResult {
	var result BatchResult
	for i, item := range job.Items() {
		if i > 0 {
			if err := httputil.Wait(ctx, r.itemDelay); err != nil {
				fmt.Fprintf(w, "stopped: %v\n", err)
				break
			}
		}

		var res *Result
		var err error
		switch item.Kind {
		case ItemURL:
			res, err = r.RunURL(ctx, item.Value)
		default:
			res, err = r.RunTopic(ctx, item.Value)
		}
		if err != nil {
			fmt.Fprintf(w, "failed:    %s %s (%v)\n", item.Kind, item.Value, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "generated: %s -> %s\n", res.Document.Title, res.Dir)
		result.Generated++
		result.Results = append(result.Results, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d generated, %d failed (total: %d)\n",
		result.Generated, result.Failed, result.Total())
	return result
}
