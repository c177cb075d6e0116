// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/article-engine/internal/article"
	"github.com/pdiddy/article-engine/internal/generate"
	"github.com/pdiddy/article-engine/internal/images"
	"github.com/pdiddy/article-engine/internal/llm"
	"github.com/pdiddy/article-engine/internal/logging"
	"github.com/pdiddy/article-engine/internal/pipeline"
	"github.com/pdiddy/article-engine/internal/summarize"
	"github.com/pdiddy/article-engine/pkg/types"
)

// app holds the resolved config and the root logger for one command run.
type app struct {
	cfg  types.PipelineConfig
	logs *logging.Root
}

func newApp() (*app, error) {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return nil, err
	}
	logs, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logs: logs}, nil
}

func (a *app) store() *article.Store {
	return article.NewStore(a.cfg.Output.Dir)
}

func (a *app) summarizer(gen llm.TextGenerator) *summarize.Summarizer {
	loader := summarize.NewWebLoader(a.cfg.Summary)
	return summarize.New(loader, gen, a.cfg.Summary.MaxInputChars, a.logs.Named("summarize"))
}

func (a *app) generator() (*generate.Generator, error) {
	gen, err := llm.New(a.cfg.AI)
	if err != nil {
		return nil, err
	}
	syntax, err := generate.LoadSyntax(a.cfg.Output.SyntaxFile)
	if err != nil {
		return nil, err
	}
	return generate.New(gen, syntax,
		generate.WithSummarizer(a.summarizer(gen)),
		generate.WithLogger(a.logs.Named("generate")),
	)
}

func (a *app) acquirer() (*images.Acquirer, error) {
	log := a.logs.Named("images")
	provider, err := images.NewWebProvider(a.cfg.Images, log)
	if err != nil {
		return nil, err
	}
	return images.NewAcquirer(provider, a.cfg.Images, log), nil
}

// runner wires the full pipeline. withImages=false skips image acquisition.
func (a *app) runner(withImages bool) (*pipeline.Runner, error) {
	gen, err := a.generator()
	if err != nil {
		return nil, err
	}
	var acq pipeline.ImageAcquirer
	if withImages {
		acquirer, err := a.acquirer()
		if err != nil {
			return nil, err
		}
		acq = acquirer
	}
	return pipeline.NewRunner(gen, acq, a.store(), a.cfg, a.logs.Named("pipeline")), nil
}

// imageRunner wires a pipeline that only acquires images and renders.
func (a *app) imageRunner() (*pipeline.Runner, error) {
	acq, err := a.acquirer()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(nil, acq, a.store(), a.cfg, a.logs.Named("pipeline")), nil
}
