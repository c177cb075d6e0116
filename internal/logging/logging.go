// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides the structured logger shared by pipeline stages.
// Loggers take a message plus alternating key/value pairs.
package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Logger is the subset of go-logger used by pipeline stages.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Root owns the underlying go-logger instance and hands out named loggers.
type Root struct {
	base *glog.BaseLogger
}

// New builds a root logger from cfg. Format is console (default), json, or pretty.
func New(cfg types.LogConfig) (*Root, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Root{base: glog.NewLogger(options...)}, nil
}

// Named returns a child logger scoped to a pipeline stage.
func (r *Root) Named(name string) Logger {
	if r == nil || r.base == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return r.base
	}
	return r.base.GetLogger(name)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noop{}
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// With returns a logger that prepends args to every call. It lets a stage
// attach fields such as run_id without depending on go-logger's field API.
func With(l Logger, args ...any) Logger {
	if l == nil {
		l = NoOp()
	}
	if len(args) == 0 {
		return l
	}
	return &withLogger{inner: l, fields: append([]any(nil), args...)}
}

type withLogger struct {
	inner  Logger
	fields []any
}

func (w *withLogger) merge(args []any) []any {
	out := make([]any, 0, len(w.fields)+len(args))
	out = append(out, w.fields...)
	return append(out, args...)
}

func (w *withLogger) Debug(msg string, args ...any) { w.inner.Debug(msg, w.merge(args)...) }
func (w *withLogger) Info(msg string, args ...any)  { w.inner.Info(msg, w.merge(args)...) }
func (w *withLogger) Warn(msg string, args ...any)  { w.inner.Warn(msg, w.merge(args)...) }
func (w *withLogger) Error(msg string, args ...any) { w.inner.Error(msg, w.merge(args)...) }
