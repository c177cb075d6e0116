// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages: a fixed-delay
// retry policy, the browser header set, and size-capped body reads.
package httputil

import (
	"context"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 5 * time.Second
)

// Policy retries an operation a bounded number of times with a fixed delay
// between attempts. The delay does not grow; tests inject a near-zero Delay.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy returns 3 attempts spaced 5 seconds apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

// Attempts returns MaxAttempts, or the default when unset.
func (p Policy) Attempts() int {
	if p.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}

// Do calls fn until it succeeds or the attempts are exhausted, waiting Delay
// after each failure except the last. fn receives the 1-based attempt number.
// It returns the number of attempts made and the last error. If the context
// is cancelled during a wait, Do returns ctx.Err().
func (p Policy) Do(ctx context.Context, fn func(attempt int) error) (int, error) {
	limit := p.Attempts()
	var lastErr error
	for attempt := 1; attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, err
		}
		lastErr = fn(attempt)
		if lastErr == nil {
			return attempt, nil
		}
		if attempt < limit {
			if err := Wait(ctx, p.Delay); err != nil {
				return attempt, err
			}
		}
	}
	return limit, lastErr
}

// Wait blocks for d or until ctx is done. A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
