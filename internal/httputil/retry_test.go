// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyDo_ImmediateSuccess(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}
	calls := 0

	attempts, err := p.Do(context.Background(), func(int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestPolicyDo_RetriesThenSucceeds(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}
	var seen []int

	attempts, err := p.Do(context.Background(), func(attempt int) error {
		seen = append(seen, attempt)
		if attempt < 3 {
			return fmt.Errorf("transient (attempt %d)", attempt)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestPolicyDo_ExhaustsAndReturnsLastError(t *testing.T) {
	p := Policy{MaxAttempts: 2, Delay: time.Millisecond}
	last := errors.New("second failure")

	attempts, err := p.Do(context.Background(), func(attempt int) error {
		if attempt == 1 {
			return errors.New("first failure")
		}
		return last
	})
	assert.Equal(t, 2, attempts)
	assert.ErrorIs(t, err, last)
}

func TestPolicyDo_DefaultAttempts(t *testing.T) {
	p := Policy{Delay: time.Millisecond}
	calls := 0
	_, err := p.Do(context.Background(), func(int) error {
		calls++
		return errors.New("always")
	})
	assert.Error(t, err)
	assert.Equal(t, DefaultMaxAttempts, calls)
}

func TestPolicyDo_ContextCancelledDuringWait(t *testing.T) {
	p := Policy{MaxAttempts: 5, Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := p.Do(ctx, func(int) error {
			calls++
			return errors.New("fail")
		})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after context cancellation")
	}
}

func TestWait(t *testing.T) {
	require.NoError(t, Wait(context.Background(), 0))
	require.NoError(t, Wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
}
