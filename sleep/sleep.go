// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package sleep provides the pause used between task polls.
package sleep

import (
	"context"
	"time"
)

// Sleeper pauses the calling goroutine for d, or until ctx ends. It returns
// ctx.Err() when interrupted.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Func adapts a function to Sleeper.
type Func func(context.Context, time.Duration) error

func (f Func) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// Timer sleeps on a runtime timer that is stopped as soon as ctx ends.
type Timer struct{}

func (Timer) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Thread blocks a dedicated goroutine in time.Sleep and waits for it to
// signal completion over a one-shot channel. An interrupted sleep leaves
// that goroutine running until d has elapsed.
type Thread struct{}

func (Thread) Sleep(ctx context.Context, d time.Duration) error {
	done := make(chan struct{})
	go func() {
		time.Sleep(d)
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
