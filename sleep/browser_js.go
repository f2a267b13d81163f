// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package sleep

import (
	"context"
	"syscall/js"
	"time"
)

// Browser sleeps with the setTimeout function of the host page.
type Browser struct{}

func (Browser) Sleep(ctx context.Context, d time.Duration) error {
	done := make(chan struct{})
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		close(done)
		return nil
	})
	defer cb.Release()

	id := js.Global().Call("setTimeout", cb, d.Milliseconds())
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		js.Global().Call("clearTimeout", id)
		return ctx.Err()
	}
}

// Default returns the Sleeper suited to the platform the program runs on.
func Default() Sleeper {
	return Browser{}
}
