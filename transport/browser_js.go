// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"syscall/js"

	"github.com/xmidt-org/meili/meilierr"
)

var errPromiseRejected = errors.New("promise rejected")

// Browser sends requests through the fetch function of the host page.
// Bodies are read into memory before sending since browsers can't stream
// request bodies. The client identifies itself with the
// X-Meilisearch-Client header because User-Agent can't be overridden.
type Browser struct {
	apiKey    string
	userAgent string
}

var _ Backend = (*Browser)(nil)

// NewBrowser creates a Browser backend. An empty apiKey sends no
// Authorization header.
func NewBrowser(apiKey string, userAgent ...string) *Browser {
	return &Browser{
		apiKey:    apiKey,
		userAgent: UserAgent(userAgent...),
	}
}

func (b *Browser) Request(ctx context.Context, url string, method Method, expectedStatus int, out any) error {
	return BufferedRequest(ctx, b, url, method, expectedStatus, out)
}

func (b *Browser) StreamRequest(ctx context.Context, url string, method Method, contentType string, expectedStatus int, out any) error {
	fullURL, err := EncodeQuery(url, method.Query())
	if err != nil {
		return err
	}

	r, err := bodyReader(method)
	if err != nil {
		return err
	}

	headers := js.Global().Get("Headers").New()
	headers.Call("append", clientHeader, b.userAgent)
	if b.apiKey != "" {
		headers.Call("append", "Authorization", authKeyPrefix+b.apiKey)
	}

	init := js.Global().Get("Object").New()
	init.Set("method", method.Verb())
	init.Set("headers", headers)

	if r != nil {
		var buf bytes.Buffer
		if _, err = io.Copy(&buf, r); err != nil {
			return meilierr.Wrap(meilierr.ErrInvalidRequest, err)
		}
		if contentType != "" {
			headers.Call("append", "Content-Type", contentType)
		}
		init.Set("body", buf.String())
	}

	controller := js.Global().Get("AbortController").New()
	init.Set("signal", controller.Get("signal"))

	resp, err := await(ctx, controller, js.Global().Call("fetch", fullURL, init))
	if err != nil {
		return err
	}
	status := resp.Get("status").Int()

	text, err := await(ctx, controller, resp.Call("text"))
	if err != nil {
		return err
	}
	return ParseResponse(status, expectedStatus, []byte(text.String()), fullURL, out)
}

// await blocks until the promise settles. When ctx ends first the request is
// aborted and the promise is still waited on before its callbacks are
// released.
func await(ctx context.Context, controller, promise js.Value) (js.Value, error) {
	type settled struct {
		value js.Value
		err   error
	}
	done := make(chan settled, 1)

	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		done <- settled{value: args[0]}
		return nil
	})
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "unknown"
		if len(args) > 0 && args[0].Truthy() {
			msg = args[0].Call("toString").String()
		}
		done <- settled{err: fmt.Errorf("%w: %s", errPromiseRejected, msg)}
		return nil
	})
	defer onResolve.Release()
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)

	select {
	case s := <-done:
		if s.err != nil {
			return js.Undefined(), fmt.Errorf("%w: %w", meilierr.ErrHTTP, s.err)
		}
		return s.value, nil
	case <-ctx.Done():
		controller.Call("abort")
		<-done
		return js.Undefined(), fmt.Errorf("%w: %w", meilierr.ErrHTTP, ctx.Err())
	}
}
