// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package transport sends requests to a Meilisearch server and maps the
// responses onto values or errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xmidt-org/meili/meilierr"
)

// StreamRequester performs one request whose body, if any, is read from the
// io.Reader carried by the method.
type StreamRequester interface {
	StreamRequest(ctx context.Context, url string, method Method, contentType string, expectedStatus int, out any) error
}

// Backend is the capability a transport must provide to the client.
// Request encodes the method body as JSON, StreamRequest sends it as is.
// The decoded response is stored in out.
type Backend interface {
	StreamRequester
	Request(ctx context.Context, url string, method Method, expectedStatus int, out any) error
}

// Streamer is implemented by backends able to hand back a response body
// that is still being received, such as log streams and chat completions.
type Streamer interface {
	OpenStream(ctx context.Context, url string, method Method, accept string, expectedStatus int) (io.ReadCloser, error)
}

// BufferedRequest implements Backend.Request on top of a StreamRequester.
func BufferedRequest(ctx context.Context, sr StreamRequester, url string, method Method, expectedStatus int, out any) error {
	m, err := encodeJSONBody(method)
	if err != nil {
		return err
	}
	return sr.StreamRequest(ctx, url, m, ContentTypeJSON, expectedStatus, out)
}

func encodeJSONBody(method Method) (Method, error) {
	body, ok := method.Body()
	if !ok || body == nil {
		return method, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return method, meilierr.Wrap(meilierr.ErrInvalidRequest, err)
	}
	return method.withBody(bytes.NewReader(data)), nil
}

// bodyReader returns the io.Reader of a stream request, or nil when there is
// nothing to send.
func bodyReader(method Method) (io.Reader, error) {
	body, ok := method.Body()
	if !ok || body == nil {
		return nil, nil
	}
	r, ok := body.(io.Reader)
	if !ok {
		return nil, fmt.Errorf("%w: stream request body must be an io.Reader, got %T", meilierr.ErrInvalidRequest, body)
	}
	return r, nil
}

// Infallible is a placeholder for handles that must never reach the
// network. Every call fails with meilierr.ErrUnsupported.
type Infallible struct{}

var _ Backend = Infallible{}

func (Infallible) Request(context.Context, string, Method, int, any) error {
	return fmt.Errorf("%w: the infallible backend sends no requests", meilierr.ErrUnsupported)
}

func (Infallible) StreamRequest(context.Context, string, Method, string, int, any) error {
	return fmt.Errorf("%w: the infallible backend sends no requests", meilierr.ErrUnsupported)
}
