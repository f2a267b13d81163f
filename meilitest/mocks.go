// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package meilitest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/meili/transport"
)

// MockBackend is a transport.Backend driven by testify expectations. A
// non-nil first return value that is a []byte or string is decoded as JSON
// into the output argument.
type MockBackend struct {
	mock.Mock
}

var (
	_ transport.Backend  = (*MockBackend)(nil)
	_ transport.Streamer = (*MockBackend)(nil)
)

func (m *MockBackend) Request(ctx context.Context, url string, method transport.Method, expectedStatus int, out any) error {
	args := m.Called(ctx, url, method, expectedStatus, out)
	return decodeResult(args, out)
}

func (m *MockBackend) StreamRequest(ctx context.Context, url string, method transport.Method, contentType string, expectedStatus int, out any) error {
	args := m.Called(ctx, url, method, contentType, expectedStatus, out)
	return decodeResult(args, out)
}

func (m *MockBackend) OpenStream(ctx context.Context, url string, method transport.Method, accept string, expectedStatus int) (io.ReadCloser, error) {
	args := m.Called(ctx, url, method, accept, expectedStatus)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func decodeResult(args mock.Arguments, out any) error {
	if err := args.Error(1); err != nil {
		return err
	}
	var body []byte
	switch v := args.Get(0).(type) {
	case nil:
		return nil
	case []byte:
		body = v
	case string:
		body = []byte(v)
	default:
		return nil
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
