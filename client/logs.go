// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"net/http"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

// OpenLogStream starts streaming the server logs. The body stays open until
// it is closed, ctx ends or InterruptLogStream is called.
func (c *Client) OpenLogStream(ctx context.Context, request model.LogStreamRequest) (io.ReadCloser, error) {
	return c.openStream(ctx, c.path("logs", "stream"), transport.Post(nil, request), "", http.StatusOK)
}

func (c *Client) InterruptLogStream(ctx context.Context) error {
	return c.do(ctx, c.path("logs", "stream"), transport.Delete(nil), http.StatusNoContent, nil)
}

// UpdateStderrLogs changes the targets logged on the server's stderr.
func (c *Client) UpdateStderrLogs(ctx context.Context, level model.NewLogLevel) error {
	return c.do(ctx, c.path("logs", "stderr"), transport.Post(nil, level), http.StatusNoContent, nil)
}
