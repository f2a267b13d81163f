// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
	"go.uber.org/zap"
)

const availableStatus = "available"

func (c *Client) Health(ctx context.Context) (model.Health, error) {
	return get[model.Health](ctx, c, c.path("health"), nil)
}

// IsHealthy reports whether the server answered its health check as
// available.
func (c *Client) IsHealthy(ctx context.Context) bool {
	h, err := c.Health(ctx)
	if err != nil {
		c.loggerFor(ctx).Debug("Meilisearch health check failed", zap.Error(err))
		return false
	}
	return h.Status == availableStatus
}

func (c *Client) GetVersion(ctx context.Context) (model.Version, error) {
	return get[model.Version](ctx, c, c.path("version"), nil)
}

func (c *Client) GetStats(ctx context.Context) (model.ClientStats, error) {
	return get[model.ClientStats](ctx, c, c.path("stats"), nil)
}

func (c *Client) CreateSnapshot(ctx context.Context) (model.TaskInfo, error) {
	return c.enqueue(ctx, c.path("snapshots"), transport.Post(nil, nil))
}

func (c *Client) CreateDump(ctx context.Context) (model.TaskInfo, error) {
	return c.enqueue(ctx, c.path("dumps"), transport.Post(nil, nil))
}

// CreateExport enqueues the transfer of indexes to another instance.
func (c *Client) CreateExport(ctx context.Context, payload *model.ExportPayload) (model.TaskInfo, error) {
	return c.enqueue(ctx, c.path("export"), transport.Post(nil, payload))
}
