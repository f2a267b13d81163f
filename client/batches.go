// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"strconv"

	"github.com/xmidt-org/meili/model"
)

// GetBatches lists the batches the autobatcher formed.
func (c *Client) GetBatches(ctx context.Context, q *model.BatchesQuery) (model.BatchesResults, error) {
	return get[model.BatchesResults](ctx, c, c.path("batches"), q)
}

func (c *Client) GetBatch(ctx context.Context, uid uint32) (model.Batch, error) {
	return get[model.Batch](ctx, c, c.path("batches", strconv.FormatUint(uint64(uid), 10)), nil)
}
