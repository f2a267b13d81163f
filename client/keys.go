// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

func (c *Client) GetKeys(ctx context.Context, q *model.KeysQuery) (model.KeysResults, error) {
	return get[model.KeysResults](ctx, c, c.path("keys"), q)
}

// GetKey fetches a key by its value or its uid.
func (c *Client) GetKey(ctx context.Context, keyOrUID string) (model.Key, error) {
	return get[model.Key](ctx, c, c.path("keys", keyOrUID), nil)
}

func (c *Client) CreateKey(ctx context.Context, kb *model.KeyBuilder) (model.Key, error) {
	if kb == nil {
		kb = model.NewKeyBuilder()
	}
	var key model.Key
	if err := c.do(ctx, c.path("keys"), transport.Post(nil, kb), http.StatusCreated, &key); err != nil {
		return model.Key{}, err
	}
	return key, nil
}

// UpdateKey changes the name or description of the key named by ku.
func (c *Client) UpdateKey(ctx context.Context, ku *model.KeyUpdater) (model.Key, error) {
	var key model.Key
	if err := c.do(ctx, c.path("keys", ku.Key), transport.Patch(nil, ku), http.StatusOK, &key); err != nil {
		return model.Key{}, err
	}
	return key, nil
}

func (c *Client) DeleteKey(ctx context.Context, keyOrUID string) error {
	return c.do(ctx, c.path("keys", keyOrUID), transport.Delete(nil), http.StatusNoContent, nil)
}
