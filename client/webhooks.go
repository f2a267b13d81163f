// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

func (c *Client) GetWebhooks(ctx context.Context) (model.WebhookList, error) {
	return get[model.WebhookList](ctx, c, c.path("webhooks"), nil)
}

func (c *Client) GetWebhook(ctx context.Context, id uuid.UUID) (model.WebhookInfo, error) {
	return get[model.WebhookInfo](ctx, c, c.path("webhooks", id.String()), nil)
}

func (c *Client) CreateWebhook(ctx context.Context, wc *model.WebhookCreate) (model.WebhookInfo, error) {
	var info model.WebhookInfo
	if err := c.do(ctx, c.path("webhooks"), transport.Post(nil, wc), http.StatusCreated, &info); err != nil {
		return model.WebhookInfo{}, err
	}
	return info, nil
}

// UpdateWebhook applies wu to the webhook. Headers left untouched by wu are
// kept by the server.
func (c *Client) UpdateWebhook(ctx context.Context, id uuid.UUID, wu *model.WebhookUpdate) (model.WebhookInfo, error) {
	var info model.WebhookInfo
	if err := c.do(ctx, c.path("webhooks", id.String()), transport.Patch(nil, wu), http.StatusOK, &info); err != nil {
		return model.WebhookInfo{}, err
	}
	return info, nil
}

func (c *Client) DeleteWebhook(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, c.path("webhooks", id.String()), transport.Delete(nil), http.StatusNoContent, nil)
}
