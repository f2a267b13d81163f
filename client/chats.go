// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

func (c *Client) ListChatWorkspaces(ctx context.Context, q *model.ChatWorkspacesQuery) (model.ChatWorkspacesResults, error) {
	return get[model.ChatWorkspacesResults](ctx, c, c.path("chats"), q)
}

func (c *Client) GetChatWorkspace(ctx context.Context, uid string) (model.ChatWorkspace, error) {
	return get[model.ChatWorkspace](ctx, c, c.path("chats", uid), nil)
}

func (c *Client) GetChatWorkspaceSettings(ctx context.Context, uid string) (model.ChatWorkspaceSettings, error) {
	return get[model.ChatWorkspaceSettings](ctx, c, c.path("chats", uid, "settings"), nil)
}

// UpdateChatWorkspaceSettings changes the non nil settings of the workspace,
// creating it when needed.
func (c *Client) UpdateChatWorkspaceSettings(ctx context.Context, uid string, settings model.ChatWorkspaceSettings) (model.ChatWorkspaceSettings, error) {
	return c.chatSettings(ctx, uid, transport.Patch(nil, settings))
}

func (c *Client) ResetChatWorkspaceSettings(ctx context.Context, uid string) (model.ChatWorkspaceSettings, error) {
	return c.chatSettings(ctx, uid, transport.Delete(nil))
}

func (c *Client) chatSettings(ctx context.Context, uid string, m transport.Method) (model.ChatWorkspaceSettings, error) {
	var s model.ChatWorkspaceSettings
	if err := c.do(ctx, c.path("chats", uid, "settings"), m, http.StatusOK, &s); err != nil {
		return model.ChatWorkspaceSettings{}, err
	}
	return s, nil
}

// StreamChatCompletion sends an OpenAI style completion request to the
// workspace and returns the server sent events body. The caller must close
// it. Backends that can't hand back a live body fail with
// meilierr.ErrUnsupported.
func (c *Client) StreamChatCompletion(ctx context.Context, uid string, request any) (io.ReadCloser, error) {
	return c.openStream(ctx, c.path("chats", uid, "chat", "completions"), transport.Post(nil, request), transport.AcceptEventStream, http.StatusOK)
}

func (c *Client) openStream(ctx context.Context, u string, m transport.Method, accept string, status int) (io.ReadCloser, error) {
	s, ok := c.backend.(transport.Streamer)
	if !ok {
		return nil, fmt.Errorf("%w: %T can't stream responses", meilierr.ErrUnsupported, c.backend)
	}
	return s.OpenStream(ctx, u, m, accept, status)
}
