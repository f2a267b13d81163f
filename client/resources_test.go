// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/meili/meilitest"
	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

const (
	taskInfo   = `{"taskUid":4,"indexUid":null,"status":"enqueued","type":"dumpCreation","enqueuedAt":"2022-02-03T13:02:38.369634Z"}`
	webhookID  = "627ea538-733d-4545-8d2d-03526eb381ce"
	webhookRaw = `{"uuid":"` + webhookID + `","isEditable":true,"url":"https://example.com/hook","headers":{"a":"1"}}`
	keyRaw     = `{"key":"k","uid":"76cf8b87-fd12-4688-ad34-260d930ca4f4","name":"n","description":null,` +
		`"actions":["search"],"indexes":["*"],"expiresAt":null,` +
		`"createdAt":"2022-02-03T13:02:38.369634Z","updatedAt":"2022-02-03T13:02:38.369634Z"}`
)

func TestResources(t *testing.T) {
	id := uuid.MustParse(webhookID)

	tests := []struct {
		description  string
		method       string
		path         string
		status       int
		response     string
		call         func(context.Context, *Client) error
		expectedBody string
		expectedRaw  string
		expectedQry  string
		emptyBody    bool
	}{
		{
			description: "create dump",
			method:      http.MethodPost, path: "/dumps", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				ti, err := c.CreateDump(ctx)
				assert.Equal(t, uint32(4), ti.TaskUID)
				return err
			},
		},
		{
			description: "create snapshot",
			method:      http.MethodPost, path: "/snapshots", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateSnapshot(ctx)
				return err
			},
		},
		{
			description: "create export",
			method:      http.MethodPost, path: "/export", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateExport(ctx, model.NewExportPayload("https://remote:7700"))
				return err
			},
		},
		{
			description: "cancel tasks",
			method:      http.MethodPost, path: "/tasks/cancel", status: http.StatusOK, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CancelTasks(ctx, model.TaskFilter{UIDs: []uint32{1, 2}})
				return err
			},
			expectedQry: "uids=1%2C2",
		},
		{
			description: "delete tasks",
			method:      http.MethodDelete, path: "/tasks", status: http.StatusOK, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DeleteTasks(ctx, model.TaskFilter{Statuses: []model.TaskStatus{model.StatusFailed}})
				return err
			},
			expectedQry: "statuses=failed",
		},
		{
			description: "create key",
			method:      http.MethodPost, path: "/keys", status: http.StatusCreated, response: keyRaw,
			call: func(ctx context.Context, c *Client) error {
				key, err := c.CreateKey(ctx, model.NewKeyBuilder().WithName("n"))
				assert.Equal(t, "k", key.Key)
				return err
			},
			expectedBody: `{"actions":[],"indexes":[],"expiresAt":null,"name":"n"}`,
		},
		{
			description: "update key",
			method:      http.MethodPatch, path: "/keys/k", status: http.StatusOK, response: keyRaw,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateKey(ctx, model.NewKeyUpdater("k").WithDescription("d"))
				return err
			},
		},
		{
			description: "delete key",
			method:      http.MethodDelete, path: "/keys/k", status: http.StatusNoContent,
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteKey(ctx, "k")
			},
		},
		{
			description: "create webhook",
			method:      http.MethodPost, path: "/webhooks", status: http.StatusCreated, response: webhookRaw,
			call: func(ctx context.Context, c *Client) error {
				info, err := c.CreateWebhook(ctx, model.NewWebhookCreate("https://example.com/hook").WithHeader("a", "1"))
				assert.Equal(t, id, info.UUID)
				return err
			},
			expectedBody: `{"url":"https://example.com/hook","headers":{"a":"1"}}`,
		},
		{
			description: "update webhook",
			method:      http.MethodPatch, path: "/webhooks/" + webhookID, status: http.StatusOK, response: webhookRaw,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateWebhook(ctx, id, model.NewWebhookUpdate().SetHeader("a", "1").RemoveHeader("b"))
				return err
			},
			expectedBody: `{"headers":{"a":"1","b":null}}`,
		},
		{
			description: "delete webhook",
			method:      http.MethodDelete, path: "/webhooks/" + webhookID, status: http.StatusNoContent,
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteWebhook(ctx, id)
			},
		},
		{
			description: "update network",
			method:      http.MethodPatch, path: "/network", status: http.StatusOK, response: `{"self":"X","remotes":{}}`,
			call: func(ctx context.Context, c *Client) error {
				state, err := c.UpdateNetwork(ctx, model.NewNetworkUpdate().WithSelf("X"))
				require.NotNil(t, state.Self)
				assert.Equal(t, "X", *state.Self)
				return err
			},
			expectedBody: `{"self":"X","remotes":{}}`,
		},
		{
			description: "update network without changes",
			method:      http.MethodPatch, path: "/network", status: http.StatusOK, response: `{"self":null,"remotes":{}}`,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetwork(ctx, nil)
				return err
			},
			emptyBody: true,
		},
		{
			description: "update experimental features",
			method:      http.MethodPatch, path: "/experimental-features", status: http.StatusOK, response: `{"metrics":true}`,
			call: func(ctx context.Context, c *Client) error {
				on := true
				result, err := c.UpdateExperimentalFeatures(ctx, model.ExperimentalFeatures{Metrics: &on})
				assert.True(t, result.Metrics)
				return err
			},
			expectedBody: `{"metrics":true}`,
		},
		{
			description: "interrupt log stream",
			method:      http.MethodDelete, path: "/logs/stream", status: http.StatusNoContent,
			call: func(ctx context.Context, c *Client) error {
				return c.InterruptLogStream(ctx)
			},
		},
		{
			description: "update stderr logs",
			method:      http.MethodPost, path: "/logs/stderr", status: http.StatusNoContent,
			call: func(ctx context.Context, c *Client) error {
				return c.UpdateStderrLogs(ctx, model.NewLogLevel{Target: "milli=trace"})
			},
			expectedBody: `{"target":"milli=trace"}`,
		},
		{
			description: "reset chat workspace settings",
			method:      http.MethodDelete, path: "/chats/support/settings", status: http.StatusOK, response: `{}`,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ResetChatWorkspaceSettings(ctx, "support")
				return err
			},
		},
		{
			description: "get batch",
			method:      http.MethodGet, path: "/batches/3", status: http.StatusOK, response: `{"uid":3}`,
			call: func(ctx context.Context, c *Client) error {
				b, err := c.GetBatch(ctx, 3)
				assert.Equal(t, uint32(3), b.UID)
				return err
			},
		},
		{
			description: "delete all documents",
			method:      http.MethodDelete, path: "/indexes/movies/documents", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Index("movies").DeleteAllDocuments(ctx)
				return err
			},
		},
		{
			description: "delete documents by filter",
			method:      http.MethodPost, path: "/indexes/movies/documents/delete", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Index("movies").DeleteDocumentsByFilter(ctx, "genre = horror")
				return err
			},
			expectedBody: `{"filter":"genre = horror"}`,
		},
		{
			description: "update index primary key",
			method:      http.MethodPatch, path: "/indexes/movies", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Index("movies").Update(ctx, "id")
				return err
			},
			expectedBody: `{"primaryKey":"id"}`,
		},
		{
			description: "stream ndjson documents",
			method:      http.MethodPost, path: "/indexes/movies/documents", status: http.StatusAccepted, response: taskInfo,
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Index("movies").AddDocumentsNDJSON(ctx, strings.NewReader("{\"id\":1}\n{\"id\":2}\n"), "id")
				return err
			},
			expectedRaw: "{\"id\":1}\n{\"id\":2}\n",
			expectedQry: "primaryKey=id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert := assert.New(t)
			server := meilitest.NewServer(t)
			server.Respond(tc.method, tc.path, tc.status, tc.response)
			c := newTestClient(t, server.URL, "masterKey")

			require.NoError(t, tc.call(context.Background(), c))

			requests := server.Requests()
			require.Len(t, requests, 1)
			r := requests[0]
			assert.Equal(tc.method, r.Method)
			assert.Equal(tc.path, r.Path)
			assert.Equal("Bearer masterKey", r.Header.Get("Authorization"))
			if tc.expectedBody != "" {
				assert.JSONEq(tc.expectedBody, string(r.Body))
			}
			if tc.emptyBody {
				assert.Empty(r.Body)
			}
			if tc.expectedRaw != "" {
				assert.Equal(tc.expectedRaw, string(r.Body))
				assert.Equal(transport.ContentTypeNDJSON, r.Header.Get("Content-Type"))
			}
			if tc.expectedQry != "" {
				assert.Equal(tc.expectedQry, r.Query.Encode())
			}
		})
	}
}

func TestIndexNotFound(t *testing.T) {
	engine := meilitest.NewEngine(t)
	c := newTestClient(t, engine.URL, "")

	_, err := c.GetIndex(context.Background(), "missing")
	assert.True(t, meilierr.HasCode(err, meilierr.CodeIndexNotFound))
	assert.Equal(t, meilierr.KindMeilisearch, meilierr.KindOf(err))
}

func TestStreamChatCompletion(t *testing.T) {
	assert := assert.New(t)
	server := meilitest.NewServer(t)
	server.HandleFunc(http.MethodPost, "/chats/support/chat/completions", func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", transport.AcceptEventStream)
		io.WriteString(rw, "data: {\"id\":\"1\"}\n\ndata: [DONE]\n\n")
	})
	c := newTestClient(t, server.URL, "")

	body, err := c.StreamChatCompletion(context.Background(), "support", map[string]any{
		"model":  "gpt-4o",
		"stream": true,
	})
	require.NoError(t, err)
	defer body.Close()

	events, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(string(events), "data: [DONE]")

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(transport.AcceptEventStream, requests[0].Header.Get("Accept"))
}

func TestOpenStreamUnsupported(t *testing.T) {
	c, err := NewWithBackend("http://localhost:7700", "", transport.Infallible{})
	require.NoError(t, err)

	_, err = c.OpenLogStream(context.Background(), model.LogStreamRequest{Target: "milli", Mode: model.LogModeHuman})
	assert.ErrorIs(t, err, meilierr.ErrUnsupported)
}

func TestOpenLogStreamWithMockBackend(t *testing.T) {
	backend := new(meilitest.MockBackend)
	backend.On("OpenStream", mock.Anything, "http://localhost:7700/logs/stream", mock.Anything, "", http.StatusOK).
		Return(io.NopCloser(strings.NewReader("log line\n")), nil)
	c, err := NewWithBackend("http://localhost:7700/", "", backend)
	require.NoError(t, err)

	body, err := c.OpenLogStream(context.Background(), model.LogStreamRequest{Target: "milli", Mode: model.LogModeJSON})
	require.NoError(t, err)
	b, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "log line\n", string(b))
	backend.AssertExpectations(t)
}
