// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"time"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

// Index is a handle on one index. It may refer to an index that doesn't
// exist (yet), in which case operations fail with
// meilierr.CodeIndexNotFound.
type Index struct {
	UID        string
	PrimaryKey *string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time

	client *Client
}

// Index returns a handle on uid without contacting the server.
func (c *Client) Index(uid string) *Index {
	return &Index{UID: uid, client: c}
}

func (c *Client) indexFromInfo(info model.IndexInfo) *Index {
	return &Index{
		UID:        info.UID,
		PrimaryKey: info.PrimaryKey,
		CreatedAt:  info.CreatedAt,
		UpdatedAt:  info.UpdatedAt,
		client:     c,
	}
}

// ListIndexes returns a page of index metadata.
func (c *Client) ListIndexes(ctx context.Context, q *model.IndexesQuery) (model.IndexesResults, error) {
	return get[model.IndexesResults](ctx, c, c.path("indexes"), q)
}

// GetIndexes returns handles on a page of indexes.
func (c *Client) GetIndexes(ctx context.Context, q *model.IndexesQuery) ([]*Index, error) {
	results, err := c.ListIndexes(ctx, q)
	if err != nil {
		return nil, err
	}
	indexes := make([]*Index, 0, len(results.Results))
	for _, info := range results.Results {
		indexes = append(indexes, c.indexFromInfo(info))
	}
	return indexes, nil
}

// GetIndex fetches the metadata of uid into a new handle.
func (c *Client) GetIndex(ctx context.Context, uid string) (*Index, error) {
	info, err := c.GetRawIndex(ctx, uid)
	if err != nil {
		return nil, err
	}
	return c.indexFromInfo(info), nil
}

func (c *Client) GetRawIndex(ctx context.Context, uid string) (model.IndexInfo, error) {
	return get[model.IndexInfo](ctx, c, c.path("indexes", uid), nil)
}

// CreateIndex enqueues the creation of uid. An empty primaryKey lets the
// server infer it from the first documents.
func (c *Client) CreateIndex(ctx context.Context, uid, primaryKey string) (model.TaskInfo, error) {
	body := model.IndexCreation{UID: uid}
	if primaryKey != "" {
		body.PrimaryKey = &primaryKey
	}
	return c.enqueue(ctx, c.path("indexes"), transport.Post(nil, body))
}

func (c *Client) DeleteIndex(ctx context.Context, uid string) (model.TaskInfo, error) {
	return c.enqueue(ctx, c.path("indexes", uid), transport.Delete(nil))
}

// SwapIndexes enqueues the exchange of the content of each pair of indexes.
func (c *Client) SwapIndexes(ctx context.Context, swaps []model.SwapIndexes) (model.TaskInfo, error) {
	if swaps == nil {
		swaps = []model.SwapIndexes{}
	}
	return c.enqueue(ctx, c.path("swap-indexes"), transport.Post(nil, swaps))
}

// Client returns the client the handle was made from.
func (idx *Index) Client() *Client {
	return idx.client
}

func (idx *Index) path(segments ...string) string {
	return idx.client.path(append([]string{"indexes", idx.UID}, segments...)...)
}

// FetchInfo refreshes the metadata of the handle from the server.
func (idx *Index) FetchInfo(ctx context.Context) error {
	info, err := idx.client.GetRawIndex(ctx, idx.UID)
	if err != nil {
		return err
	}
	idx.UID = info.UID
	idx.PrimaryKey = info.PrimaryKey
	idx.CreatedAt = info.CreatedAt
	idx.UpdatedAt = info.UpdatedAt
	return nil
}

// GetPrimaryKey refreshes the handle and returns its primary key, nil when
// the server hasn't settled on one yet.
func (idx *Index) GetPrimaryKey(ctx context.Context) (*string, error) {
	if err := idx.FetchInfo(ctx); err != nil {
		return nil, err
	}
	return idx.PrimaryKey, nil
}

// Update enqueues a change of the primary key of the index.
func (idx *Index) Update(ctx context.Context, primaryKey string) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path(), transport.Patch(nil, model.IndexUpdate{PrimaryKey: &primaryKey}))
}

// Rename enqueues a change of the uid of the index.
func (idx *Index) Rename(ctx context.Context, uid string) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path(), transport.Patch(nil, model.IndexUpdate{UID: &uid}))
}

func (idx *Index) Delete(ctx context.Context) (model.TaskInfo, error) {
	return idx.client.DeleteIndex(ctx, idx.UID)
}

func (idx *Index) GetStats(ctx context.Context) (model.IndexStats, error) {
	return get[model.IndexStats](ctx, idx.client, idx.path("stats"), nil)
}

// Search runs q against the index and decodes the response into out,
// usually a *model.SearchResults[T].
func (idx *Index) Search(ctx context.Context, q *model.SearchQuery, out any) error {
	if q == nil {
		q = &model.SearchQuery{}
	}
	return idx.client.do(ctx, idx.path("search"), transport.Post(nil, q), http.StatusOK, out)
}

// Search runs q against idx and decodes the hits as T.
func Search[T any](ctx context.Context, idx *Index, q *model.SearchQuery) (model.SearchResults[T], error) {
	var results model.SearchResults[T]
	if err := idx.Search(ctx, q, &results); err != nil {
		return model.SearchResults[T]{}, err
	}
	return results, nil
}
