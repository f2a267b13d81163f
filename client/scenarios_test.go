// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/meili/meilitest"
	"github.com/xmidt-org/meili/model"
)

type film struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type keyed struct {
	ID string `json:"id"`
}

func wait(t *testing.T, c *Client, ti model.TaskInfo, err error) model.Task {
	require.NoError(t, err)
	task, err := c.WaitForTask(context.Background(), ti, time.Millisecond, 6000*time.Millisecond)
	require.NoError(t, err)
	return task
}

func TestCreateIndexAndMakeHandle(t *testing.T) {
	assert := assert.New(t)
	engine := meilitest.NewEngine(t)
	c := newTestClient(t, engine.URL, "")

	ti, err := c.CreateIndex(context.Background(), "movies", "")
	task := wait(t, c, ti, err)

	s, ok := task.(*model.SucceededTask)
	require.True(t, ok)
	assert.Equal(model.TaskKindIndexCreation, s.Type.Kind)
	details, ok := s.Type.Details.(*model.IndexCreationDetails)
	require.True(t, ok)
	assert.Nil(details.PrimaryKey)

	idx, rest := c.TryMakeIndex(task)
	assert.Nil(rest)
	require.NotNil(t, idx)
	assert.Equal("movies", idx.UID)

	require.NoError(t, idx.FetchInfo(context.Background()))
	assert.NotNil(idx.CreatedAt)
}

func TestAddDocumentsAndWait(t *testing.T) {
	assert := assert.New(t)
	engine := meilitest.NewEngine(t)
	c := newTestClient(t, engine.URL, "")
	idx := c.Index("movies")

	ti, err := idx.AddDocuments(context.Background(), []film{{ID: 0, Title: "Le Petit Prince"}, {ID: 1, Title: "Alice"}}, "")
	task := wait(t, c, ti, err)

	s, ok := task.(*model.SucceededTask)
	require.True(t, ok)
	assert.Equal(model.TaskKindDocumentAdditionOrUpdate, s.Type.Kind)
	details, ok := s.Type.Details.(*model.DocumentAdditionOrUpdateDetails)
	require.True(t, ok)
	assert.Equal(2, details.ReceivedDocuments)
	require.NotNil(t, details.IndexedDocuments)
	assert.Equal(2, *details.IndexedDocuments)

	docs, err := GetDocuments[film](context.Background(), idx, nil)
	require.NoError(t, err)
	assert.Equal([]film{{ID: 0, Title: "Le Petit Prince"}, {ID: 1, Title: "Alice"}}, docs.Results)

	pk, err := idx.GetPrimaryKey(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pk)
	assert.Equal("id", *pk)
}

func TestInvalidRankingRule(t *testing.T) {
	assert := assert.New(t)
	engine := meilitest.NewEngine(t)
	c := newTestClient(t, engine.URL, "")

	ti, err := c.Index("movies").SetRankingRules(context.Background(), []string{"wrong_ranking_rule"})
	task := wait(t, c, ti, err)

	require.True(t, model.IsFailure(task))
	failure := model.UnwrapFailure(task)
	assert.Equal(meilierr.CodeInvalidRankingRule, failure.Code)
	assert.Equal(meilierr.TypeInvalidRequest, failure.Type)
}

func TestSwapIndexes(t *testing.T) {
	assert := assert.New(t)
	engine := meilitest.NewEngine(t)
	c := newTestClient(t, engine.URL, "")
	ctx := context.Background()

	ti, err := c.Index("swap_index_1").AddDocuments(ctx, []keyed{{ID: "1"}}, "")
	wait(t, c, ti, err)
	ti, err = c.Index("swap_index_2").AddDocuments(ctx, []keyed{{ID: "2"}}, "")
	wait(t, c, ti, err)

	ti, err = c.SwapIndexes(ctx, []model.SwapIndexes{{Indexes: [2]string{"swap_index_1", "swap_index_2"}}})
	task := wait(t, c, ti, err)
	assert.True(model.IsSuccess(task))

	var swaps []model.SwapIndexes
	for _, r := range engine.Requests() {
		if r.Method == http.MethodPost && r.Path == "/swap-indexes" {
			assert.JSONEq(`[{"indexes":["swap_index_1","swap_index_2"]}]`, string(r.Body))
			require.NoError(t, json.Unmarshal(r.Body, &swaps))
		}
	}
	assert.Len(swaps, 1)

	var doc keyed
	require.NoError(t, c.Index("swap_index_1").GetDocument(ctx, "2", nil, &doc))
	assert.Equal(keyed{ID: "2"}, doc)

	err = c.Index("swap_index_1").GetDocument(ctx, "1", nil, &doc)
	assert.True(meilierr.HasCode(err, meilierr.CodeDocumentNotFound))
}

func TestAddDocumentsInBatches(t *testing.T) {
	tcs := []struct {
		Description string
		Documents   int
		BatchSize   int
		Expected    []int
	}{
		{Description: "Uneven", Documents: 7, BatchSize: 3, Expected: []int{3, 3, 1}},
		{Description: "Even", Documents: 4, BatchSize: 2, Expected: []int{2, 2}},
		{Description: "Default size", Documents: 5, Expected: []int{5}},
		{Description: "Nothing", Documents: 0, BatchSize: 2},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			engine := meilitest.NewEngine(t)
			c := newTestClient(t, engine.URL, "")

			docs := make([]film, tc.Documents)
			for i := range docs {
				docs[i] = film{ID: i}
			}
			tasks, err := AddDocumentsInBatches(context.Background(), c.Index("movies"), docs, tc.BatchSize, "id")
			require.NoError(t, err)
			assert.Len(tasks, len(tc.Expected))

			var (
				posts []meilitest.Request
				next  int
			)
			for _, r := range engine.Requests() {
				if r.Method == http.MethodPost && r.Path == "/indexes/movies/documents" {
					posts = append(posts, r)
				}
			}
			require.Len(t, posts, len(tc.Expected))
			for i, r := range posts {
				assert.Equal("id", r.Query.Get("primaryKey"))
				var chunk []film
				require.NoError(t, json.Unmarshal(r.Body, &chunk))
				assert.Equal(docs[next:next+tc.Expected[i]], chunk)
				next += tc.Expected[i]
				assert.Equal(tasks[i].TaskUID, uint32(i))
			}
		})
	}
}

func TestUpdateDocumentsInBatchesStopsOnRequestFailure(t *testing.T) {
	assert := assert.New(t)
	server := meilitest.NewServer(t)
	server.RespondSequence(http.MethodPut, "/indexes/movies/documents",
		meilitest.Response{Status: http.StatusAccepted, Body: `{"taskUid":4,"indexUid":"movies","status":"enqueued","type":"documentAdditionOrUpdate","enqueuedAt":"2026-01-01T00:00:00Z"}`},
		meilitest.Response{Status: http.StatusBadRequest, Body: `{"message":"bad","code":"bad_request","type":"invalid_request","link":"l"}`},
	)
	c := newTestClient(t, server.URL, "")

	tasks, err := UpdateDocumentsInBatches(context.Background(), c.Index("movies"), []film{{ID: 1}, {ID: 2}, {ID: 3}}, 1, "")
	assert.Equal(meilierr.KindMeilisearch, meilierr.KindOf(err))
	require.Len(t, tasks, 1)
	assert.Equal(uint32(4), tasks[0].TaskUID)
	assert.Equal(2, server.Count(http.MethodPut, "/indexes/movies/documents"))
}

func TestGetBatchesStrategy(t *testing.T) {
	assert := assert.New(t)
	server := meilitest.NewServer(t)
	server.Respond(http.MethodGet, "/batches", http.StatusOK, `{
		"results": [{
			"uid": 0,
			"progress": null,
			"details": {"receivedDocuments": 1, "indexedDocuments": 1},
			"stats": {"totalNbTasks": 1, "status": {"succeeded": 1}, "types": {"documentAdditionOrUpdate": 1}, "indexUids": {"movies": 1}},
			"duration": "PT0.110083S",
			"startedAt": "2024-12-10T15:20:30.18182Z",
			"finishedAt": "2024-12-10T15:20:30.291903Z",
			"batchStrategy": "time_limit_reached"
		}],
		"total": 1, "limit": 20, "from": 0, "next": null
	}`)
	c := newTestClient(t, server.URL, "")

	batches, err := c.GetBatches(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, batches.Results, 1)
	require.NotNil(t, batches.Results[0].BatchStrategy)
	assert.Equal(model.BatchStrategyTimeLimitReached, *batches.Results[0].BatchStrategy)
	assert.Equal(1, batches.Results[0].Stats.IndexUIDs["movies"])
}
