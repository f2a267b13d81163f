// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilierr"
)

const (
	enqueuedSnapshot = `{
  "enqueuedAt": "2022-02-03T13:02:38.369634Z",
  "indexUid": "mieli",
  "status": "enqueued",
  "type": "documentAdditionOrUpdate",
  "uid": 12
}`
	processingSnapshot = `{
  "details": {
    "indexedDocuments": null,
    "receivedDocuments": 19547
  },
  "duration": null,
  "enqueuedAt": "2022-02-03T15:17:02.801341Z",
  "finishedAt": null,
  "indexUid": "mieli",
  "startedAt": "2022-02-03T15:17:02.812338Z",
  "status": "processing",
  "type": "documentAdditionOrUpdate",
  "uid": 14
}`
	succeededSnapshot = `{
  "details": {
    "indexedDocuments": 19546,
    "receivedDocuments": 19547
  },
  "duration": "PT10.848957S",
  "enqueuedAt": "2022-02-03T15:17:02.801341Z",
  "finishedAt": "2022-02-03T15:17:13.661295Z",
  "indexUid": "mieli",
  "startedAt": "2022-02-03T15:17:02.812338Z",
  "status": "succeeded",
  "type": "documentAdditionOrUpdate",
  "uid": 14
}`
	failedSnapshot = `{
  "uid": 3,
  "indexUid": "movies",
  "status": "failed",
  "type": "settingsUpdate",
  "details": {"rankingRules": ["wrong_ranking_rule"]},
  "error": {
    "message": "` + "`wrong_ranking_rule`" + ` ranking rule is invalid.",
    "code": "invalid_settings_ranking_rules",
    "type": "invalid_request",
    "link": "https://docs.meilisearch.com/errors#invalid_settings_ranking_rules"
  },
  "duration": "PT0.003S",
  "enqueuedAt": "2022-02-03T15:17:02.801341Z",
  "startedAt": "2022-02-03T15:17:02.812338Z",
  "finishedAt": "2022-02-03T15:17:02.815338Z"
}`
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return v
}

func TestUnmarshalTaskEnqueued(t *testing.T) {
	assert := assert.New(t)
	task, err := UnmarshalTask([]byte(enqueuedSnapshot))
	require.NoError(t, err)

	enqueued, ok := task.(*EnqueuedTask)
	require.True(t, ok)
	assert.Equal(uint32(12), enqueued.TaskID())
	assert.Equal("mieli", enqueued.IndexUID)
	assert.Equal(mustTime(t, "2022-02-03T13:02:38.369634Z"), enqueued.EnqueuedAt)
	assert.Equal(TaskKindDocumentAdditionOrUpdate, enqueued.Type.Kind)
	assert.Nil(enqueued.Type.Details)
	assert.True(IsPending(task))
	assert.False(IsSuccess(task))
}

func TestUnmarshalTaskProcessing(t *testing.T) {
	assert := assert.New(t)
	task, err := UnmarshalTask([]byte(processingSnapshot))
	require.NoError(t, err)

	processing, ok := task.(*ProcessingTask)
	require.True(t, ok)
	assert.Equal(uint32(14), processing.UID)
	require.NotNil(t, processing.StartedAt)
	details, ok := processing.Type.Details.(*DocumentAdditionOrUpdateDetails)
	require.True(t, ok)
	assert.Equal(19547, details.ReceivedDocuments)
	assert.Nil(details.IndexedDocuments)
	assert.Equal(StatusProcessing, task.Status())
}

func TestUnmarshalTaskSucceeded(t *testing.T) {
	assert := assert.New(t)
	task, err := UnmarshalTask([]byte(succeededSnapshot))
	require.NoError(t, err)

	succeeded, ok := task.(*SucceededTask)
	require.True(t, ok)
	assert.Equal(10*time.Second+848957*time.Microsecond, succeeded.Duration)
	assert.Equal(mustTime(t, "2022-02-03T15:17:02.812338Z"), succeeded.StartedAt)
	assert.Equal(mustTime(t, "2022-02-03T15:17:13.661295Z"), succeeded.FinishedAt)
	details, ok := succeeded.Type.Details.(*DocumentAdditionOrUpdateDetails)
	require.True(t, ok)
	assert.Equal(19547, details.ReceivedDocuments)
	require.NotNil(t, details.IndexedDocuments)
	assert.Equal(19546, *details.IndexedDocuments)
	assert.True(IsSuccess(task))
	assert.False(IsFailure(task))
	assert.True(task.Status().IsTerminal())
}

func TestUnmarshalTaskFailed(t *testing.T) {
	assert := assert.New(t)
	task, err := UnmarshalTask([]byte(failedSnapshot))
	require.NoError(t, err)

	assert.True(IsFailure(task))
	failure := UnwrapFailure(task)
	assert.Equal(meilierr.CodeInvalidRankingRule, failure.Code)
	assert.Equal(meilierr.TypeInvalidRequest, failure.Type)

	settings, ok := task.Content().Type.Details.(*Settings)
	require.True(t, ok)
	assert.Equal([]string{"wrong_ranking_rule"}, settings.RankingRules)
}

func TestUnwrapFailurePanics(t *testing.T) {
	task, err := UnmarshalTask([]byte(succeededSnapshot))
	require.NoError(t, err)
	assert.Panics(t, func() { UnwrapFailure(task) })
}

func TestUnmarshalTaskVariants(t *testing.T) {
	tcs := []struct {
		Description    string
		Body           string
		ExpectedErr    error
		ExpectedStatus TaskStatus
		ExpectedKind   TaskKind
		ExpectedName   string
	}{
		{
			Description:    "Legacy type name",
			Body:           `{"uid":1,"indexUid":"a","status":"enqueued","type":"documentAddition","enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedStatus: StatusEnqueued,
			ExpectedKind:   TaskKindDocumentAdditionOrUpdate,
			ExpectedName:   "documentAddition",
		},
		{
			Description:    "Unknown type becomes customs",
			Body:           `{"uid":1,"indexUid":null,"status":"enqueued","type":"upgradeDatabase","details":{"from":"v1"},"enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedStatus: StatusEnqueued,
			ExpectedKind:   TaskKindCustoms,
			ExpectedName:   "upgradeDatabase",
		},
		{
			Description:    "Canceled before start",
			Body:           `{"uid":4,"indexUid":"a","status":"canceled","type":"indexCreation","canceledBy":5,"startedAt":null,"finishedAt":"2022-02-03T13:02:39Z","duration":null,"enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedStatus: StatusCanceled,
			ExpectedKind:   TaskKindIndexCreation,
			ExpectedName:   "indexCreation",
		},
		{
			Description: "Succeeded without duration",
			Body:        `{"uid":1,"indexUid":"a","status":"succeeded","type":"indexCreation","startedAt":"2022-02-03T13:02:38Z","finishedAt":"2022-02-03T13:02:38Z","duration":null,"enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedErr: ErrIncompleteTask,
		},
		{
			Description: "Failed without error",
			Body:        `{"uid":1,"indexUid":"a","status":"failed","type":"indexCreation","startedAt":"2022-02-03T13:02:38Z","finishedAt":"2022-02-03T13:02:38Z","duration":"PT1S","enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedErr: ErrMissingTaskFailure,
		},
		{
			Description: "Unknown status",
			Body:        `{"uid":1,"status":"paused","type":"indexCreation","enqueuedAt":"2022-02-03T13:02:38Z"}`,
			ExpectedErr: ErrUnknownTaskStatus,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			task, err := UnmarshalTask([]byte(tc.Body))
			if tc.ExpectedErr != nil {
				assert.ErrorIs(err, tc.ExpectedErr)
				assert.Nil(task)
				return
			}
			require.NoError(t, err)
			assert.Equal(tc.ExpectedStatus, task.Status())
			assert.Equal(tc.ExpectedKind, task.Content().Type.Kind)
			assert.Equal(tc.ExpectedName, task.Content().Type.Name)
		})
	}
}

func TestCustomsKeepsRawDetails(t *testing.T) {
	task, err := UnmarshalTask([]byte(`{"uid":1,"status":"enqueued","type":"upgradeDatabase","details":{"from":"v1"},"enqueuedAt":"2022-02-03T13:02:38Z"}`))
	require.NoError(t, err)
	raw, ok := task.Content().Type.Details.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"from":"v1"}`, string(raw))
	assert.Empty(t, task.Content().IndexUID)
}

func TestUnmarshalTaskInfo(t *testing.T) {
	assert := assert.New(t)
	var ti TaskInfo
	err := json.Unmarshal([]byte(`{
  "enqueuedAt": "2022-02-03T13:02:38.369634Z",
  "indexUid": "mieli",
  "status": "enqueued",
  "type": "documentAdditionOrUpdate",
  "taskUid": 12
}`), &ti)
	require.NoError(t, err)
	assert.Equal(uint32(12), ti.TaskID())
	assert.Equal("mieli", ti.IndexUID)
	assert.Equal(StatusEnqueued, ti.Status)
	assert.Equal(TaskKindDocumentAdditionOrUpdate, ti.Type.Kind)
	assert.Nil(ti.Type.Details)
	assert.Equal(mustTime(t, "2022-02-03T13:02:38.369634Z"), ti.EnqueuedAt)

	var global TaskInfo
	require.NoError(t, json.Unmarshal([]byte(`{"taskUid":3,"indexUid":null,"status":"enqueued","type":"dumpCreation","enqueuedAt":"2022-02-03T13:02:38Z"}`), &global))
	assert.Empty(global.IndexUID)
	assert.Equal(TaskKindDumpCreation, global.Type.Kind)
}

func TestUnmarshalTasksResults(t *testing.T) {
	assert := assert.New(t)
	var results TasksResults
	body := `{"results":[` + enqueuedSnapshot + `,` + succeededSnapshot + `],"total":2,"limit":20,"from":14,"next":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	require.Len(t, results.Results, 2)
	assert.IsType(&EnqueuedTask{}, results.Results[0])
	assert.IsType(&SucceededTask{}, results.Results[1])
	assert.Equal(2, results.Total)
	require.NotNil(t, results.From)
	assert.Equal(uint32(14), *results.From)
	assert.Nil(results.Next)
}

func TestIndexCreationDetails(t *testing.T) {
	task, err := UnmarshalTask([]byte(`{"uid":0,"indexUid":"movies","status":"succeeded","type":"indexCreation","details":{"primaryKey":null},"duration":"PT0.01S","enqueuedAt":"2022-02-03T13:02:38Z","startedAt":"2022-02-03T13:02:38Z","finishedAt":"2022-02-03T13:02:38Z"}`))
	require.NoError(t, err)
	succeeded, ok := task.(*SucceededTask)
	require.True(t, ok)
	assert.Equal(t, TaskKindIndexCreation, succeeded.Type.Kind)
	details, ok := succeeded.Type.Details.(*IndexCreationDetails)
	require.True(t, ok)
	assert.Nil(t, details.PrimaryKey)
}
