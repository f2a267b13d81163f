// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilitest"
	"github.com/xmidt-org/meili/model"
)

const (
	finishedTasksPage = `{"results":[` + failedTask + `,` + succeededTask + `],` +
		`"total":2,"limit":100,"from":1,"next":null}`
	emptyTasksPage = `{"results":[],"total":0,"limit":100,"from":null,"next":null}`
)

func TestTaskListener(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := meilitest.NewServer(t)
	server.RespondSequence(http.MethodGet, "/tasks",
		meilitest.Response{Status: http.StatusOK, Body: finishedTasksPage},
		meilitest.Response{Status: http.StatusOK, Body: emptyTasksPage},
	)
	c := newTestClient(t, server.URL, "")

	updates := make(chan []model.Task, 10)
	l, err := c.NewTaskListener(TaskListenerConfig{
		Listener:     ListenerFunc(func(tasks []model.Task) { updates <- tasks }),
		PullInterval: 5 * time.Millisecond,
		Filter:       model.TaskFilter{IndexUIDs: []string{"movies"}},
	})
	require.NoError(err)

	require.NoError(l.Start(context.Background()))
	assert.ErrorIs(l.Start(context.Background()), ErrListenerNotStopped)

	var tasks []model.Task
	select {
	case tasks = <-updates:
	case <-time.After(5 * time.Second):
		require.FailNow("listener never reported")
	}
	require.NoError(l.Stop(context.Background()))
	assert.ErrorIs(l.Stop(context.Background()), ErrListenerNotRunning)

	require.Len(tasks, 2)
	assert.Equal(model.StatusFailed, tasks[0].Status())
	assert.Equal(model.StatusSucceeded, tasks[1].Status())
	assert.Empty(updates)

	requests := server.Requests()
	require.NotEmpty(requests)
	q := requests[0].Query
	assert.Equal("succeeded,failed,canceled", q.Get("statuses"))
	assert.Equal("movies", q.Get("indexUids"))
	assert.Equal("100", q.Get("limit"))
	assert.NotEmpty(q.Get("afterFinishedAt"))
}

func TestTaskListenerReportsSubSecondFinishOnce(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	finished := time.Now().UTC().Add(time.Hour).Truncate(time.Second).Add(500 * time.Millisecond)
	task := fmt.Sprintf(`{"uid":9,"indexUid":"movies","status":"succeeded","type":"indexCreation",`+
		`"details":{},"duration":"PT0.5S","enqueuedAt":%q,"startedAt":%q,"finishedAt":%q}`,
		finished.Add(-time.Second).Format(time.RFC3339Nano),
		finished.Add(-500*time.Millisecond).Format(time.RFC3339Nano),
		finished.Format(time.RFC3339Nano))

	var pulls int32
	server := meilitest.NewServer(t)
	server.HandleFunc(http.MethodGet, "/tasks", func(rw http.ResponseWriter, r *http.Request) {
		defer atomic.AddInt32(&pulls, 1)
		after, err := time.Parse(time.RFC3339Nano, r.URL.Query().Get("afterFinishedAt"))
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		if finished.After(after) {
			fmt.Fprintf(rw, `{"results":[%s],"total":1,"limit":100,"from":9,"next":null}`, task)
			return
		}
		fmt.Fprint(rw, emptyTasksPage)
	})
	c := newTestClient(t, server.URL, "")

	updates := make(chan []model.Task, 10)
	l, err := c.NewTaskListener(TaskListenerConfig{
		Listener:     ListenerFunc(func(tasks []model.Task) { updates <- tasks }),
		PullInterval: 5 * time.Millisecond,
	})
	require.NoError(err)
	require.NoError(l.Start(context.Background()))

	require.Eventually(func() bool { return atomic.LoadInt32(&pulls) >= 5 }, 5*time.Second, time.Millisecond)
	require.NoError(l.Stop(context.Background()))

	require.Len(updates, 1)
	tasks := <-updates
	require.Len(tasks, 1)
	assert.Equal(uint32(9), tasks[0].Content().UID)

	requests := server.Requests()
	last := requests[len(requests)-1].Query.Get("afterFinishedAt")
	assert.Equal(finished.Format(time.RFC3339Nano), last)
}

func TestNewTaskListenerWithoutListener(t *testing.T) {
	c := newTestClient(t, "http://localhost:7700", "")
	l, err := c.NewTaskListener(TaskListenerConfig{})
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrNoListenerProvided)
}
