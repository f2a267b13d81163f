// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

// taskEnvelope decodes a single task response into its variant.
type taskEnvelope struct {
	task model.Task
}

func (e *taskEnvelope) UnmarshalJSON(b []byte) error {
	t, err := model.UnmarshalTask(b)
	if err != nil {
		return err
	}
	e.task = t
	return nil
}

// GetTask fetches the current state of a task.
func (c *Client) GetTask(ctx context.Context, ref model.TaskRef) (model.Task, error) {
	var e taskEnvelope
	u := c.path("tasks", strconv.FormatUint(uint64(ref.TaskID()), 10))
	if err := c.do(ctx, u, transport.Get(nil), http.StatusOK, &e); err != nil {
		return nil, err
	}
	return e.task, nil
}

// GetTasks lists tasks. A nil query returns the most recent ones.
func (c *Client) GetTasks(ctx context.Context, q *model.TasksQuery) (model.TasksResults, error) {
	return get[model.TasksResults](ctx, c, c.path("tasks"), q)
}

// CancelTasks enqueues the cancelation of the enqueued or processing tasks
// matching filter.
func (c *Client) CancelTasks(ctx context.Context, filter model.TaskFilter) (model.TaskInfo, error) {
	return c.enqueueWith(ctx, c.path("tasks", "cancel"), transport.Post(filter, nil), http.StatusOK)
}

// DeleteTasks enqueues the deletion of the finished tasks matching filter.
func (c *Client) DeleteTasks(ctx context.Context, filter model.TaskFilter) (model.TaskInfo, error) {
	return c.enqueueWith(ctx, c.path("tasks"), transport.Delete(filter), http.StatusOK)
}

// GetTasks lists the tasks of the index. Any index filter of q is replaced.
func (idx *Index) GetTasks(ctx context.Context, q *model.TasksQuery) (model.TasksResults, error) {
	var query model.TasksQuery
	if q != nil {
		query = *q
	}
	query.IndexUIDs = []string{idx.UID}
	return idx.client.GetTasks(ctx, &query)
}

func (idx *Index) GetTask(ctx context.Context, ref model.TaskRef) (model.Task, error) {
	return idx.client.GetTask(ctx, ref)
}

func (idx *Index) WaitForTask(ctx context.Context, ref model.TaskRef, interval, timeout time.Duration) (model.Task, error) {
	return idx.client.WaitForTask(ctx, ref, interval, timeout)
}
