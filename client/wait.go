// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/meili/model"
	"go.uber.org/zap"
)

// WaitForTask polls the task until it reaches a terminal state. The task is
// fetched first, then every interval. Once the accumulated waiting exceeds
// timeout, meilierr.ErrTimeout is returned. Zero values fall back to the
// client's PollInterval and PollTimeout.
func (c *Client) WaitForTask(ctx context.Context, ref model.TaskRef, interval, timeout time.Duration) (model.Task, error) {
	if interval <= 0 {
		interval = c.pollInterval
	}
	if timeout <= 0 {
		timeout = c.pollTimeout
	}

	l := c.loggerFor(ctx).With(zap.Uint32("task", ref.TaskID()))
	var elapsed time.Duration
	for {
		task, err := c.GetTask(ctx, ref)
		if err != nil {
			c.countPoll(FailureOutcome)
			l.Error("Failed to get task while waiting for it", zap.Error(err))
			return nil, err
		}
		if task.Status().IsTerminal() {
			c.countPoll(TerminalOutcome)
			l.Debug("Task done", zap.String("status", string(task.Status())))
			return task, nil
		}
		c.countPoll(PendingOutcome)

		if err = c.sleeper.Sleep(ctx, interval); err != nil {
			return nil, err
		}
		elapsed += interval
		if elapsed > timeout {
			c.countPoll(TimeoutOutcome)
			l.Warn("Gave up waiting for task", zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: task %d after %s", meilierr.ErrTimeout, ref.TaskID(), timeout)
		}
	}
}

func (c *Client) countPoll(outcome string) {
	if c.polls == nil {
		return
	}
	c.polls.With(prometheus.Labels{OutcomeLabel: outcome}).Add(1)
}

// TryMakeIndex returns a handle on the index created by task. When task
// isn't a succeeded index creation, the handle is nil and task is returned
// unchanged.
func (c *Client) TryMakeIndex(task model.Task) (*Index, model.Task) {
	s, ok := task.(*model.SucceededTask)
	if !ok || s.Type.Kind != model.TaskKindIndexCreation {
		return nil, task
	}
	idx := c.Index(s.IndexUID)
	if d, ok := s.Type.Details.(*model.IndexCreationDetails); ok {
		idx.PrimaryKey = d.PrimaryKey
	}
	return idx, nil
}
