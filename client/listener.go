// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/xmidt-org/meili/model"
	"go.uber.org/zap"
)

// Errors that can be returned by the task listener. Use errors.Is() to
// check for them.
var (
	ErrListenerNotStopped = errors.New("listener is either running or starting")
	ErrListenerNotRunning = errors.New("listener is either stopped or stopping")
	ErrNoListenerProvided = errors.New("no listener provided")
)

// listening states
const (
	stopped int32 = iota
	running
	transitioning
)

const (
	defaultPullInterval = time.Second * 5
	listenerPageSize    = 100
)

var terminalStatuses = []model.TaskStatus{model.StatusSucceeded, model.StatusFailed, model.StatusCanceled}

// Listener is told about tasks reaching a terminal state, oldest first.
type Listener interface {
	Update(tasks []model.Task)
}

type ListenerFunc func(tasks []model.Task)

func (l ListenerFunc) Update(tasks []model.Task) {
	l(tasks)
}

// TaskListenerConfig contains the data used to build a TaskListener.
type TaskListenerConfig struct {
	// Listener receives the tasks that finished since the last pull.
	Listener Listener

	// PullInterval is how often the server is asked for finished tasks.
	// (Optional). Defaults to 5 seconds.
	PullInterval time.Duration

	// Filter narrows down the tasks reported. Its status and finish time
	// criteria are overwritten.
	// (Optional)
	Filter model.TaskFilter
}

// TaskListener pulls the task list on an interval and reports the tasks
// that finished since the previous pull. Only tasks finishing after Start
// are reported.
type TaskListener struct {
	client       *Client
	listener     Listener
	filter       model.TaskFilter
	pullInterval time.Duration
	ticker       *time.Ticker
	shutdown     chan struct{}
	state        int32
	since        time.Time
}

// NewTaskListener creates a stopped TaskListener pulling from c.
func (c *Client) NewTaskListener(config TaskListenerConfig) (*TaskListener, error) {
	if config.Listener == nil {
		return nil, ErrNoListenerProvided
	}
	if config.PullInterval <= 0 {
		config.PullInterval = defaultPullInterval
	}
	return &TaskListener{
		client:       c,
		listener:     config.Listener,
		filter:       config.Filter,
		pullInterval: config.PullInterval,
		shutdown:     make(chan struct{}),
	}, nil
}

// Start begins pulling on an interval. Calling Start on a listener that
// isn't stopped returns ErrListenerNotStopped.
func (l *TaskListener) Start(ctx context.Context) error {
	logger := l.client.loggerFor(ctx)
	if !atomic.CompareAndSwapInt32(&l.state, stopped, transitioning) {
		logger.Error("Start called when a listener was not in stopped state", zap.Error(ErrListenerNotStopped))
		return ErrListenerNotStopped
	}

	l.since = time.Now().UTC()
	l.ticker = time.NewTicker(l.pullInterval)
	go func() {
		for {
			select {
			case <-l.shutdown:
				return
			case <-l.ticker.C:
				l.pull(logger)
			}
		}
	}()

	atomic.SwapInt32(&l.state, running)
	return nil
}

// Stop ends the pulling goroutine and waits for it. Calling Stop on a
// listener that isn't running returns ErrListenerNotRunning.
func (l *TaskListener) Stop(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&l.state, running, transitioning) {
		l.client.loggerFor(ctx).Error("Stop called when a listener was not in running state", zap.Error(ErrListenerNotRunning))
		return ErrListenerNotRunning
	}

	l.ticker.Stop()
	l.shutdown <- struct{}{}
	atomic.SwapInt32(&l.state, stopped)
	return nil
}

func (l *TaskListener) pull(logger *zap.Logger) {
	tasks, err := l.finishedSince(context.Background(), l.since)
	if err != nil {
		l.client.countPoll(FailureOutcome)
		logger.Error("Failed to get finished tasks for listener", zap.Error(err))
		return
	}
	l.client.countPoll(TerminalOutcome)
	if len(tasks) == 0 {
		return
	}

	sort.Slice(tasks, func(i, j int) bool {
		return finishedAt(tasks[i]).Before(finishedAt(tasks[j]))
	})
	if last := finishedAt(tasks[len(tasks)-1]); last.After(l.since) {
		l.since = last
	}
	l.listener.Update(tasks)
}

func (l *TaskListener) finishedSince(ctx context.Context, since time.Time) ([]model.Task, error) {
	limit := listenerPageSize
	q := model.TasksQuery{
		TaskFilter: l.filter,
		Limit:      &limit,
	}
	q.Statuses = terminalStatuses
	q.AfterFinishedAt = &since

	var tasks []model.Task
	for {
		page, err := l.client.GetTasks(ctx, &q)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, page.Results...)
		if page.Next == nil {
			return tasks, nil
		}
		q.From = page.Next
	}
}

func finishedAt(t model.Task) time.Time {
	switch v := t.(type) {
	case *model.SucceededTask:
		return v.FinishedAt
	case *model.FailedTask:
		return v.FinishedAt
	case *model.CanceledTask:
		if v.FinishedAt != nil {
			return *v.FinishedAt
		}
	}
	return time.Time{}
}
