// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xmidt-org/meili/meilierr"
)

var (
	ErrUnknownTaskStatus  = errors.New("unknown task status")
	ErrIncompleteTask     = errors.New("processed task is missing startedAt, finishedAt or duration")
	ErrMissingTaskFailure = errors.New("failed task is missing its error")
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusEnqueued   TaskStatus = "enqueued"
	StatusProcessing TaskStatus = "processing"
	StatusSucceeded  TaskStatus = "succeeded"
	StatusFailed     TaskStatus = "failed"
	StatusCanceled   TaskStatus = "canceled"
)

// IsTerminal reports whether no further transition can happen from s.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusCanceled
}

// TaskRef is anything that identifies a task.
type TaskRef interface {
	TaskID() uint32
}

// TaskUID is a bare task identifier.
type TaskUID uint32

func (u TaskUID) TaskID() uint32 { return uint32(u) }

// Task is a snapshot of a server side task. The only way to get one is by
// decoding a server response; the concrete type is one of *EnqueuedTask,
// *ProcessingTask, *SucceededTask, *FailedTask or *CanceledTask.
type Task interface {
	TaskRef
	Status() TaskStatus
	Content() TaskContent
	isTask()
}

// TaskContent is shared by every task state.
type TaskContent struct {
	UID        uint32
	IndexUID   string
	EnqueuedAt time.Time
	Type       TaskType
}

func (c TaskContent) TaskID() uint32 { return c.UID }

// ProcessedTask is the payload of a task the server has finished with.
type ProcessedTask struct {
	TaskContent
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   time.Duration
	CanceledBy *uint32
}

type EnqueuedTask struct {
	TaskContent
}

type ProcessingTask struct {
	TaskContent
	StartedAt *time.Time
}

type SucceededTask struct {
	ProcessedTask
}

type FailedTask struct {
	ProcessedTask
	Error meilierr.ServerError
}

// CanceledTask was stopped by a task cancelation before completing. Tasks
// canceled while still enqueued have no start time or duration.
type CanceledTask struct {
	TaskContent
	StartedAt  *time.Time
	FinishedAt *time.Time
	Duration   *time.Duration
	CanceledBy *uint32
}

func (*EnqueuedTask) Status() TaskStatus   { return StatusEnqueued }
func (*ProcessingTask) Status() TaskStatus { return StatusProcessing }
func (*SucceededTask) Status() TaskStatus  { return StatusSucceeded }
func (*FailedTask) Status() TaskStatus     { return StatusFailed }
func (*CanceledTask) Status() TaskStatus   { return StatusCanceled }

func (t *EnqueuedTask) Content() TaskContent   { return t.TaskContent }
func (t *ProcessingTask) Content() TaskContent { return t.TaskContent }
func (t *SucceededTask) Content() TaskContent  { return t.TaskContent }
func (t *FailedTask) Content() TaskContent     { return t.TaskContent }
func (t *CanceledTask) Content() TaskContent   { return t.TaskContent }

func (*EnqueuedTask) isTask()   {}
func (*ProcessingTask) isTask() {}
func (*SucceededTask) isTask()  {}
func (*FailedTask) isTask()     {}
func (*CanceledTask) isTask()   {}

// IsSuccess reports whether t succeeded.
func IsSuccess(t Task) bool {
	_, ok := t.(*SucceededTask)
	return ok
}

// IsFailure reports whether t failed.
func IsFailure(t Task) bool {
	_, ok := t.(*FailedTask)
	return ok
}

// IsPending reports whether t is still enqueued or processing.
func IsPending(t Task) bool {
	return !t.Status().IsTerminal()
}

// UnwrapFailure returns the error of a failed task. It panics when t isn't a
// *FailedTask; check IsFailure first.
func UnwrapFailure(t Task) meilierr.ServerError {
	f, ok := t.(*FailedTask)
	if !ok {
		panic(fmt.Sprintf("called UnwrapFailure on a %s task", t.Status()))
	}
	return f.Error
}

type wireTask struct {
	UID        *uint32               `json:"uid"`
	TaskUID    *uint32               `json:"taskUid"`
	IndexUID   *string               `json:"indexUid"`
	Status     TaskStatus            `json:"status"`
	Type       string                `json:"type"`
	Details    json.RawMessage       `json:"details"`
	Error      *meilierr.ServerError `json:"error"`
	Duration   *Duration             `json:"duration"`
	EnqueuedAt time.Time             `json:"enqueuedAt"`
	StartedAt  *time.Time            `json:"startedAt"`
	FinishedAt *time.Time            `json:"finishedAt"`
	CanceledBy *uint32               `json:"canceledBy"`
}

// UnmarshalTask decodes a single task payload.
func UnmarshalTask(b []byte) (Task, error) {
	var w wireTask
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}

	tt, err := decodeTaskType(w.Type, w.Details)
	if err != nil {
		return nil, err
	}
	content := TaskContent{
		EnqueuedAt: w.EnqueuedAt,
		Type:       tt,
	}
	switch {
	case w.UID != nil:
		content.UID = *w.UID
	case w.TaskUID != nil:
		content.UID = *w.TaskUID
	}
	if w.IndexUID != nil {
		content.IndexUID = *w.IndexUID
	}

	switch w.Status {
	case StatusEnqueued:
		return &EnqueuedTask{TaskContent: content}, nil
	case StatusProcessing:
		return &ProcessingTask{TaskContent: content, StartedAt: w.StartedAt}, nil
	case StatusCanceled:
		t := &CanceledTask{
			TaskContent: content,
			StartedAt:   w.StartedAt,
			FinishedAt:  w.FinishedAt,
			CanceledBy:  w.CanceledBy,
		}
		if w.Duration != nil {
			d := w.Duration.Std()
			t.Duration = &d
		}
		return t, nil
	case StatusSucceeded, StatusFailed:
		if w.StartedAt == nil || w.FinishedAt == nil || w.Duration == nil {
			return nil, fmt.Errorf("%w: task %d", ErrIncompleteTask, content.UID)
		}
		processed := ProcessedTask{
			TaskContent: content,
			StartedAt:   *w.StartedAt,
			FinishedAt:  *w.FinishedAt,
			Duration:    w.Duration.Std(),
			CanceledBy:  w.CanceledBy,
		}
		if w.Status == StatusSucceeded {
			return &SucceededTask{ProcessedTask: processed}, nil
		}
		if w.Error == nil {
			return nil, fmt.Errorf("%w: task %d", ErrMissingTaskFailure, content.UID)
		}
		return &FailedTask{ProcessedTask: processed, Error: *w.Error}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTaskStatus, w.Status)
}

// TaskInfo is the handle returned by every call that enqueues work.
type TaskInfo struct {
	TaskUID    uint32
	IndexUID   string
	Status     TaskStatus
	EnqueuedAt time.Time
	Type       TaskType
}

func (ti TaskInfo) TaskID() uint32 { return ti.TaskUID }

func (ti *TaskInfo) UnmarshalJSON(b []byte) error {
	var w struct {
		TaskUID    uint32          `json:"taskUid"`
		IndexUID   *string         `json:"indexUid"`
		Status     TaskStatus      `json:"status"`
		Type       string          `json:"type"`
		Details    json.RawMessage `json:"details"`
		EnqueuedAt time.Time       `json:"enqueuedAt"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	tt, err := decodeTaskType(w.Type, w.Details)
	if err != nil {
		return err
	}
	*ti = TaskInfo{
		TaskUID:    w.TaskUID,
		Status:     w.Status,
		EnqueuedAt: w.EnqueuedAt,
		Type:       tt,
	}
	if w.IndexUID != nil {
		ti.IndexUID = *w.IndexUID
	}
	return nil
}

// TasksResults is a page of tasks.
type TasksResults struct {
	Results []Task
	Total   int
	Limit   int
	From    *uint32
	Next    *uint32
}

func (r *TasksResults) UnmarshalJSON(b []byte) error {
	var w struct {
		Results []json.RawMessage `json:"results"`
		Total   int               `json:"total"`
		Limit   int               `json:"limit"`
		From    *uint32           `json:"from"`
		Next    *uint32           `json:"next"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	results := make([]Task, 0, len(w.Results))
	for _, raw := range w.Results {
		t, err := UnmarshalTask(raw)
		if err != nil {
			return err
		}
		results = append(results, t)
	}
	*r = TasksResults{
		Results: results,
		Total:   w.Total,
		Limit:   w.Limit,
		From:    w.From,
		Next:    w.Next,
	}
	return nil
}
