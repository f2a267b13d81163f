// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import "time"

// TaskFilter selects tasks by their attributes. It is shared by listing,
// cancelation and deletion.
type TaskFilter struct {
	UIDs             []uint32     `url:"uids,comma,omitempty"`
	BatchUIDs        []uint32     `url:"batchUids,comma,omitempty"`
	IndexUIDs        []string     `url:"indexUids,comma,omitempty"`
	Statuses         []TaskStatus `url:"statuses,comma,omitempty"`
	Types            []TaskKind   `url:"types,comma,omitempty"`
	CanceledBy       []uint32     `url:"canceledBy,comma,omitempty"`
	BeforeEnqueuedAt *time.Time   `url:"beforeEnqueuedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
	AfterEnqueuedAt  *time.Time   `url:"afterEnqueuedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
	BeforeStartedAt  *time.Time   `url:"beforeStartedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
	AfterStartedAt   *time.Time   `url:"afterStartedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
	BeforeFinishedAt *time.Time   `url:"beforeFinishedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
	AfterFinishedAt  *time.Time   `url:"afterFinishedAt,omitempty" layout:"2006-01-02T15:04:05.999999999Z07:00"`
}

// TasksQuery lists tasks with cursor pagination.
type TasksQuery struct {
	TaskFilter
	Limit   *int    `url:"limit,omitempty"`
	From    *uint32 `url:"from,omitempty"`
	Reverse *bool   `url:"reverse,omitempty"`
}

// BatchesQuery lists batches with cursor pagination.
type BatchesQuery struct {
	TaskFilter
	Limit   *int    `url:"limit,omitempty"`
	From    *uint32 `url:"from,omitempty"`
	Reverse *bool   `url:"reverse,omitempty"`
}
