// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"time"
)

// Reasons the autobatcher gives for closing a batch.
const (
	BatchStrategySizeLimitReached = "size_limit_reached"
	BatchStrategyTimeLimitReached = "time_limit_reached"
)

type BatchProgressStep struct {
	CurrentStep string `json:"currentStep"`
	Finished    int    `json:"finished"`
	Total       int    `json:"total"`
}

type BatchProgress struct {
	Steps      []BatchProgressStep `json:"steps"`
	Percentage float64             `json:"percentage"`
}

type BatchStats struct {
	TotalNbTasks  int                `json:"totalNbTasks"`
	Status        map[TaskStatus]int `json:"status"`
	Types         map[TaskKind]int   `json:"types"`
	IndexUIDs     map[string]int     `json:"indexUids"`
	ProgressTrace map[string]string  `json:"progressTrace,omitempty"`
}

// Batch is a group of tasks the server processed together.
type Batch struct {
	UID           uint32          `json:"uid"`
	Progress      *BatchProgress  `json:"progress"`
	Details       json.RawMessage `json:"details,omitempty"`
	Stats         BatchStats      `json:"stats"`
	Duration      *Duration       `json:"duration"`
	EnqueuedAt    *time.Time      `json:"enqueuedAt,omitempty"`
	StartedAt     *time.Time      `json:"startedAt"`
	FinishedAt    *time.Time      `json:"finishedAt"`
	IndexUID      *string         `json:"indexUid,omitempty"`
	TaskUIDs      []uint32        `json:"taskUids,omitempty"`
	BatchStrategy *string         `json:"batchStrategy,omitempty"`
}

type BatchesResults struct {
	Results []Batch `json:"results"`
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	From    *uint32 `json:"from,omitempty"`
	Next    *uint32 `json:"next,omitempty"`
}
