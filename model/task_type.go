// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskKind is the operation a task performs.
type TaskKind string

const (
	TaskKindClearAll                 TaskKind = "clearAll"
	TaskKindCustoms                  TaskKind = "customs"
	TaskKindDocumentAdditionOrUpdate TaskKind = "documentAdditionOrUpdate"
	TaskKindDocumentDeletion         TaskKind = "documentDeletion"
	TaskKindDocumentEdition          TaskKind = "documentEdition"
	TaskKindIndexCreation            TaskKind = "indexCreation"
	TaskKindIndexUpdate              TaskKind = "indexUpdate"
	TaskKindIndexDeletion            TaskKind = "indexDeletion"
	TaskKindIndexSwap                TaskKind = "indexSwap"
	TaskKindSettingsUpdate           TaskKind = "settingsUpdate"
	TaskKindSnapshotCreation         TaskKind = "snapshotCreation"
	TaskKindDumpCreation             TaskKind = "dumpCreation"
	TaskKindExport                   TaskKind = "export"
	TaskKindTaskCancelation          TaskKind = "taskCancelation"
	TaskKindTaskDeletion             TaskKind = "taskDeletion"
)

// Former names still reported by older servers.
var taskKindAliases = map[string]TaskKind{
	"documentAddition":    TaskKindDocumentAdditionOrUpdate,
	"documentPartial":     TaskKindDocumentAdditionOrUpdate,
	"documentsAddition":   TaskKindDocumentAdditionOrUpdate,
	"documentsDeletion":   TaskKindDocumentDeletion,
	"clearAllDocuments":   TaskKindClearAll,
	"documentsEdition":    TaskKindDocumentEdition,
	"indexesSwap":         TaskKindIndexSwap,
	"settingsUpdateTasks": TaskKindSettingsUpdate,
}

// TaskType is the type discriminator of a task together with its details.
// Details holds the pointer type matching Kind, or nil when the server sent
// none. Types this client doesn't know are reported as TaskKindCustoms with
// the server's name in Name and the raw details as json.RawMessage.
type TaskType struct {
	Kind    TaskKind
	Name    string
	Details any
}

type DocumentAdditionOrUpdateDetails struct {
	ReceivedDocuments int  `json:"receivedDocuments"`
	IndexedDocuments  *int `json:"indexedDocuments"`
}

type DocumentDeletionDetails struct {
	ProvidedIDs      *int    `json:"providedIds"`
	DeletedDocuments *int    `json:"deletedDocuments"`
	OriginalFilter   *string `json:"originalFilter"`
}

type DocumentEditionDetails struct {
	DeletedDocuments *int    `json:"deletedDocuments"`
	EditedDocuments  *int    `json:"editedDocuments"`
	Function         *string `json:"function"`
	OriginalFilter   *string `json:"originalFilter"`
}

type IndexCreationDetails struct {
	PrimaryKey *string `json:"primaryKey"`
}

type IndexUpdateDetails struct {
	PrimaryKey  *string `json:"primaryKey"`
	NewIndexUID *string `json:"newIndexUid,omitempty"`
	OldIndexUID *string `json:"oldIndexUid,omitempty"`
}

type IndexDeletionDetails struct {
	DeletedDocuments *int `json:"deletedDocuments"`
}

type IndexSwapDetails struct {
	Swaps []SwapIndexes `json:"swaps"`
}

type DumpCreationDetails struct {
	DumpUID *string `json:"dumpUid"`
}

type ExportDetails struct {
	URL         string                        `json:"url"`
	APIKey      *string                       `json:"apiKey,omitempty"`
	PayloadSize *string                       `json:"payloadSize,omitempty"`
	Indexes     map[string]ExportIndexOptions `json:"indexes,omitempty"`
}

type TaskCancelationDetails struct {
	MatchedTasks   *int    `json:"matchedTasks"`
	CanceledTasks  *int    `json:"canceledTasks"`
	OriginalFilter *string `json:"originalFilter"`
}

type TaskDeletionDetails struct {
	MatchedTasks   *int    `json:"matchedTasks"`
	DeletedTasks   *int    `json:"deletedTasks"`
	OriginalFilter *string `json:"originalFilter"`
}

func newDetails(kind TaskKind) any {
	switch kind {
	case TaskKindDocumentAdditionOrUpdate:
		return &DocumentAdditionOrUpdateDetails{}
	case TaskKindDocumentDeletion:
		return &DocumentDeletionDetails{}
	case TaskKindDocumentEdition:
		return &DocumentEditionDetails{}
	case TaskKindIndexCreation:
		return &IndexCreationDetails{}
	case TaskKindIndexUpdate:
		return &IndexUpdateDetails{}
	case TaskKindIndexDeletion:
		return &IndexDeletionDetails{}
	case TaskKindIndexSwap:
		return &IndexSwapDetails{}
	case TaskKindSettingsUpdate:
		return &Settings{}
	case TaskKindDumpCreation:
		return &DumpCreationDetails{}
	case TaskKindExport:
		return &ExportDetails{}
	case TaskKindTaskCancelation:
		return &TaskCancelationDetails{}
	case TaskKindTaskDeletion:
		return &TaskDeletionDetails{}
	}
	return nil
}

func lookupTaskKind(name string) (TaskKind, bool) {
	switch k := TaskKind(name); k {
	case TaskKindClearAll, TaskKindCustoms, TaskKindDocumentAdditionOrUpdate, TaskKindDocumentDeletion,
		TaskKindDocumentEdition, TaskKindIndexCreation, TaskKindIndexUpdate, TaskKindIndexDeletion,
		TaskKindIndexSwap, TaskKindSettingsUpdate, TaskKindSnapshotCreation, TaskKindDumpCreation,
		TaskKindExport, TaskKindTaskCancelation, TaskKindTaskDeletion:
		return k, true
	}
	k, ok := taskKindAliases[name]
	return k, ok
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeTaskType builds a TaskType from the "type" and "details" members of
// a task payload.
func decodeTaskType(name string, details json.RawMessage) (TaskType, error) {
	kind, ok := lookupTaskKind(name)
	if !ok {
		tt := TaskType{Kind: TaskKindCustoms, Name: name}
		if !isNull(details) {
			tt.Details = append(json.RawMessage(nil), details...)
		}
		return tt, nil
	}

	tt := TaskType{Kind: kind, Name: name}
	if isNull(details) {
		return tt, nil
	}
	target := newDetails(kind)
	if target == nil {
		return tt, nil
	}
	if err := json.Unmarshal(details, target); err != nil {
		return tt, fmt.Errorf("%s details: %w", name, err)
	}
	tt.Details = target
	return tt, nil
}
