// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"time"
)

// Action is a permission granted to an API key.
type Action string

const (
	ActionAll                 Action = "*"
	ActionSearch              Action = "search"
	ActionDocumentsAll        Action = "documents.*"
	ActionDocumentsAdd        Action = "documents.add"
	ActionDocumentsGet        Action = "documents.get"
	ActionDocumentsDelete     Action = "documents.delete"
	ActionIndexesAll          Action = "indexes.*"
	ActionIndexesCreate       Action = "indexes.create"
	ActionIndexesGet          Action = "indexes.get"
	ActionIndexesUpdate       Action = "indexes.update"
	ActionIndexesDelete       Action = "indexes.delete"
	ActionIndexesSwap         Action = "indexes.swap"
	ActionTasksAll            Action = "tasks.*"
	ActionTasksGet            Action = "tasks.get"
	ActionTasksCancel         Action = "tasks.cancel"
	ActionTasksDelete         Action = "tasks.delete"
	ActionSettingsAll         Action = "settings.*"
	ActionSettingsGet         Action = "settings.get"
	ActionSettingsUpdate      Action = "settings.update"
	ActionStatsGet            Action = "stats.get"
	ActionMetricsGet          Action = "metrics.get"
	ActionDumpsCreate         Action = "dumps.create"
	ActionSnapshotsCreate     Action = "snapshots.create"
	ActionVersion             Action = "version"
	ActionKeysGet             Action = "keys.get"
	ActionKeysCreate          Action = "keys.create"
	ActionKeysUpdate          Action = "keys.update"
	ActionKeysDelete          Action = "keys.delete"
	ActionExperimentalGet     Action = "experimental.get"
	ActionExperimentalUpdate  Action = "experimental.update"
	ActionNetworkGet          Action = "network.get"
	ActionNetworkUpdate       Action = "network.update"
	ActionChatCompletions     Action = "chatCompletions"
	ActionChatsAll            Action = "chats.*"
	ActionChatsGet            Action = "chats.get"
	ActionChatsDelete         Action = "chats.delete"
	ActionChatsSettingsAll    Action = "chatsSettings.*"
	ActionChatsSettingsGet    Action = "chatsSettings.get"
	ActionChatsSettingsUpdate Action = "chatsSettings.update"
	ActionWebhooksGet         Action = "webhooks.get"
	ActionWebhooksCreate      Action = "webhooks.create"
	ActionWebhooksUpdate      Action = "webhooks.update"
	ActionWebhooksDelete      Action = "webhooks.delete"
	ActionExport              Action = "export"
)

// Key is an API key as reported by the server.
type Key struct {
	Key         string     `json:"key"`
	UID         string     `json:"uid"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Actions     []Action   `json:"actions"`
	Indexes     []string   `json:"indexes"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// KeyBuilder is the body of POST /keys. A nil ExpiresAt creates a key that
// never expires.
type KeyBuilder struct {
	Actions     []Action
	Indexes     []string
	Name        *string
	Description *string
	UID         *string
	ExpiresAt   *time.Time
}

func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{}
}

func (kb *KeyBuilder) WithAction(a Action) *KeyBuilder {
	kb.Actions = append(kb.Actions, a)
	return kb
}

func (kb *KeyBuilder) WithActions(a ...Action) *KeyBuilder {
	kb.Actions = append(kb.Actions, a...)
	return kb
}

func (kb *KeyBuilder) WithIndex(index string) *KeyBuilder {
	kb.Indexes = append(kb.Indexes, index)
	return kb
}

func (kb *KeyBuilder) WithIndexes(indexes ...string) *KeyBuilder {
	kb.Indexes = append(kb.Indexes, indexes...)
	return kb
}

func (kb *KeyBuilder) WithName(name string) *KeyBuilder {
	kb.Name = &name
	return kb
}

func (kb *KeyBuilder) WithDescription(desc string) *KeyBuilder {
	kb.Description = &desc
	return kb
}

func (kb *KeyBuilder) WithUID(uid string) *KeyBuilder {
	kb.UID = &uid
	return kb
}

func (kb *KeyBuilder) WithExpiresAt(t time.Time) *KeyBuilder {
	kb.ExpiresAt = &t
	return kb
}

// MarshalJSON always sends actions, indexes and expiresAt, the server
// rejects keys where they are missing.
func (kb KeyBuilder) MarshalJSON() ([]byte, error) {
	actions := kb.Actions
	if actions == nil {
		actions = []Action{}
	}
	indexes := kb.Indexes
	if indexes == nil {
		indexes = []string{}
	}
	return json.Marshal(struct {
		Actions     []Action   `json:"actions"`
		Indexes     []string   `json:"indexes"`
		ExpiresAt   *time.Time `json:"expiresAt"`
		Name        *string    `json:"name,omitempty"`
		Description *string    `json:"description,omitempty"`
		UID         *string    `json:"uid,omitempty"`
	}{
		Actions:     actions,
		Indexes:     indexes,
		ExpiresAt:   kb.ExpiresAt,
		Name:        kb.Name,
		Description: kb.Description,
		UID:         kb.UID,
	})
}

// KeyUpdater is the body of PATCH /keys/{key}. Only the name and the
// description of a key can change.
type KeyUpdater struct {
	Key         string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func NewKeyUpdater(keyOrUID string) *KeyUpdater {
	return &KeyUpdater{Key: keyOrUID}
}

func (ku *KeyUpdater) WithName(name string) *KeyUpdater {
	ku.Name = &name
	return ku
}

func (ku *KeyUpdater) WithDescription(desc string) *KeyUpdater {
	ku.Description = &desc
	return ku
}

type KeysQuery struct {
	Offset *int `url:"offset,omitempty"`
	Limit  *int `url:"limit,omitempty"`
}

type KeysResults struct {
	Results []Key `json:"results"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int   `json:"total"`
}
