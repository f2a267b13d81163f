// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// Webhook is the user editable part of a webhook.
type Webhook struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// HeaderNames returns the configured header names in sorted order.
func (w Webhook) HeaderNames() []string {
	names := make([]string, 0, len(w.Headers))
	for name := range w.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type WebhookInfo struct {
	UUID       uuid.UUID `json:"uuid"`
	IsEditable bool      `json:"isEditable"`
	Webhook
}

type WebhookList struct {
	Results []WebhookInfo `json:"results"`
}

// WebhookCreate is the body of POST /webhooks.
type WebhookCreate struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func NewWebhookCreate(url string) *WebhookCreate {
	return &WebhookCreate{URL: url}
}

func (wc *WebhookCreate) WithHeader(name, value string) *WebhookCreate {
	if wc.Headers == nil {
		wc.Headers = make(map[string]string)
	}
	wc.Headers[name] = value
	return wc
}

// fieldState tracks the three ways an update can treat a field.
type fieldState int

const (
	fieldUnset fieldState = iota
	fieldReset
	fieldSet
)

// WebhookUpdate is the body of PATCH /webhooks/{uuid}. Headers that are
// removed are sent as null, and ResetHeaders sends headers as null.
type WebhookUpdate struct {
	url          *string
	headersState fieldState
	headers      map[string]*string
}

func NewWebhookUpdate() *WebhookUpdate {
	return &WebhookUpdate{}
}

func (wu *WebhookUpdate) WithURL(url string) *WebhookUpdate {
	wu.url = &url
	return wu
}

func (wu *WebhookUpdate) SetHeader(name, value string) *WebhookUpdate {
	wu.header(name, &value)
	return wu
}

func (wu *WebhookUpdate) RemoveHeader(name string) *WebhookUpdate {
	wu.header(name, nil)
	return wu
}

func (wu *WebhookUpdate) ResetHeaders() *WebhookUpdate {
	wu.headersState = fieldReset
	wu.headers = nil
	return wu
}

func (wu *WebhookUpdate) header(name string, value *string) {
	if wu.headersState != fieldSet {
		wu.headersState = fieldSet
		wu.headers = make(map[string]*string)
	}
	wu.headers[name] = value
}

func (wu WebhookUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 2)
	if wu.url != nil {
		body["url"] = *wu.url
	}
	switch wu.headersState {
	case fieldReset:
		body["headers"] = nil
	case fieldSet:
		body["headers"] = wu.headers
	}
	return json.Marshal(body)
}
