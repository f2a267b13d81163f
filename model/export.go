// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"strconv"
)

// ExportPayloadSize is either a byte count or a human readable size such as
// "32MiB".
type ExportPayloadSize struct {
	bytes *uint64
	human string
}

func PayloadBytes(n uint64) ExportPayloadSize {
	return ExportPayloadSize{bytes: &n}
}

func PayloadHuman(s string) ExportPayloadSize {
	return ExportPayloadSize{human: s}
}

func (s ExportPayloadSize) MarshalJSON() ([]byte, error) {
	if s.bytes != nil {
		return []byte(strconv.FormatUint(*s.bytes, 10)), nil
	}
	return json.Marshal(s.human)
}

type ExportIndexOptions struct {
	Filter           any  `json:"filter,omitempty"`
	OverrideSettings bool `json:"overrideSettings,omitempty"`
}

// ExportPayload is the body of POST /export.
type ExportPayload struct {
	URL         string                        `json:"url"`
	APIKey      *string                       `json:"apiKey,omitempty"`
	PayloadSize *ExportPayloadSize            `json:"payloadSize,omitempty"`
	Indexes     map[string]ExportIndexOptions `json:"indexes,omitempty"`
}

func NewExportPayload(url string) *ExportPayload {
	return &ExportPayload{URL: url}
}

func (p *ExportPayload) WithAPIKey(key string) *ExportPayload {
	p.APIKey = &key
	return p
}

func (p *ExportPayload) WithPayloadSize(size ExportPayloadSize) *ExportPayload {
	p.PayloadSize = &size
	return p
}

func (p *ExportPayload) WithIndex(pattern string, opts ExportIndexOptions) *ExportPayload {
	if p.Indexes == nil {
		p.Indexes = make(map[string]ExportIndexOptions)
	}
	p.Indexes[pattern] = opts
	return p
}
