// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package meilierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errIncompleteEnvelope = errors.New("error envelope requires message, code and type")

// ErrorType is the category of a server error.
type ErrorType string

const (
	TypeInvalidRequest ErrorType = "invalid_request"
	TypeInternal       ErrorType = "internal"
	TypeAuth           ErrorType = "auth"
	TypeSystem         ErrorType = "system"
	TypeUnknown        ErrorType = "unknown"
)

// IsKnown reports whether t is one of the categories this client knows about.
func (t ErrorType) IsKnown() bool {
	switch t {
	case TypeInvalidRequest, TypeInternal, TypeAuth, TypeSystem:
		return true
	}
	return false
}

func (t *ErrorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ErrorType(strings.ToLower(s))
	if !t.IsKnown() {
		*t = TypeUnknown
	}
	return nil
}

// ServerError is the error envelope returned by Meilisearch.
type ServerError struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
	Type    ErrorType `json:"type"`
	Link    string    `json:"link"`

	// RawCode is the code as sent by the server, useful when Code is
	// CodeUnknown.
	RawCode string `json:"-"`
}

func (e *ServerError) Error() string {
	code := string(e.Code)
	if e.Code == CodeUnknown && e.RawCode != "" {
		code = e.RawCode
	}
	return fmt.Sprintf("Meilisearch %s: %s: %s. %s", e.Type, code, e.Message, e.Link)
}

// MarshalJSON writes back the code the server sent.
func (e ServerError) MarshalJSON() ([]byte, error) {
	code := string(e.Code)
	if e.Code == CodeUnknown && e.RawCode != "" {
		code = e.RawCode
	}
	return json.Marshal(struct {
		Message string    `json:"message"`
		Code    string    `json:"code"`
		Type    ErrorType `json:"type"`
		Link    string    `json:"link"`
	}{e.Message, code, e.Type, e.Link})
}

// UnmarshalJSON only accepts bodies shaped like the server envelope so that
// arbitrary JSON is never mistaken for an error.
func (e *ServerError) UnmarshalJSON(b []byte) error {
	var raw struct {
		Message *string    `json:"message"`
		Code    *string    `json:"code"`
		Type    *ErrorType `json:"type"`
		Link    string     `json:"link"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Message == nil || raw.Code == nil || raw.Type == nil {
		return errIncompleteEnvelope
	}
	*e = ServerError{
		Message: *raw.Message,
		Code:    ParseErrorCode(*raw.Code),
		RawCode: *raw.Code,
		Type:    *raw.Type,
		Link:    raw.Link,
	}
	return nil
}

// HasCode reports whether err carries a server envelope with the given code.
func HasCode(err error, code ErrorCode) bool {
	se, ok := AsServerError(err)
	return ok && se.Code == code
}
