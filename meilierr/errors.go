// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package meilierr holds the closed set of failures a Meilisearch client can
// report, along with the error envelope the server sends back.
package meilierr

import (
	"errors"
	"fmt"
)

// Errors that can be returned by the client. Most of them are returned
// wrapped, so use errors.Is() when checking for them.
var (
	ErrUnreachableServer            = errors.New("the Meilisearch server can't be reached")
	ErrParse                        = errors.New("failed parsing the Meilisearch response")
	ErrTimeout                      = errors.New("timed out waiting for the task to be processed")
	ErrInvalidRequest               = errors.New("unable to build the request")
	ErrTenantTokensInvalidAPIKey    = errors.New("the api key used to sign a tenant token must be at least 8 characters long")
	ErrTenantTokensExpiredSignature = errors.New("the provided expiry date is in the past")
	ErrTokenSigning                 = errors.New("failed signing the tenant token")
	ErrHTTP                         = errors.New("http transport failure")
	ErrQuerySerialization           = errors.New("failed serializing the query parameters")
	ErrInvalidUUID                  = errors.New("the provided api key uid is not a valid uuid")
	ErrInvalidUUID4Version          = errors.New("the provided api key uid is not a version 4 uuid")
	ErrUnsupported                  = errors.New("the http backend does not support this operation")
)

const errWrappedFmt = "%w: %w"

// Wrap attaches cause to one of the sentinel errors of this package. The
// result matches both the sentinel and the cause with errors.Is.
func Wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf(errWrappedFmt, sentinel, cause)
}

// CommunicationError is reported when the server answered with an unexpected
// status and a body that isn't a Meilisearch error envelope.
type CommunicationError struct {
	StatusCode int
	Message    *string
	URL        string
}

func (e *CommunicationError) Error() string {
	msg := fmt.Sprintf("MeilisearchCommunicationError: The server responded with a %d.", e.StatusCode)
	if e.Message != nil {
		msg += " " + *e.Message
	}
	return msg + "\nurl: " + e.URL
}
