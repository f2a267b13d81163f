// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xmidt-org/meili/meilierr"
)

var (
	nullBody       = []byte("null")
	errNotEnvelope = errors.New("body is not a JSON object")
)

// ParseResponse turns a raw response into the decoded value stored in out,
// or into an error. An empty body is read as JSON null, and a nil out
// discards the body of a successful response.
func ParseResponse(status, expectedStatus int, body []byte, url string, out any) error {
	if len(body) == 0 {
		body = nullBody
	}

	if status == expectedStatus {
		if out == nil {
			if !json.Valid(body) {
				return fmt.Errorf("%w: invalid JSON body from %s", meilierr.ErrParse, url)
			}
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return meilierr.Wrap(meilierr.ErrParse, err)
		}
		return nil
	}

	se, err := decodeEnvelope(body)
	if err == nil {
		return se
	}
	if status >= 400 {
		return &meilierr.CommunicationError{
			StatusCode: status,
			URL:        url,
		}
	}
	return meilierr.Wrap(meilierr.ErrParse, err)
}

func decodeEnvelope(body []byte) (*meilierr.ServerError, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return nil, errNotEnvelope
	}
	var se meilierr.ServerError
	if err := json.Unmarshal(body, &se); err != nil {
		return nil, err
	}
	return &se, nil
}
