// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

// LogMode selects the format of a log stream.
type LogMode string

const (
	LogModeHuman   LogMode = "human"
	LogModeJSON    LogMode = "json"
	LogModeProfile LogMode = "profile"
)

// LogStreamRequest is the body of POST /logs/stream.
type LogStreamRequest struct {
	Target string  `json:"target"`
	Mode   LogMode `json:"mode"`
}

// NewLogLevel is the body of POST /logs/stderr.
type NewLogLevel struct {
	Target string `json:"target"`
}
