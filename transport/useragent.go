// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"
	"strings"
)

// Version is reported to the server in the client identification header.
var Version = "0.1.0"

const (
	ContentTypeJSON   = "application/json"
	ContentTypeNDJSON = "application/x-ndjson"
	ContentTypeCSV    = "text/csv"
	AcceptEventStream = "text/event-stream"

	userAgentHeader = "User-Agent"
	clientHeader    = "X-Meilisearch-Client"
	authKeyPrefix   = "Bearer "
)

// UserAgent returns the identification string of this client. Caller
// contributions come first, separated by semicolons.
func UserAgent(contributions ...string) string {
	identity := fmt.Sprintf("Meilisearch Go (v%s)", Version)
	parts := make([]string, 0, len(contributions)+1)
	for _, c := range contributions {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(append(parts, identity), "; ")
}
