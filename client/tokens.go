// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"time"

	"github.com/xmidt-org/meili/tenant"
)

// GenerateTenantToken mints a tenant token for the key apiKeyUID. An empty
// apiKey signs with the client's own key.
func (c *Client) GenerateTenantToken(apiKeyUID string, searchRules any, apiKey string, expiresAt *time.Time) (string, error) {
	if apiKey == "" {
		apiKey = c.apiKey
	}
	return tenant.GenerateToken(apiKeyUID, searchRules, apiKey, expiresAt)
}
