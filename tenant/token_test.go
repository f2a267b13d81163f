// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilierr"
)

const (
	searchKey = "a19b6ec84ee31324efa560cd1f7e6939"
	otherKey  = "b19b6ec84ee31324efa560cd1f7e6939"
)

func TestGenerateToken(t *testing.T) {
	var (
		uid    = uuid.NewString()
		future = time.Now().Add(time.Hour).Truncate(time.Second)
		past   = time.Now().Add(-time.Minute)
		v1     = "4b5ee6b8-7c8e-11ee-b962-0242ac120002"
	)

	tcs := []struct {
		Description string
		UID         string
		APIKey      string
		ExpiresAt   *time.Time
		ExpectedErr error
	}{
		{
			Description: "No expiry",
			UID:         uid,
			APIKey:      searchKey,
		},
		{
			Description: "Future expiry",
			UID:         uid,
			APIKey:      searchKey,
			ExpiresAt:   &future,
		},
		{
			Description: "Short key",
			UID:         uid,
			APIKey:      "1234567",
			ExpectedErr: meilierr.ErrTenantTokensInvalidAPIKey,
		},
		{
			Description: "Past expiry",
			UID:         uid,
			APIKey:      searchKey,
			ExpiresAt:   &past,
			ExpectedErr: meilierr.ErrTenantTokensExpiredSignature,
		},
		{
			Description: "Not a uuid",
			UID:         "not-a-uuid",
			APIKey:      searchKey,
			ExpectedErr: meilierr.ErrInvalidUUID,
		},
		{
			Description: "Not a version 4 uuid",
			UID:         v1,
			APIKey:      searchKey,
			ExpectedErr: meilierr.ErrInvalidUUID4Version,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			rules := map[string]any{"*": map[string]any{"filter": "genre = comedy"}}

			token, err := GenerateToken(tc.UID, rules, tc.APIKey, tc.ExpiresAt)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(err, tc.ExpectedErr)
				assert.Empty(token)
				return
			}
			require.NoError(t, err)

			claims, err := Parse(token, tc.APIKey)
			require.NoError(t, err)
			assert.Equal(tc.UID, claims.APIKeyUID)
			assert.Equal(map[string]any{"*": map[string]any{"filter": "genre = comedy"}}, claims.SearchRules)
			if tc.ExpiresAt != nil {
				assert.Equal(tc.ExpiresAt.Unix(), claims.ExpiresAt)
			} else {
				assert.Zero(claims.ExpiresAt)
			}

			_, err = Parse(token, otherKey)
			assert.Error(err)
		})
	}
}

func TestGenerateKeyToken(t *testing.T) {
	assert := assert.New(t)

	token, err := GenerateKeyToken([]string{"*"}, searchKey, nil)
	require.NoError(t, err)

	claims, err := Parse(token, searchKey)
	require.NoError(t, err)
	assert.Equal("a19b6ec8", claims.APIKeyUID)
	assert.Equal([]any{"*"}, claims.SearchRules)

	_, err = GenerateKeyToken([]string{"*"}, "short", nil)
	assert.ErrorIs(err, meilierr.ErrTenantTokensInvalidAPIKey)
}

func TestClaimsValid(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(Claims{}.Valid())
	assert.NoError(Claims{ExpiresAt: time.Now().Add(time.Hour).Unix()}.Valid())
	assert.ErrorIs(Claims{ExpiresAt: time.Now().Add(-time.Hour).Unix()}.Valid(), meilierr.ErrTenantTokensExpiredSignature)
}
