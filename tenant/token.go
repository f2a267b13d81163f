// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package tenant mints tenant tokens: search credentials signed with an api
// key, restricted by search rules and optionally expiring.
package tenant

import (
	"time"

	"emperror.dev/emperror"
	"emperror.dev/errors"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/xmidt-org/meili/meilierr"
)

// MinKeyLength is the shortest api key accepted as a signing secret.
const MinKeyLength = 8

// Claims is the payload of a tenant token.
type Claims struct {
	APIKeyUID   string `json:"apiKeyUid"`
	SearchRules any    `json:"searchRules"`
	ExpiresAt   int64  `json:"exp,omitempty"`
}

// Valid reports whether the token is still usable. It lets Claims be
// verified by jwt.ParseWithClaims.
func (c Claims) Valid() error {
	if c.ExpiresAt != 0 && time.Now().Unix() >= c.ExpiresAt {
		return errors.WithDetails(meilierr.ErrTenantTokensExpiredSignature, "exp", c.ExpiresAt)
	}
	return nil
}

// GenerateToken signs searchRules with apiKey on behalf of the key whose
// uid is apiKeyUID. The uid must be a version 4 uuid and expiresAt, when
// set, must be in the future.
func GenerateToken(apiKeyUID string, searchRules any, apiKey string, expiresAt *time.Time) (string, error) {
	if err := validateKey(apiKey); err != nil {
		return "", err
	}

	uid, err := uuid.Parse(apiKeyUID)
	if err != nil {
		return "", errors.WithDetails(meilierr.Wrap(meilierr.ErrInvalidUUID, err), "apiKeyUid", apiKeyUID)
	}
	if uid.Version() != 4 {
		return "", errors.WithDetails(meilierr.ErrInvalidUUID4Version, "apiKeyUid", apiKeyUID, "version", int(uid.Version()))
	}

	return sign(apiKeyUID, searchRules, apiKey, expiresAt)
}

// GenerateKeyToken signs searchRules with apiKey, using the first
// MinKeyLength characters of the key as its identifier. Older servers
// expect this form.
func GenerateKeyToken(searchRules any, apiKey string, expiresAt *time.Time) (string, error) {
	if err := validateKey(apiKey); err != nil {
		return "", err
	}
	return sign(apiKey[:MinKeyLength], searchRules, apiKey, expiresAt)
}

// Parse verifies a tenant token with apiKey and returns its claims.
func Parse(token, apiKey string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(apiKey), nil
	})
	if err != nil {
		return Claims{}, emperror.Wrap(err, "failed to parse tenant token")
	}
	return claims, nil
}

func validateKey(apiKey string) error {
	if len(apiKey) < MinKeyLength {
		return errors.WithDetails(meilierr.ErrTenantTokensInvalidAPIKey, "length", len(apiKey))
	}
	return nil
}

func sign(apiKeyUID string, searchRules any, apiKey string, expiresAt *time.Time) (string, error) {
	claims := Claims{
		APIKeyUID:   apiKeyUID,
		SearchRules: searchRules,
	}
	if expiresAt != nil {
		if !expiresAt.After(time.Now()) {
			return "", errors.WithDetails(meilierr.ErrTenantTokensExpiredSignature, "expiresAt", expiresAt.Format(time.RFC3339))
		}
		claims.ExpiresAt = expiresAt.Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiKey))
	if err != nil {
		return "", meilierr.Wrap(meilierr.ErrTokenSigning, err)
	}
	return signed, nil
}
