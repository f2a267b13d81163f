// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package meilierr

import "errors"

// Kind classifies any error produced by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindMeilisearch
	KindMeilisearchCommunication
	KindUnreachableServer
	KindParse
	KindTimeout
	KindInvalidRequest
	KindTenantTokensInvalidAPIKey
	KindTenantTokensExpiredSignature
	KindTokenSigning
	KindHTTP
	KindQuerySerialization
	KindInvalidUUID
	KindInvalidUUID4Version
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindMeilisearch:
		return "meilisearch"
	case KindMeilisearchCommunication:
		return "meilisearch_communication"
	case KindUnreachableServer:
		return "unreachable_server"
	case KindParse:
		return "parse"
	case KindTimeout:
		return "timeout"
	case KindInvalidRequest:
		return "invalid_request"
	case KindTenantTokensInvalidAPIKey:
		return "tenant_tokens_invalid_api_key"
	case KindTenantTokensExpiredSignature:
		return "tenant_tokens_expired_signature"
	case KindTokenSigning:
		return "token_signing"
	case KindHTTP:
		return "http"
	case KindQuerySerialization:
		return "query_serialization"
	case KindInvalidUUID:
		return "invalid_uuid"
	case KindInvalidUUID4Version:
		return "invalid_uuid4_version"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

var sentinelKinds = []struct {
	err  error
	kind Kind
}{
	{ErrUnreachableServer, KindUnreachableServer},
	{ErrParse, KindParse},
	{ErrTimeout, KindTimeout},
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrTenantTokensInvalidAPIKey, KindTenantTokensInvalidAPIKey},
	{ErrTenantTokensExpiredSignature, KindTenantTokensExpiredSignature},
	{ErrTokenSigning, KindTokenSigning},
	{ErrQuerySerialization, KindQuerySerialization},
	{ErrInvalidUUID4Version, KindInvalidUUID4Version},
	{ErrInvalidUUID, KindInvalidUUID},
	{ErrUnsupported, KindUnsupported},
	{ErrHTTP, KindHTTP},
}

// KindOf reports the kind of err. A nil error is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var se *ServerError
	if errors.As(err, &se) {
		return KindMeilisearch
	}

	var ce *CommunicationError
	if errors.As(err, &ce) {
		return KindMeilisearchCommunication
	}

	for _, s := range sentinelKinds {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return KindUnknown
}

// AsServerError extracts the server envelope from err, if any.
func AsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	ok := errors.As(err, &se)
	return se, ok
}
