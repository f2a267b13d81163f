// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"net/url"

	"github.com/google/go-querystring/query"
	"github.com/xmidt-org/meili/meilierr"
)

// EncodeQuery appends the URL parameters of q to base. q is either a struct
// tagged for github.com/google/go-querystring or url.Values. When nothing
// is encoded, base is returned unchanged.
func EncodeQuery(base string, q any) (string, error) {
	if q == nil {
		return base, nil
	}

	values, ok := q.(url.Values)
	if !ok {
		var err error
		values, err = query.Values(q)
		if err != nil {
			return "", meilierr.Wrap(meilierr.ErrQuerySerialization, err)
		}
	}

	encoded := values.Encode()
	if encoded == "" {
		return base, nil
	}
	return base + "?" + encoded, nil
}
