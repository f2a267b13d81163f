// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package client

import "github.com/xmidt-org/meili/transport"

func defaultBackend(config Config) (transport.Backend, error) {
	return transport.NewBrowser(config.APIKey, config.UserAgent...), nil
}
