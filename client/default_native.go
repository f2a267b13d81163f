// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build !js

package client

import "github.com/xmidt-org/meili/transport"

func defaultBackend(config Config) (transport.Backend, error) {
	return transport.NewNative(transport.NativeConfig{
		HTTPClient:     config.HTTPClient,
		APIKey:         config.APIKey,
		UserAgent:      config.UserAgent,
		Timeout:        config.RequestTimeout,
		Tracing:        config.Tracing,
		TracingOptions: config.TracingOptions,
		Logger:         config.Logger,
		Requests:       config.Measures.Requests,
	}, config.GetLogger)
}
