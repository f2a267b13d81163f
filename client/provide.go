// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// SetupIn lists what Provide needs to build a Client.
type SetupIn struct {
	fx.In
	Config   Config
	Measures Measures
	Logger   *zap.Logger `optional:"true"`
}

// Provide builds a *Client from the Config found in the application.
// Combine it with ProvideMetrics to get the request and poll counters.
func Provide() fx.Option {
	return fx.Options(
		fx.Provide(
			SetupClient,
		),
	)
}

func SetupClient(in SetupIn) (*Client, error) {
	config := in.Config
	if config.Logger == nil {
		config.Logger = in.Logger
	}
	if config.Measures.Requests == nil {
		config.Measures.Requests = in.Measures.Requests
	}
	if config.Measures.Polls == nil {
		config.Measures.Polls = in.Measures.Polls
	}
	if config.Logger != nil {
		config.Logger.Info("using meilisearch", zap.String("host", config.Host))
	}
	return NewFromConfig(config)
}
