// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Command meili runs one-off operations against a Meilisearch instance:
// health checks, waiting for tasks, minting tenant tokens and watching
// tasks finish.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/meili/client"
	"github.com/xmidt-org/touchstone"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const applicationName = "meili"

var (
	GitCommit = "undefined"
	Version   = "undefined"
	BuildTime = "undefined"
)

var errUsage = errors.New("usage: meili [flags] health|version|stats|wait <task uid>|token <api key uid>|watch")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs, v, logger, err := setup(args)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if printVersion, _ := fs.GetBool("version"); printVersion {
		printVersionInfo(os.Stdout)
		return 0
	}

	var c *client.Client
	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Supply(logger, v),
		touchstone.Provide(),
		client.ProvideMetrics(),
		client.Provide(),
		fx.Provide(
			provideTouchstoneConfig,
			provideTracingConfig,
			candlelight.New,
			provideClientConfig,
		),
		fx.Populate(&c),
	)
	if err = app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err = runCommand(c, fs, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func provideTouchstoneConfig(v *viper.Viper) (touchstone.Config, error) {
	var config touchstone.Config
	err := v.UnmarshalKey("prometheus", &config)
	return config, err
}

func provideTracingConfig(v *viper.Viper) (candlelight.Config, error) {
	var config candlelight.Config
	err := v.UnmarshalKey("tracing", &config)
	if err != nil {
		return candlelight.Config{}, err
	}
	config.ApplicationName = applicationName
	return config, nil
}

// provideClientConfig reads the "meilisearch" key, lets flags and the
// environment override the host and api key, and instruments the client
// with the configured tracer.
func provideClientConfig(v *viper.Viper, tracing candlelight.Tracing, logger *zap.Logger) (client.Config, error) {
	var config client.Config
	if err := v.UnmarshalKey("meilisearch", &config); err != nil {
		return client.Config{}, err
	}
	if host := v.GetString(hostKey); len(host) > 0 {
		config.Host = host
	}
	if apiKey := v.GetString(apiKeyKey); len(apiKey) > 0 {
		config.APIKey = apiKey
	}
	config.Logger = logger
	if config.Tracing {
		config.TracingOptions = []otelhttp.Option{
			otelhttp.WithTracerProvider(tracing.TracerProvider()),
			otelhttp.WithPropagators(tracing.Propagator()),
		}
	}
	return config, nil
}
