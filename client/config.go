// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xmidt-org/meili/sleep"
	"github.com/xmidt-org/meili/transport"
	"github.com/xmidt-org/sallust"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 50 * time.Millisecond
	DefaultPollTimeout  = 5 * time.Second
)

var ErrInvalidConfig = errors.New("invalid meilisearch client config")

// Config contains the data used to build a Client. It is usually read from
// the "meilisearch" key of the configuration file.
type Config struct {
	// Host is the Meilisearch URL (i.e. http://localhost:7700)
	Host string `validate:"required,url"`

	// APIKey is sent as a bearer token with every request.
	// (Optional) If empty, requests are sent without authorization.
	APIKey string

	// UserAgent lists strings placed in front of the client identification.
	// (Optional)
	UserAgent []string

	// RequestTimeout bounds each request of the default backend.
	// (Optional) Defaults to no timeout.
	RequestTimeout time.Duration `validate:"gte=0"`

	// PollInterval and PollTimeout are used by WaitForTask when it is given
	// zero values.
	// (Optional). Default to 50ms and 5s.
	PollInterval time.Duration `validate:"gte=0"`
	PollTimeout  time.Duration `validate:"gte=0"`

	// Tracing instruments the default backend with OpenTelemetry.
	Tracing bool

	// TracingOptions configure the instrumentation of the default backend.
	// (Optional)
	TracingOptions []otelhttp.Option `mapstructure:"-" validate:"-"`

	// HTTPClient is used by the default backend.
	// (Optional) Defaults to http.DefaultClient.
	HTTPClient *http.Client `mapstructure:"-" validate:"-"`

	// Logger to be used by the client.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger `mapstructure:"-" validate:"-"`

	// GetLogger looks up a request scoped logger.
	// (Optional) Defaults to always returning Logger.
	GetLogger func(context.Context) *zap.Logger `mapstructure:"-" validate:"-"`

	// Measures counts requests and polls.
	// (Optional)
	Measures Measures `mapstructure:"-" validate:"-"`

	// Backend replaces the default backend.
	// (Optional)
	Backend transport.Backend `mapstructure:"-" validate:"-"`

	// Sleeper is used between polls.
	// (Optional) Defaults to sleep.Default().
	Sleeper sleep.Sleeper `mapstructure:"-" validate:"-"`
}

var validate = validator.New()

func validateConfig(config *Config) error {
	config.Host = strings.TrimRight(strings.TrimSpace(config.Host), "/")
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if config.PollInterval == 0 {
		config.PollInterval = DefaultPollInterval
	}

	if config.PollTimeout == 0 {
		config.PollTimeout = DefaultPollTimeout
	}

	if config.Logger == nil {
		config.Logger = sallust.Default()
	}

	if config.GetLogger == nil {
		logger := config.Logger
		config.GetLogger = func(context.Context) *zap.Logger { return logger }
	}

	if config.Sleeper == nil {
		config.Sleeper = sleep.Default()
	}
	return nil
}
