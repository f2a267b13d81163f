// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package client is a Meilisearch client. Client covers instance wide
// resources and Index the resources of a single index.
package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/sleep"
	"github.com/xmidt-org/meili/transport"
	"go.uber.org/zap"
)

// Client talks to one Meilisearch instance. It is safe for concurrent use
// and holds no state beyond its configuration.
type Client struct {
	host         string
	apiKey       string
	backend      transport.Backend
	sleeper      sleep.Sleeper
	logger       *zap.Logger
	getLogger    func(context.Context) *zap.Logger
	polls        *prometheus.CounterVec
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// New creates a Client using the default backend of the platform. An empty
// apiKey sends requests without authorization.
func New(host, apiKey string) (*Client, error) {
	return NewFromConfig(Config{Host: host, APIKey: apiKey})
}

// NewWithBackend creates a Client sending its requests through backend.
func NewWithBackend(host, apiKey string, backend transport.Backend) (*Client, error) {
	return NewFromConfig(Config{Host: host, APIKey: apiKey, Backend: backend})
}

// NewFromConfig creates a Client from config.
func NewFromConfig(config Config) (*Client, error) {
	err := validateConfig(&config)
	if err != nil {
		return nil, err
	}

	backend := config.Backend
	if backend == nil {
		backend, err = defaultBackend(config)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		host:         config.Host,
		apiKey:       config.APIKey,
		backend:      backend,
		sleeper:      config.Sleeper,
		logger:       config.Logger,
		getLogger:    config.GetLogger,
		polls:        config.Measures.Polls,
		pollInterval: config.PollInterval,
		pollTimeout:  config.PollTimeout,
	}, nil
}

// Host returns the base URL of the instance, without a trailing slash.
func (c *Client) Host() string {
	return c.host
}

func (c *Client) APIKey() string {
	return c.apiKey
}

func (c *Client) Backend() transport.Backend {
	return c.backend
}

// path joins escaped segments under the host.
func (c *Client) path(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.host)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (c *Client) do(ctx context.Context, u string, m transport.Method, status int, out any) error {
	return c.backend.Request(ctx, u, m, status, out)
}

func (c *Client) enqueue(ctx context.Context, u string, m transport.Method) (model.TaskInfo, error) {
	return c.enqueueWith(ctx, u, m, http.StatusAccepted)
}

func (c *Client) enqueueWith(ctx context.Context, u string, m transport.Method, status int) (model.TaskInfo, error) {
	var ti model.TaskInfo
	if err := c.do(ctx, u, m, status, &ti); err != nil {
		return model.TaskInfo{}, err
	}
	return ti, nil
}

func (c *Client) loggerFor(ctx context.Context) *zap.Logger {
	l := c.getLogger(ctx)
	if l == nil {
		l = c.logger
	}
	return l
}

// get is the common shape of the read endpoints.
func get[T any](ctx context.Context, c *Client, u string, query any) (T, error) {
	var out T
	if err := c.do(ctx, u, transport.Get(query), http.StatusOK, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
