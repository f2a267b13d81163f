// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build !js

package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/bascule/acquire"
	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/sallust"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Labels of the request counter.
const (
	MethodLabel = "method"
	CodeLabel   = "code"
)

const errorCode = "error"

var (
	errNewRequestFailure  = errors.New("failed creating an HTTP request")
	errDoRequestFailure   = errors.New("http client failed while sending request")
	errReadingBodyFailure = errors.New("failed while reading http response body")
	errAuthFailure        = errors.New("failed attaching the api key")
)

// NativeConfig contains the data used to build a Native backend.
type NativeConfig struct {
	// HTTPClient sends the requests.
	// (Optional) Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// APIKey is attached as a bearer token to every request.
	// (Optional) If empty, no Authorization header is sent.
	APIKey string

	// UserAgent lists extra identification strings placed in front of
	// the client's own.
	// (Optional)
	UserAgent []string

	// Timeout bounds each request, including the time spent reading the body.
	// (Optional) Zero keeps the HTTPClient timeout.
	Timeout time.Duration

	// Tracing wraps the HTTPClient transport with OpenTelemetry instrumentation.
	Tracing bool

	// TracingOptions configure the instrumentation, i.e. its tracer
	// provider and propagators.
	// (Optional)
	TracingOptions []otelhttp.Option

	// Logger to be used by the backend.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger

	// Requests counts the requests sent, labeled by method and status code.
	// (Optional)
	Requests *prometheus.CounterVec
}

// Native is the backend used outside of browsers. It supports streamed
// request bodies and streamed responses.
type Native struct {
	client    *http.Client
	auth      acquire.Acquirer
	userAgent string
	logger    *zap.Logger
	getLogger func(context.Context) *zap.Logger
	requests  *prometheus.CounterVec
}

var (
	_ Backend  = (*Native)(nil)
	_ Streamer = (*Native)(nil)
)

// NewNative creates a Native backend. The identification and
// authorization headers are computed once, here.
func NewNative(config NativeConfig, getLogger func(context.Context) *zap.Logger) (*Native, error) {
	validateNativeConfig(&config)
	if getLogger == nil {
		getLogger = sallust.Get
	}

	auth, err := buildAcquirer(config.APIKey)
	if err != nil {
		return nil, err
	}

	return &Native{
		client:    config.HTTPClient,
		auth:      auth,
		userAgent: UserAgent(config.UserAgent...),
		logger:    config.Logger,
		getLogger: getLogger,
		requests:  config.Requests,
	}, nil
}

// Request sends the method body encoded as JSON.
func (n *Native) Request(ctx context.Context, url string, method Method, expectedStatus int, out any) error {
	return BufferedRequest(ctx, n, url, method, expectedStatus, out)
}

// StreamRequest sends the io.Reader carried by the method as the request
// body, labeled with contentType.
func (n *Native) StreamRequest(ctx context.Context, url string, method Method, contentType string, expectedStatus int, out any) error {
	resp, fullURL, err := n.do(ctx, url, method, contentType, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", meilierr.ErrHTTP, errReadingBodyFailure, err)
	}

	n.logResponse(ctx, method, fullURL, resp.StatusCode, expectedStatus)
	return ParseResponse(resp.StatusCode, expectedStatus, body, fullURL, out)
}

// OpenStream sends the request and returns the response body as soon as the
// status is known. The caller must close the returned reader. A status other
// than expectedStatus is parsed like any other failed response.
func (n *Native) OpenStream(ctx context.Context, url string, method Method, accept string, expectedStatus int) (io.ReadCloser, error) {
	m, err := encodeJSONBody(method)
	if err != nil {
		return nil, err
	}

	resp, fullURL, err := n.do(ctx, url, m, ContentTypeJSON, accept)
	if err != nil {
		return nil, err
	}

	n.logResponse(ctx, method, fullURL, resp.StatusCode, expectedStatus)
	if resp.StatusCode == expectedStatus {
		return resp.Body, nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", meilierr.ErrHTTP, errReadingBodyFailure, err)
	}
	return nil, ParseResponse(resp.StatusCode, expectedStatus, body, fullURL, nil)
}

func (n *Native) do(ctx context.Context, url string, method Method, contentType, accept string) (*http.Response, string, error) {
	fullURL, err := EncodeQuery(url, method.Query())
	if err != nil {
		return nil, url, err
	}

	body, err := bodyReader(method)
	if err != nil {
		return nil, fullURL, err
	}

	r, err := http.NewRequestWithContext(ctx, method.Verb(), fullURL, body)
	if err != nil {
		return nil, fullURL, fmt.Errorf("%w: %w: %w", meilierr.ErrInvalidRequest, errNewRequestFailure, err)
	}
	if err = acquire.AddAuth(r, n.auth); err != nil {
		return nil, fullURL, fmt.Errorf("%w: %w: %w", meilierr.ErrInvalidRequest, errAuthFailure, err)
	}
	r.Header.Set(userAgentHeader, n.userAgent)
	if body != nil && contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		r.Header.Set("Accept", accept)
	}

	resp, err := n.client.Do(r)
	if err != nil {
		n.count(method, errorCode)
		n.loggerFor(ctx).Error("Meilisearch request failed",
			zap.String("method", method.Verb()), zap.String("url", fullURL), zap.Error(err))
		return nil, fullURL, translateTransportError(err)
	}
	n.count(method, strconv.Itoa(resp.StatusCode))
	return resp, fullURL, nil
}

func (n *Native) logResponse(ctx context.Context, method Method, url string, status, expected int) {
	l := n.loggerFor(ctx)
	if status != expected {
		l.Warn("Meilisearch responded with an unexpected status code",
			zap.String("method", method.Verb()), zap.String("url", url),
			zap.Int("code", status), zap.Int("expected", expected))
		return
	}
	l.Debug("Meilisearch request done",
		zap.String("method", method.Verb()), zap.String("url", url), zap.Int("code", status))
}

func (n *Native) loggerFor(ctx context.Context) *zap.Logger {
	l := n.getLogger(ctx)
	if l == nil {
		l = n.logger
	}
	return l
}

func (n *Native) count(method Method, code string) {
	if n.requests == nil {
		return
	}
	n.requests.With(prometheus.Labels{
		MethodLabel: method.Verb(),
		CodeLabel:   code,
	}).Inc()
}

// translateTransportError collapses connection failures into
// meilierr.ErrUnreachableServer and everything else into meilierr.ErrHTTP.
func translateTransportError(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return meilierr.Wrap(meilierr.ErrUnreachableServer, err)
	}
	return fmt.Errorf("%w: %w: %w", meilierr.ErrHTTP, errDoRequestFailure, err)
}

func buildAcquirer(apiKey string) (acquire.Acquirer, error) {
	if len(apiKey) > 0 {
		return acquire.NewFixedAuthAcquirer(authKeyPrefix + apiKey)
	}
	return &acquire.DefaultAcquirer{}, nil
}

func validateNativeConfig(config *NativeConfig) {
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}

	if config.Timeout > 0 || config.Tracing {
		c := *config.HTTPClient
		if config.Timeout > 0 {
			c.Timeout = config.Timeout
		}
		if config.Tracing {
			base := c.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.Transport = otelhttp.NewTransport(base, config.TracingOptions...)
		}
		config.HTTPClient = &c
	}

	if config.Logger == nil {
		config.Logger = sallust.Default()
	}
}
