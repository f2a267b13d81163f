// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/meili/transport"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
)

// Names
const (
	RequestCounter = "meili_requests_total"
	PollCounter    = "meili_task_polls_total"
)

// Labels
const (
	OutcomeLabel = "outcome"
	MethodLabel  = transport.MethodLabel
	CodeLabel    = transport.CodeLabel
)

// Label Values
const (
	TerminalOutcome = "terminal"
	PendingOutcome  = "pending"
	FailureOutcome  = "failure"
	TimeoutOutcome  = "timeout"
)

// ProvideMetrics returns the Metrics relevant to this package
func ProvideMetrics() fx.Option {
	return fx.Options(
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: RequestCounter,
				Help: "Counter for the requests sent to Meilisearch, by method and status code.",
			},
			MethodLabel, CodeLabel,
		),
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: PollCounter,
				Help: "Counter for the number of task polls and their outcomes.",
			},
			OutcomeLabel,
		),
	)
}

// Measures holds the counters of a Client. Both are optional.
type Measures struct {
	fx.In
	Requests *prometheus.CounterVec `name:"meili_requests_total" optional:"true"`
	Polls    *prometheus.CounterVec `name:"meili_task_polls_total" optional:"true"`
}
