// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

type ExperimentalFeaturesResult struct {
	Metrics                 bool `json:"metrics"`
	LogsRoute               bool `json:"logsRoute"`
	ContainsFilter          bool `json:"containsFilter"`
	Network                 bool `json:"network"`
	EditDocumentsByFunction bool `json:"editDocumentsByFunction"`
	Multimodal              bool `json:"multimodal"`
}

// ExperimentalFeatures is the body of PATCH /experimental-features. Nil
// fields keep their current value.
type ExperimentalFeatures struct {
	Metrics                 *bool `json:"metrics,omitempty"`
	LogsRoute               *bool `json:"logsRoute,omitempty"`
	ContainsFilter          *bool `json:"containsFilter,omitempty"`
	Network                 *bool `json:"network,omitempty"`
	EditDocumentsByFunction *bool `json:"editDocumentsByFunction,omitempty"`
	Multimodal              *bool `json:"multimodal,omitempty"`
}
