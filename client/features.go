// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

func (c *Client) GetExperimentalFeatures(ctx context.Context) (model.ExperimentalFeaturesResult, error) {
	return get[model.ExperimentalFeaturesResult](ctx, c, c.path("experimental-features"), nil)
}

// UpdateExperimentalFeatures toggles the non nil features and returns the
// resulting set.
func (c *Client) UpdateExperimentalFeatures(ctx context.Context, features model.ExperimentalFeatures) (model.ExperimentalFeaturesResult, error) {
	var result model.ExperimentalFeaturesResult
	err := c.do(ctx, c.path("experimental-features"), transport.Patch(nil, features), http.StatusOK, &result)
	if err != nil {
		return model.ExperimentalFeaturesResult{}, err
	}
	return result, nil
}

func (c *Client) GetNetwork(ctx context.Context) (model.NetworkState, error) {
	return get[model.NetworkState](ctx, c, c.path("network"), nil)
}

func (c *Client) UpdateNetwork(ctx context.Context, nu *model.NetworkUpdate) (model.NetworkState, error) {
	var state model.NetworkState
	if err := c.do(ctx, c.path("network"), transport.Patch(nil, nu), http.StatusOK, &state); err != nil {
		return model.NetworkState{}, err
	}
	return state, nil
}
