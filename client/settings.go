// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

func (idx *Index) GetSettings(ctx context.Context) (model.Settings, error) {
	return get[model.Settings](ctx, idx.client, idx.path("settings"), nil)
}

// UpdateSettings enqueues a change of the non nil fields of settings.
func (idx *Index) UpdateSettings(ctx context.Context, settings model.Settings) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("settings"), transport.Patch(nil, settings))
}

// ResetSettings enqueues the reset of every setting to its default.
func (idx *Index) ResetSettings(ctx context.Context) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("settings"), transport.Delete(nil))
}

func (idx *Index) GetRankingRules(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, idx.client, idx.path("settings", "ranking-rules"), nil)
}

// SetRankingRules enqueues the replacement of the ranking rules. Invalid
// rules are reported by the failed task, not by this call.
func (idx *Index) SetRankingRules(ctx context.Context, rules []string) (model.TaskInfo, error) {
	if rules == nil {
		rules = []string{}
	}
	return idx.client.enqueue(ctx, idx.path("settings", "ranking-rules"), transport.Put(nil, rules))
}

func (idx *Index) ResetRankingRules(ctx context.Context) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("settings", "ranking-rules"), transport.Delete(nil))
}
