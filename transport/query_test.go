// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/meili/meilierr"
	"github.com/xmidt-org/meili/model"
)

type pageQuery struct {
	Offset *int     `url:"offset,omitempty"`
	Limit  *int     `url:"limit,omitempty"`
	Fields []string `url:"fields,omitempty,comma"`
}

func TestEncodeQuery(t *testing.T) {
	limit := 20
	finished := time.Date(2022, 2, 3, 13, 2, 55, 500000000, time.UTC)
	enqueued := time.Date(2022, 2, 3, 13, 2, 38, 369634000, time.UTC)
	tcs := []struct {
		Description string
		Query       any
		Expected    url.Values
		Unchanged   bool
	}{
		{
			Description: "Nil query",
			Unchanged:   true,
		},
		{
			Description: "Empty struct",
			Query:       pageQuery{},
			Unchanged:   true,
		},
		{
			Description: "Empty values",
			Query:       url.Values{},
			Unchanged:   true,
		},
		{
			Description: "Struct fields",
			Query:       &pageQuery{Limit: &limit, Fields: []string{"id", "title"}},
			Expected:    url.Values{"limit": {"20"}, "fields": {"id,title"}},
		},
		{
			Description: "Sub-second times",
			Query: &model.TasksQuery{TaskFilter: model.TaskFilter{
				AfterFinishedAt:  &finished,
				BeforeEnqueuedAt: &enqueued,
			}},
			Expected: url.Values{
				"afterFinishedAt":  {"2022-02-03T13:02:55.5Z"},
				"beforeEnqueuedAt": {"2022-02-03T13:02:38.369634Z"},
			},
		},
		{
			Description: "Raw values",
			Query:       url.Values{"primaryKey": {"id"}},
			Expected:    url.Values{"primaryKey": {"id"}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			got, err := EncodeQuery(testURL, tc.Query)
			require.NoError(t, err)
			if tc.Unchanged {
				assert.Equal(testURL, got)
				return
			}
			u, err := url.Parse(got)
			require.NoError(t, err)
			assert.Equal(tc.Expected, u.Query())
			assert.Equal("/indexes/movies", u.Path)
		})
	}
}

func TestEncodeQueryFailure(t *testing.T) {
	_, err := EncodeQuery(testURL, 42)
	assert.ErrorIs(t, err, meilierr.ErrQuerySerialization)
}
