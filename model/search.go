// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

// SearchQuery is the body of POST /indexes/{uid}/search. Filter is passed to
// the server as is.
type SearchQuery struct {
	Query                 *string  `json:"q,omitempty"`
	Offset                *int     `json:"offset,omitempty"`
	Limit                 *int     `json:"limit,omitempty"`
	Page                  *int     `json:"page,omitempty"`
	HitsPerPage           *int     `json:"hitsPerPage,omitempty"`
	Filter                any      `json:"filter,omitempty"`
	Facets                []string `json:"facets,omitempty"`
	Sort                  []string `json:"sort,omitempty"`
	Distinct              string   `json:"distinct,omitempty"`
	AttributesToRetrieve  []string `json:"attributesToRetrieve,omitempty"`
	AttributesToCrop      []string `json:"attributesToCrop,omitempty"`
	CropLength            *int     `json:"cropLength,omitempty"`
	AttributesToHighlight []string `json:"attributesToHighlight,omitempty"`
	ShowMatchesPosition   *bool    `json:"showMatchesPosition,omitempty"`
	ShowRankingScore      *bool    `json:"showRankingScore,omitempty"`
	MatchingStrategy      string   `json:"matchingStrategy,omitempty"`
}

type SearchResults[T any] struct {
	Hits               []T                       `json:"hits"`
	Query              string                    `json:"query"`
	ProcessingTimeMs   int                       `json:"processingTimeMs"`
	Offset             *int                      `json:"offset,omitempty"`
	Limit              *int                      `json:"limit,omitempty"`
	EstimatedTotalHits *int                      `json:"estimatedTotalHits,omitempty"`
	Page               *int                      `json:"page,omitempty"`
	HitsPerPage        *int                      `json:"hitsPerPage,omitempty"`
	TotalHits          *int                      `json:"totalHits,omitempty"`
	TotalPages         *int                      `json:"totalPages,omitempty"`
	FacetDistribution  map[string]map[string]int `json:"facetDistribution,omitempty"`
}
