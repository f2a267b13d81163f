// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

// DocumentQuery narrows a single document fetch.
type DocumentQuery struct {
	Fields          []string `url:"fields,comma,omitempty"`
	RetrieveVectors *bool    `url:"retrieveVectors,omitempty"`
}

// DocumentsQuery lists documents. When Filter is set the listing is sent as
// a POST body instead of URL parameters.
type DocumentsQuery struct {
	Offset          *int     `url:"offset,omitempty" json:"offset,omitempty"`
	Limit           *int     `url:"limit,omitempty" json:"limit,omitempty"`
	Fields          []string `url:"fields,comma,omitempty" json:"fields,omitempty"`
	RetrieveVectors *bool    `url:"retrieveVectors,omitempty" json:"retrieveVectors,omitempty"`
	IDs             []string `url:"ids,comma,omitempty" json:"ids,omitempty"`
	Filter          any      `url:"-" json:"filter,omitempty"`
}

type DocumentsResults[T any] struct {
	Results []T `json:"results"`
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Total   int `json:"total"`
}

// AddDocumentsQuery carries the optional primary key of an upload.
type AddDocumentsQuery struct {
	PrimaryKey   string `url:"primaryKey,omitempty"`
	CSVDelimiter string `url:"csvDelimiter,omitempty"`
}

// DeleteByFilter is the body of POST /indexes/{uid}/documents/delete.
type DeleteByFilter struct {
	Filter any `json:"filter"`
}
