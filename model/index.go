// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import "time"

// IndexInfo is the metadata the server keeps about an index.
type IndexInfo struct {
	UID        string     `json:"uid"`
	PrimaryKey *string    `json:"primaryKey"`
	CreatedAt  *time.Time `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

// IndexCreation is the body of POST /indexes.
type IndexCreation struct {
	UID        string  `json:"uid"`
	PrimaryKey *string `json:"primaryKey,omitempty"`
}

// IndexUpdate is the body of PATCH /indexes/{uid}.
type IndexUpdate struct {
	PrimaryKey *string `json:"primaryKey,omitempty"`
	UID        *string `json:"uid,omitempty"`
}

type IndexesQuery struct {
	Offset *int `url:"offset,omitempty"`
	Limit  *int `url:"limit,omitempty"`
}

type IndexesResults struct {
	Results []IndexInfo `json:"results"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
	Total   int         `json:"total"`
}

// SwapIndexes names two indexes whose content is exchanged.
type SwapIndexes struct {
	Indexes [2]string `json:"indexes"`
	Rename  bool      `json:"rename,omitempty"`
}

type IndexStats struct {
	NumberOfDocuments         int            `json:"numberOfDocuments"`
	NumberOfEmbeddedDocuments int            `json:"numberOfEmbeddedDocuments,omitempty"`
	RawDocumentDBSize         int64          `json:"rawDocumentDbSize,omitempty"`
	AvgDocumentSize           int64          `json:"avgDocumentSize,omitempty"`
	IsIndexing                bool           `json:"isIndexing"`
	FieldDistribution         map[string]int `json:"fieldDistribution"`
}

// ClientStats is the instance wide report of GET /stats.
type ClientStats struct {
	DatabaseSize     int64                 `json:"databaseSize"`
	UsedDatabaseSize int64                 `json:"usedDatabaseSize,omitempty"`
	LastUpdate       *time.Time            `json:"lastUpdate"`
	Indexes          map[string]IndexStats `json:"indexes"`
}

type Health struct {
	Status string `json:"status"`
}

type Version struct {
	CommitSha  string `json:"commitSha"`
	CommitDate string `json:"commitDate"`
	PkgVersion string `json:"pkgVersion"`
}
