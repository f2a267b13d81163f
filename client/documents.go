// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"net/http"

	"github.com/xmidt-org/meili/model"
	"github.com/xmidt-org/meili/transport"
)

// DefaultBatchSize is the chunk size of AddDocumentsInBatches and
// UpdateDocumentsInBatches when none is given.
const DefaultBatchSize = 1000

func primaryKeyQuery(primaryKey string) model.AddDocumentsQuery {
	return model.AddDocumentsQuery{PrimaryKey: primaryKey}
}

// AddDocuments enqueues the replacement of documents, a value encoding to
// a JSON array. An empty primaryKey lets the server infer it.
func (idx *Index) AddDocuments(ctx context.Context, documents any, primaryKey string) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("documents"), transport.Post(primaryKeyQuery(primaryKey), documents))
}

// AddOrUpdate enqueues a partial update of documents: fields missing from
// a document are kept.
func (idx *Index) AddOrUpdate(ctx context.Context, documents any, primaryKey string) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("documents"), transport.Put(primaryKeyQuery(primaryKey), documents))
}

// AddDocumentsNDJSON streams newline delimited JSON documents to the
// server.
func (idx *Index) AddDocumentsNDJSON(ctx context.Context, r io.Reader, primaryKey string) (model.TaskInfo, error) {
	return idx.stream(ctx, transport.Post(primaryKeyQuery(primaryKey), r), transport.ContentTypeNDJSON)
}

func (idx *Index) UpdateDocumentsNDJSON(ctx context.Context, r io.Reader, primaryKey string) (model.TaskInfo, error) {
	return idx.stream(ctx, transport.Put(primaryKeyQuery(primaryKey), r), transport.ContentTypeNDJSON)
}

// AddDocumentsCSV streams CSV documents to the server. The first line
// names the fields.
func (idx *Index) AddDocumentsCSV(ctx context.Context, r io.Reader, q model.AddDocumentsQuery) (model.TaskInfo, error) {
	return idx.stream(ctx, transport.Post(q, r), transport.ContentTypeCSV)
}

func (idx *Index) UpdateDocumentsCSV(ctx context.Context, r io.Reader, q model.AddDocumentsQuery) (model.TaskInfo, error) {
	return idx.stream(ctx, transport.Put(q, r), transport.ContentTypeCSV)
}

func (idx *Index) stream(ctx context.Context, m transport.Method, contentType string) (model.TaskInfo, error) {
	var ti model.TaskInfo
	err := idx.client.backend.StreamRequest(ctx, idx.path("documents"), m, contentType, http.StatusAccepted, &ti)
	if err != nil {
		return model.TaskInfo{}, err
	}
	return ti, nil
}

// GetDocument decodes the document identified by id into out.
func (idx *Index) GetDocument(ctx context.Context, id string, q *model.DocumentQuery, out any) error {
	return idx.client.do(ctx, idx.path("documents", id), transport.Get(q), http.StatusOK, out)
}

// GetDocuments decodes a page of documents into out, usually a
// *model.DocumentsResults[T]. A query with a filter is sent as a POST.
func (idx *Index) GetDocuments(ctx context.Context, q *model.DocumentsQuery, out any) error {
	if q != nil && q.Filter != nil {
		return idx.client.do(ctx, idx.path("documents", "fetch"), transport.Post(nil, q), http.StatusOK, out)
	}
	return idx.client.do(ctx, idx.path("documents"), transport.Get(q), http.StatusOK, out)
}

func (idx *Index) DeleteDocument(ctx context.Context, id string) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("documents", id), transport.Delete(nil))
}

// DeleteDocuments enqueues the deletion of the documents with the given ids.
func (idx *Index) DeleteDocuments(ctx context.Context, ids []string) (model.TaskInfo, error) {
	if ids == nil {
		ids = []string{}
	}
	return idx.client.enqueue(ctx, idx.path("documents", "delete-batch"), transport.Post(nil, ids))
}

// DeleteDocumentsByFilter enqueues the deletion of the documents matching
// filter, a filter expression string or array.
func (idx *Index) DeleteDocumentsByFilter(ctx context.Context, filter any) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("documents", "delete"), transport.Post(nil, model.DeleteByFilter{Filter: filter}))
}

func (idx *Index) DeleteAllDocuments(ctx context.Context) (model.TaskInfo, error) {
	return idx.client.enqueue(ctx, idx.path("documents"), transport.Delete(nil))
}

// GetDocuments fetches a page of documents of idx decoded as T.
func GetDocuments[T any](ctx context.Context, idx *Index, q *model.DocumentsQuery) (model.DocumentsResults[T], error) {
	var results model.DocumentsResults[T]
	if err := idx.GetDocuments(ctx, q, &results); err != nil {
		return model.DocumentsResults[T]{}, err
	}
	return results, nil
}

// AddDocumentsInBatches sends documents in chunks of batchSize, one
// AddDocuments call per chunk, in order. The returned handles follow the
// order of the chunks. Tasks failing on the server don't stop the upload;
// poll the handles to find out. A request failing stops it and the handles
// of the chunks already accepted are returned with the error.
func AddDocumentsInBatches[T any](ctx context.Context, idx *Index, documents []T, batchSize int, primaryKey string) ([]model.TaskInfo, error) {
	return inBatches(documents, batchSize, func(chunk []T) (model.TaskInfo, error) {
		return idx.AddDocuments(ctx, chunk, primaryKey)
	})
}

// UpdateDocumentsInBatches is AddDocumentsInBatches for partial updates.
func UpdateDocumentsInBatches[T any](ctx context.Context, idx *Index, documents []T, batchSize int, primaryKey string) ([]model.TaskInfo, error) {
	return inBatches(documents, batchSize, func(chunk []T) (model.TaskInfo, error) {
		return idx.AddOrUpdate(ctx, chunk, primaryKey)
	})
}

func inBatches[T any](documents []T, batchSize int, send func([]T) (model.TaskInfo, error)) ([]model.TaskInfo, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	tasks := make([]model.TaskInfo, 0, (len(documents)+batchSize-1)/batchSize)
	for start := 0; start < len(documents); start += batchSize {
		end := min(start+batchSize, len(documents))
		ti, err := send(documents[start:end])
		if err != nil {
			return tasks, err
		}
		tasks = append(tasks, ti)
	}
	return tasks, nil
}
