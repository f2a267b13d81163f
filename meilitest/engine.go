// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package meilitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

var (
	validIndexUID       = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,400}$`)
	customRankingRule   = regexp.MustCompile(`^[A-Za-z0-9_.]+:(asc|desc)$`)
	builtInRankingRules = map[string]bool{
		"words": true, "typo": true, "proximity": true,
		"attribute": true, "sort": true, "exactness": true,
	}
)

// Engine is a small in-memory Meilisearch server. It keeps indexes and
// their documents, and runs every write as a task. Writes are applied as
// soon as they are enqueued, but their tasks report as processing for
// ProcessingPolls fetches before showing their final state.
type Engine struct {
	*Server

	// ProcessingPolls is how many GET /tasks/{uid} calls see a task as
	// processing before it is reported done.
	ProcessingPolls int

	lock    sync.Mutex
	now     func() time.Time
	indexes map[string]*engineIndex
	tasks   []*engineTask
}

type engineIndex struct {
	uid          string
	primaryKey   *string
	createdAt    time.Time
	updatedAt    time.Time
	documents    map[string]json.RawMessage
	order        []string
	rankingRules []string
}

type engineTask struct {
	uid        uint32
	indexUID   *string
	kind       string
	details    any
	err        map[string]string
	enqueuedAt time.Time
	polls      int
}

// NewEngine starts an Engine closed at the end of the test.
func NewEngine(t testing.TB, middleware ...alice.Constructor) *Engine {
	e := &Engine{
		Server:          NewServer(t, middleware...),
		ProcessingPolls: 1,
		now:             func() time.Time { return time.Now().UTC() },
		indexes:         make(map[string]*engineIndex),
	}

	e.HandleFunc(http.MethodGet, "/health", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, map[string]string{"status": "available"})
	})
	e.HandleFunc(http.MethodGet, "/version", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, map[string]string{
			"commitSha":  "b46889b5f0f2f8b91438a08a358ba8f05fc09fc1",
			"commitDate": "2026-01-01T00:00:00Z",
			"pkgVersion": "1.26.0",
		})
	})
	e.HandleFunc(http.MethodPost, "/indexes", e.createIndex)
	e.HandleFunc(http.MethodGet, "/indexes", e.listIndexes)
	e.HandleFunc(http.MethodGet, "/indexes/{uid}", e.getIndex)
	e.HandleFunc(http.MethodDelete, "/indexes/{uid}", e.deleteIndex)
	e.HandleFunc(http.MethodPost, "/indexes/{uid}/documents", e.addDocuments)
	e.HandleFunc(http.MethodPut, "/indexes/{uid}/documents", e.addDocuments)
	e.HandleFunc(http.MethodGet, "/indexes/{uid}/documents", e.listDocuments)
	e.HandleFunc(http.MethodGet, "/indexes/{uid}/documents/{id}", e.getDocument)
	e.HandleFunc(http.MethodGet, "/indexes/{uid}/settings/ranking-rules", e.getRankingRules)
	e.HandleFunc(http.MethodPut, "/indexes/{uid}/settings/ranking-rules", e.setRankingRules)
	e.HandleFunc(http.MethodPost, "/swap-indexes", e.swapIndexes)
	e.HandleFunc(http.MethodGet, "/tasks/{uid}", e.getTask)
	return e
}

// Index returns the ids of the documents of an index in insertion order.
func (e *Engine) Index(uid string) ([]string, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	idx, ok := e.indexes[uid]
	if !ok {
		return nil, false
	}
	return append([]string(nil), idx.order...), true
}

func (e *Engine) createIndex(rw http.ResponseWriter, r *http.Request) {
	var body struct {
		UID        string  `json:"uid"`
		PrimaryKey *string `json:"primaryKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(rw, http.StatusBadRequest, "bad_request", "invalid_request", err.Error())
		return
	}
	if !validIndexUID.MatchString(body.UID) {
		writeError(rw, http.StatusBadRequest, "invalid_index_uid", "invalid_request",
			fmt.Sprintf("`%s` is not a valid index uid.", body.UID))
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	task := e.enqueue(&body.UID, "indexCreation", map[string]any{"primaryKey": body.PrimaryKey})
	if _, ok := e.indexes[body.UID]; ok {
		task.fail("index_already_exists", fmt.Sprintf("Index `%s` already exists.", body.UID))
	} else {
		e.indexes[body.UID] = e.newIndex(body.UID, body.PrimaryKey)
	}
	e.writeTaskInfo(rw, task)
}

func (e *Engine) listIndexes(rw http.ResponseWriter, _ *http.Request) {
	e.lock.Lock()
	defer e.lock.Unlock()
	uids := make([]string, 0, len(e.indexes))
	for uid := range e.indexes {
		uids = append(uids, uid)
	}
	sort.Strings(uids)
	results := make([]any, 0, len(uids))
	for _, uid := range uids {
		results = append(results, e.indexes[uid].info())
	}
	writeJSON(rw, http.StatusOK, map[string]any{
		"results": results,
		"offset":  0,
		"limit":   20,
		"total":   len(results),
	})
}

func (e *Engine) getIndex(rw http.ResponseWriter, r *http.Request) {
	e.lock.Lock()
	defer e.lock.Unlock()
	idx, ok := e.lookup(rw, r)
	if ok {
		writeJSON(rw, http.StatusOK, idx.info())
	}
}

func (e *Engine) deleteIndex(rw http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	e.lock.Lock()
	defer e.lock.Unlock()
	task := e.enqueue(&uid, "indexDeletion", map[string]any{"deletedDocuments": 0})
	if idx, ok := e.indexes[uid]; ok {
		task.details = map[string]any{"deletedDocuments": len(idx.order)}
		delete(e.indexes, uid)
	} else {
		task.fail("index_not_found", fmt.Sprintf("Index `%s` not found.", uid))
	}
	e.writeTaskInfo(rw, task)
}

func (e *Engine) addDocuments(rw http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	var docs []map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		writeError(rw, http.StatusBadRequest, "malformed_payload", "invalid_request", err.Error())
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	task := e.enqueue(&uid, "documentAdditionOrUpdate", map[string]any{
		"receivedDocuments": len(docs),
		"indexedDocuments":  0,
	})

	idx, ok := e.indexes[uid]
	if !ok {
		idx = e.newIndex(uid, nil)
		e.indexes[uid] = idx
	}
	if pk := r.URL.Query().Get("primaryKey"); pk != "" && idx.primaryKey == nil {
		idx.primaryKey = &pk
	}
	if idx.primaryKey == nil {
		if len(docs) == 0 {
			e.writeTaskInfo(rw, task)
			return
		}
		if _, ok := docs[0]["id"]; !ok {
			task.fail("index_primary_key_no_candidate_found", "The primary key inference failed.")
			e.writeTaskInfo(rw, task)
			return
		}
		pk := "id"
		idx.primaryKey = &pk
	}

	for _, doc := range docs {
		raw, ok := doc[*idx.primaryKey]
		if !ok {
			task.fail("missing_document_id", fmt.Sprintf("Document doesn't have a `%s` attribute.", *idx.primaryKey))
			e.writeTaskInfo(rw, task)
			return
		}
		id := documentID(raw)
		if _, exists := idx.documents[id]; !exists {
			idx.order = append(idx.order, id)
		}
		b, _ := json.Marshal(doc)
		idx.documents[id] = b
	}
	idx.updatedAt = e.now()
	task.details = map[string]any{
		"receivedDocuments": len(docs),
		"indexedDocuments":  len(docs),
	}
	e.writeTaskInfo(rw, task)
}

func (e *Engine) listDocuments(rw http.ResponseWriter, r *http.Request) {
	e.lock.Lock()
	defer e.lock.Unlock()
	idx, ok := e.lookup(rw, r)
	if !ok {
		return
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit := 20
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = l
	}

	results := []json.RawMessage{}
	for i := offset; i < len(idx.order) && i < offset+limit; i++ {
		results = append(results, idx.documents[idx.order[i]])
	}
	writeJSON(rw, http.StatusOK, map[string]any{
		"results": results,
		"offset":  offset,
		"limit":   limit,
		"total":   len(idx.order),
	})
}

func (e *Engine) getDocument(rw http.ResponseWriter, r *http.Request) {
	e.lock.Lock()
	defer e.lock.Unlock()
	idx, ok := e.lookup(rw, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	doc, ok := idx.documents[id]
	if !ok {
		writeError(rw, http.StatusNotFound, "document_not_found", "invalid_request",
			fmt.Sprintf("Document `%s` not found.", id))
		return
	}
	write(rw, http.StatusOK, doc)
}

func (e *Engine) getRankingRules(rw http.ResponseWriter, r *http.Request) {
	e.lock.Lock()
	defer e.lock.Unlock()
	idx, ok := e.lookup(rw, r)
	if ok {
		writeJSON(rw, http.StatusOK, idx.rankingRules)
	}
}

func (e *Engine) setRankingRules(rw http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	var rules []string
	if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid_settings_ranking_rules", "invalid_request", err.Error())
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	task := e.enqueue(&uid, "settingsUpdate", map[string]any{"rankingRules": rules})
	for i, rule := range rules {
		if !builtInRankingRules[rule] && !customRankingRule.MatchString(rule) {
			task.fail("invalid_settings_ranking_rules",
				fmt.Sprintf("Invalid value at `.rankingRules[%d]`: `%s` ranking rule is invalid.", i, rule))
			e.writeTaskInfo(rw, task)
			return
		}
	}
	idx, ok := e.indexes[uid]
	if !ok {
		idx = e.newIndex(uid, nil)
		e.indexes[uid] = idx
	}
	idx.rankingRules = rules
	e.writeTaskInfo(rw, task)
}

func (e *Engine) swapIndexes(rw http.ResponseWriter, r *http.Request) {
	var swaps []struct {
		Indexes []string `json:"indexes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&swaps); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid_swap_indexes", "invalid_request", err.Error())
		return
	}
	for _, s := range swaps {
		if len(s.Indexes) != 2 {
			writeError(rw, http.StatusBadRequest, "invalid_swap_indexes", "invalid_request",
				"Two indexes must be given for each swap.")
			return
		}
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	task := e.enqueue(nil, "indexSwap", map[string]any{"swaps": swaps})
	for _, s := range swaps {
		a, aok := e.indexes[s.Indexes[0]]
		b, bok := e.indexes[s.Indexes[1]]
		if !aok || !bok {
			task.fail("index_not_found", fmt.Sprintf("Indexes `%s`, `%s` not found.", s.Indexes[0], s.Indexes[1]))
			e.writeTaskInfo(rw, task)
			return
		}
		a.uid, b.uid = b.uid, a.uid
		e.indexes[a.uid], e.indexes[b.uid] = a, b
	}
	e.writeTaskInfo(rw, task)
}

func (e *Engine) getTask(rw http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseUint(mux.Vars(r)["uid"], 10, 32)

	e.lock.Lock()
	defer e.lock.Unlock()
	if err != nil || uid >= uint64(len(e.tasks)) {
		writeError(rw, http.StatusNotFound, "task_not_found", "invalid_request",
			fmt.Sprintf("Task `%s` not found.", mux.Vars(r)["uid"]))
		return
	}
	task := e.tasks[uid]
	task.polls++
	writeJSON(rw, http.StatusOK, task.view(task.polls > e.ProcessingPolls))
}

func (e *Engine) lookup(rw http.ResponseWriter, r *http.Request) (*engineIndex, bool) {
	uid := mux.Vars(r)["uid"]
	idx, ok := e.indexes[uid]
	if !ok {
		writeError(rw, http.StatusNotFound, "index_not_found", "invalid_request",
			fmt.Sprintf("Index `%s` not found.", uid))
	}
	return idx, ok
}

func (e *Engine) newIndex(uid string, primaryKey *string) *engineIndex {
	now := e.now()
	return &engineIndex{
		uid:          uid,
		primaryKey:   primaryKey,
		createdAt:    now,
		updatedAt:    now,
		documents:    make(map[string]json.RawMessage),
		rankingRules: []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
	}
}

func (e *Engine) enqueue(indexUID *string, kind string, details any) *engineTask {
	t := &engineTask{
		uid:        uint32(len(e.tasks)),
		indexUID:   indexUID,
		kind:       kind,
		details:    details,
		enqueuedAt: e.now(),
	}
	e.tasks = append(e.tasks, t)
	return t
}

func (e *Engine) writeTaskInfo(rw http.ResponseWriter, t *engineTask) {
	writeJSON(rw, http.StatusAccepted, map[string]any{
		"taskUid":    t.uid,
		"indexUid":   t.indexUID,
		"status":     "enqueued",
		"type":       t.kind,
		"enqueuedAt": t.enqueuedAt.Format(time.RFC3339Nano),
	})
}

func (t *engineTask) fail(code, message string) {
	t.err = map[string]string{
		"message": message,
		"code":    code,
		"type":    "invalid_request",
		"link":    "https://docs.meilisearch.com/errors#" + code,
	}
}

func (t *engineTask) view(done bool) map[string]any {
	started := t.enqueuedAt.Add(time.Millisecond)
	v := map[string]any{
		"uid":        t.uid,
		"batchUid":   t.uid,
		"indexUid":   t.indexUID,
		"status":     "processing",
		"type":       t.kind,
		"canceledBy": nil,
		"details":    t.details,
		"error":      nil,
		"duration":   nil,
		"enqueuedAt": t.enqueuedAt.Format(time.RFC3339Nano),
		"startedAt":  started.Format(time.RFC3339Nano),
		"finishedAt": nil,
	}
	if !done {
		return v
	}

	v["status"] = "succeeded"
	if t.err != nil {
		v["status"] = "failed"
		v["error"] = t.err
	}
	v["duration"] = "PT0.001S"
	v["finishedAt"] = started.Add(time.Millisecond).Format(time.RFC3339Nano)
	return v
}

func (idx *engineIndex) info() map[string]any {
	return map[string]any{
		"uid":        idx.uid,
		"primaryKey": idx.primaryKey,
		"createdAt":  idx.createdAt.Format(time.RFC3339Nano),
		"updatedAt":  idx.updatedAt.Format(time.RFC3339Nano),
	}
}

func documentID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
