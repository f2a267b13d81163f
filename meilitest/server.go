// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package meilitest provides fakes of a Meilisearch server for tests.
package meilitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// Request is a request received by a Server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is a canned answer.
type Response struct {
	Status int
	Body   string
}

// JSON builds a Response whose body is v encoded as JSON.
func JSON(status int, v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return Response{Status: status, Body: string(b)}
}

// Server is an httptest.Server that records every request it receives
// and routes them with a gorilla/mux router. Unrouted requests get a 404
// Meilisearch error envelope.
type Server struct {
	*httptest.Server

	router   *mux.Router
	lock     sync.Mutex
	requests []Request
}

// NewServer starts a Server closed at the end of the test. The middleware
// run after recording and before routing.
func NewServer(t testing.TB, middleware ...alice.Constructor) *Server {
	s := &Server{router: mux.NewRouter()}
	s.router.Use(otelmux.Middleware("meilitest"))
	s.router.NotFoundHandler = http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusNotFound, "not_found", "invalid_request", "Route "+r.URL.Path+" not found.")
	})
	s.Server = httptest.NewServer(alice.New(s.record).Append(middleware...).Then(s.router))
	t.Cleanup(s.Close)
	return s
}

// Router exposes the router for custom routes.
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) Handle(method, path string, h http.Handler) {
	s.router.Handle(path, h).Methods(method)
}

func (s *Server) HandleFunc(method, path string, f http.HandlerFunc) {
	s.Handle(method, path, f)
}

// Respond answers every request to the route with the same response.
func (s *Server) Respond(method, path string, status int, body string) {
	h := httpaux.ConstantHandler{StatusCode: status}
	if len(body) > 0 {
		h.ContentType = "application/json"
		h.Body = []byte(body)
	}
	s.Handle(method, path, h)
}

// RespondSequence answers successive requests with successive responses.
// The last one is repeated once the others are used up.
func (s *Server) RespondSequence(method, path string, responses ...Response) {
	var (
		lock sync.Mutex
		next int
	)
	s.HandleFunc(method, path, func(rw http.ResponseWriter, _ *http.Request) {
		lock.Lock()
		r := responses[next]
		if next < len(responses)-1 {
			next++
		}
		lock.Unlock()
		write(rw, r.Status, []byte(r.Body))
	})
}

// Requests returns a copy of what the server received so far.
func (s *Server) Requests() []Request {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	var n int
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.lock.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.lock.Unlock()

		next.ServeHTTP(rw, r)
	})
}

func write(rw http.ResponseWriter, status int, body []byte) {
	if len(body) > 0 {
		rw.Header().Set("Content-Type", "application/json")
	}
	rw.WriteHeader(status)
	rw.Write(body)
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}
	write(rw, status, b)
}

func writeError(rw http.ResponseWriter, status int, code, errType, message string) {
	writeJSON(rw, status, map[string]string{
		"message": message,
		"code":    code,
		"type":    errType,
		"link":    "https://docs.meilisearch.com/errors#" + code,
	})
}
