// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"net/http"
	"reflect"
)

// Method is the verb of a request together with its query and body. GET and
// DELETE never carry a body. A nil query sends no URL parameters and a nil
// body sends no payload.
type Method struct {
	verb    string
	query   any
	body    any
	hasBody bool
}

func Get(query any) Method {
	return Method{verb: http.MethodGet, query: query}
}

func Delete(query any) Method {
	return Method{verb: http.MethodDelete, query: query}
}

func Post(query, body any) Method {
	return Method{verb: http.MethodPost, query: query, body: body, hasBody: true}
}

func Put(query, body any) Method {
	return Method{verb: http.MethodPut, query: query, body: body, hasBody: true}
}

func Patch(query, body any) Method {
	return Method{verb: http.MethodPatch, query: query, body: body, hasBody: true}
}

// Verb returns the HTTP method name.
func (m Method) Verb() string {
	return m.verb
}

func (m Method) Query() any {
	return m.query
}

// Body returns the payload and whether the verb accepts one. A typed nil,
// such as a nil struct pointer, is reported as a nil payload.
func (m Method) Body() (any, bool) {
	if isNil(m.body) {
		return nil, m.hasBody
	}
	return m.body, m.hasBody
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func (m Method) withBody(body any) Method {
	m.body = body
	return m
}
