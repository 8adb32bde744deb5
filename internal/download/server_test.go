// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

const testPath = "/releases/amd64/14.1-RELEASE/base.txz"

func testContent(size int) []byte {
	content := make([]byte, size)
	for idx := range content {
		content[idx] = byte(idx % 251)
	}

	return content
}

// testServer serves content at [testPath] and records all requests. Failure
// hooks can replace the response of single requests.
type testServer struct {
	*httptest.Server

	content []byte

	mu      sync.Mutex
	methods []string
	ranges  []string

	// failGET returns true if the GET with the given number should fail.
	failGET func(n int) bool
	// onGET replaces the default GET handling, if set.
	onGET func(w http.ResponseWriter, r *http.Request, n int)
	// onHEAD replaces the default HEAD handling, if set.
	onHEAD func(w http.ResponseWriter, r *http.Request)
}

func newTestServer(t *testing.T, content []byte) *testServer {
	t.Helper()

	srv := &testServer{content: content}
	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))

	return srv
}

func (s *testServer) record(r *http.Request) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.methods = append(s.methods, r.Method)

	if r.Method != http.MethodGet {
		return 0
	}

	s.ranges = append(s.ranges, r.Header.Get("Range"))

	return len(s.ranges)
}

func (s *testServer) count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int

	for _, m := range s.methods {
		if m == method {
			n++
		}
	}

	return n
}

func (s *testServer) rangeHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.ranges...)
}

func (s *testServer) handle(w http.ResponseWriter, r *http.Request) {
	n := s.record(r)

	if r.URL.Path != testPath {
		http.NotFound(w, r)
		return
	}

	switch {
	case r.Method == http.MethodHead && s.onHEAD != nil:
		s.onHEAD(w, r)
	case r.Method == http.MethodGet && s.failGET != nil && s.failGET(n):
		http.Error(w, "try again", http.StatusInternalServerError)
	case r.Method == http.MethodGet && s.onGET != nil:
		s.onGET(w, r, n)
	default:
		http.ServeContent(w, r, "base.txz", time.Time{}, bytes.NewReader(s.content))
	}
}

func (s *testServer) baseURL() string {
	return s.URL + "/releases/"
}
