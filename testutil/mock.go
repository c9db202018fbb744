// Package testutil provides testing utilities for the Upvest SDK.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// TokenPath is the versioned OAuth token endpoint as seen by a mock server.
const TokenPath = "/1.0/clientele/oauth2/token/"

// MockServer provides a mock HTTP server for testing SDK clients.
type MockServer struct {
	*httptest.Server
	t        *testing.T
	handlers map[string]http.HandlerFunc
}

// NewMockServer creates a new mock server for testing.
func NewMockServer(t *testing.T) *MockServer {
	ms := &MockServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	return ms
}

// On registers a handler for a specific method and versioned path.
func (ms *MockServer) On(method, path string, handler http.HandlerFunc) {
	key := method + " " + path
	ms.handlers[key] = handler
}

// OnJSON registers a handler that returns JSON for a specific method and
// versioned path.
func (ms *MockServer) OnJSON(method, path string, statusCode int, response interface{}) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Fatalf("failed to encode response: %v", err)
			}
		}
	})
}

// OnToken registers a handler for the OAuth token endpoint and returns a
// counter reporting how many token requests were served. Use it to assert
// that every signed request performs its own token round trip.
func (ms *MockServer) OnToken(statusCode int, response interface{}) *CallCounter {
	counter := &CallCounter{}
	ms.On("POST", TokenPath, func(w http.ResponseWriter, r *http.Request) {
		counter.inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Fatalf("failed to encode token response: %v", err)
			}
		}
	})
	return counter
}

// handleRequest routes requests to registered handlers.
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	handler, ok := ms.handlers[key]
	if !ok {
		ms.t.Logf("no handler registered for %s", key)
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.Server.Close()
}

// CallCounter counts calls to a mock handler. Safe for concurrent use.
type CallCounter struct {
	n atomic.Int64
}

func (c *CallCounter) inc() {
	c.n.Add(1)
}

// Count returns the number of calls observed so far.
func (c *CallCounter) Count() int {
	return int(c.n.Load())
}

// AssertHeader asserts that a request header has the expected value.
func AssertHeader(t *testing.T, r *http.Request, key, expected string) {
	t.Helper()
	actual := r.Header.Get(key)
	if actual != expected {
		t.Errorf("expected header %s=%q, got %q", key, expected, actual)
	}
}

// AssertMethod asserts that the request method matches expected.
func AssertMethod(t *testing.T, r *http.Request, expected string) {
	t.Helper()
	if r.Method != expected {
		t.Errorf("expected method %s, got %s", expected, r.Method)
	}
}

// AssertJSONBody decodes the request body and compares it to expected.
func AssertJSONBody(t *testing.T, r *http.Request, expected interface{}) {
	t.Helper()
	var actual interface{}
	if err := json.NewDecoder(r.Body).Decode(&actual); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		t.Errorf("expected body %s, got %s", string(expectedJSON), string(actualJSON))
	}
}
