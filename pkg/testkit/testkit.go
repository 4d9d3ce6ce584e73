// Package testkit provides test doubles for outbound HTTP calls.
//
// MockTransport implements http.RoundTripper and is installed on the shared
// outbound client so tests never hit the real completion service:
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("https://api.groq.com", 200, completionJSON)
//	httpx.DefaultClient.Transport = mt
//	defer httpx.ResetTransport()
package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Stub describes one canned response matched by URL prefix.
type Stub struct {
	URLPrefix  string
	StatusCode int
	Body       string

	calls int
}

// MockTransport matches outgoing requests against stubs and returns
// synthetic responses instead of making network calls.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*Stub

	// Requests records every intercepted request body for assertions.
	Requests []string
}

// NewMockTransport builds an empty MockTransport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub registers a canned response for any URL starting with prefix.
// An empty prefix matches every request.
func (mt *MockTransport) Stub(prefix string, status int, body string) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &Stub{URLPrefix: prefix, StatusCode: status, Body: body})
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body.Close()
		mt.Requests = append(mt.Requests, string(raw))
	}

	for _, s := range mt.stubs {
		if s.URLPrefix != "" && !strings.HasPrefix(req.URL.String(), s.URLPrefix) {
			continue
		}
		s.calls++

		status := s.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		header := make(http.Header)
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: status,
			Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader([]byte(s.Body))),
			Request:    req,
		}, nil
	}

	return nil, fmt.Errorf("testkit: no stub matches outgoing HTTP call to %s", req.URL)
}

// Calls returns how many requests matched the stub with the given prefix.
func (mt *MockTransport) Calls(prefix string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for _, s := range mt.stubs {
		if s.URLPrefix == prefix {
			return s.calls
		}
	}
	return 0
}

// TotalCalls returns how many requests were intercepted in total.
func (mt *MockTransport) TotalCalls() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	n := 0
	for _, s := range mt.stubs {
		n += s.calls
	}
	return n
}
