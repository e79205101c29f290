package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

// newTestLogger creates a logger that writes to the provided buffer
func newTestLogger(buf *bytes.Buffer) Logger {
	return &StandardLogger{
		level:  LevelDebug,
		writer: buf,
	}
}

// mockUpstream is an httptest-backed stand-in for the Merkl API. It
// records every request so tests can assert on paths, query strings,
// headers, and call counts.
type mockUpstream struct {
	server *httptest.Server

	mu      sync.Mutex
	calls   int
	paths   []string
	queries []string
	headers []http.Header

	status int
	body   string
	delay  time.Duration
}

func newMockUpstream(t *testing.T, status int, body string) *mockUpstream {
	t.Helper()
	m := &mockUpstream{status: status, body: body}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.calls++
		m.paths = append(m.paths, r.URL.Path)
		m.queries = append(m.queries, r.URL.RawQuery)
		m.headers = append(m.headers, r.Header.Clone())
		m.mu.Unlock()

		if m.delay > 0 {
			time.Sleep(m.delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(m.status)
		_, _ = w.Write([]byte(m.body))
	}))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockUpstream) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockUpstream) lastPath() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.paths) == 0 {
		return ""
	}
	return m.paths[len(m.paths)-1]
}

func (m *mockUpstream) lastQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queries) == 0 {
		return ""
	}
	return m.queries[len(m.queries)-1]
}

func (m *mockUpstream) lastHeader() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.headers) == 0 {
		return nil
	}
	return m.headers[len(m.headers)-1]
}

// newTestServer wires a MerklServer at the mock upstream
func newTestServer(t *testing.T, upstream *mockUpstream) *MerklServer {
	t.Helper()
	config := &Config{
		APIURL:         upstream.server.URL,
		RequestTimeout: 5 * time.Second,
	}
	var buf bytes.Buffer
	s, err := NewMerklServer(config, newTestLogger(&buf))
	require.NoError(t, err)
	return s
}

// callToolRequest builds a request the way the MCP host would send it
func callToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the serialized text rendering from a result
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}
