package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMerklServerRequiresConfig(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewMerklServer(nil, newTestLogger(&buf))
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestToolRegistrationsCoverCatalog(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewMerklServer(&Config{APIURL: "https://api.merkl.xyz", RequestTimeout: time.Second}, newTestLogger(&buf))
	require.NoError(t, err)

	registrations := s.toolRegistrations()
	require.Len(t, registrations, len(allTools))

	for i, reg := range registrations {
		assert.Equal(t, allTools[i].Name, reg.tool.Name, "catalog order mismatch at %d", i)
		assert.NotNil(t, reg.handler)
	}
}

func TestErrorServerReportsStartupError(t *testing.T) {
	errorServer := &ErrorMerklServer{errorMessage: "invalid MERKL_API_URL"}

	result, err := errorServer.handleErrorResponse(context.Background(), callToolRequest("opportunities-search", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid MERKL_API_URL")
}

func TestWrapHandlerWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	upstream := newMockUpstream(t, 200, `[]`)
	s := newTestServer(t, upstream)

	wrapped := wrapHandlerWithLogger(s.OpportunitiesSearchHandler, "opportunities-search", logger)
	result, err := wrapped(context.Background(), callToolRequest("opportunities-search", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	logs := buf.String()
	assert.Contains(t, logs, "Calling tool 'opportunities-search'")
	assert.Contains(t, logs, "completed in")
}
