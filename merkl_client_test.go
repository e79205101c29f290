package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, upstream *mockUpstream, apiKey string, timeout time.Duration) *MerklClient {
	t.Helper()
	var buf bytes.Buffer
	return NewMerklClient(&Config{
		APIURL:         upstream.server.URL,
		APIKey:         apiKey,
		RequestTimeout: timeout,
	}, newTestLogger(&buf))
}

func TestGetJSONBearerHeader(t *testing.T) {
	t.Run("header present when API key configured", func(t *testing.T) {
		upstream := newMockUpstream(t, 200, `{}`)
		client := newTestClient(t, upstream, "secret-token", 5*time.Second)

		var out map[string]interface{}
		found, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Bearer secret-token", upstream.lastHeader().Get("Authorization"))
	})

	t.Run("header absent without API key", func(t *testing.T) {
		upstream := newMockUpstream(t, 200, `{}`)
		client := newTestClient(t, upstream, "", 5*time.Second)

		var out map[string]interface{}
		_, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)
		require.NoError(t, err)
		assert.Empty(t, upstream.lastHeader().Get("Authorization"))
	})
}

func TestGetJSONAllow404(t *testing.T) {
	upstream := newMockUpstream(t, 404, `{"error":"not found"}`)
	client := newTestClient(t, upstream, "", 5*time.Second)

	t.Run("allow404 returns the not-found sentinel", func(t *testing.T) {
		var out Opportunity
		found, err := client.getJSON(context.Background(), "/v4/opportunities/999", nil, true, &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("404 without allow404 is an upstream error", func(t *testing.T) {
		var out []Opportunity
		_, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)
		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, 404, upstreamErr.StatusCode)
	})
}

func TestGetJSONUpstreamError(t *testing.T) {
	upstream := newMockUpstream(t, 500, `{"error":"boom"}`)
	client := newTestClient(t, upstream, "", 5*time.Second)

	var out []Opportunity
	_, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 500, upstreamErr.StatusCode)
	// No retry: a single failed call fails the whole operation
	assert.Equal(t, 1, upstream.callCount())
}

func TestGetJSONTimeout(t *testing.T) {
	upstream := newMockUpstream(t, 200, `{}`)
	upstream.delay = 500 * time.Millisecond
	client := newTestClient(t, upstream, "", 50*time.Millisecond)

	var out map[string]interface{}
	_, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)

	var timeoutErr *RequestTimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
}

func TestGetJSONMalformedBody(t *testing.T) {
	upstream := newMockUpstream(t, 200, `{not json`)
	client := newTestClient(t, upstream, "", 5*time.Second)

	var out map[string]interface{}
	_, err := client.getJSON(context.Background(), "/v4/opportunities", nil, false, &out)
	require.Error(t, err)
	assert.Equal(t, 1, upstream.callCount())
}

func TestDecodeCount(t *testing.T) {
	count, err := decodeCount(json.RawMessage(`42`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	count, err = decodeCount(json.RawMessage(`{"count": 17}`))
	require.NoError(t, err)
	assert.Equal(t, int64(17), count)

	_, err = decodeCount(json.RawMessage(`"many"`))
	assert.Error(t, err)
}

func TestDecodeBins(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		bins, err := decodeBins(json.RawMessage(`[{"label":"0-5%","count":10},{"label":"5-10%","count":3}]`))
		require.NoError(t, err)
		require.Len(t, bins, 2)
		assert.Equal(t, Bin{Label: "0-5%", Count: 10}, bins[0])
	})

	t.Run("object form preserves document order", func(t *testing.T) {
		bins, err := decodeBins(json.RawMessage(`{"10-20%": 4, "0-10%": 9}`))
		require.NoError(t, err)
		require.Len(t, bins, 2)
		assert.Equal(t, "10-20%", bins[0].Label)
		assert.Equal(t, "0-10%", bins[1].Label)
	})
}

func TestDecodeAggregate(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		buckets, err := decodeAggregate(json.RawMessage(`[{"value":"LIVE","count":120}]`))
		require.NoError(t, err)
		require.Len(t, buckets, 1)
		assert.Equal(t, AggregateBucket{Value: "LIVE", Count: 120}, buckets[0])
	})

	t.Run("object form preserves document order", func(t *testing.T) {
		buckets, err := decodeAggregate(json.RawMessage(`{"42161": 7, "1": 3}`))
		require.NoError(t, err)
		require.Len(t, buckets, 2)
		assert.Equal(t, "42161", buckets[0].Value)
		assert.Equal(t, "1", buckets[1].Value)
	})
}

func TestDecodeExtremum(t *testing.T) {
	value, err := decodeExtremum(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = decodeExtremum(json.RawMessage(`98.5`))
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 98.5, *value)

	value, err = decodeExtremum(json.RawMessage(`{"max": 12}`))
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, float64(12), *value)
}
