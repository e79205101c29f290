package main

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolsSearchHandler(t *testing.T) {
	upstream := newMockUpstream(t, 200, `[{"id": "uniswap-v3", "name": "Uniswap V3", "tags": ["amm"]}]`)
	s := newTestServer(t, upstream)

	result, err := s.ProtocolsSearchHandler(context.Background(), callToolRequest("protocols-search", nil))
	require.NoError(t, err)
	assert.Equal(t, "/v4/protocols", upstream.lastPath())

	query, parseErr := url.ParseQuery(upstream.lastQuery())
	require.NoError(t, parseErr)
	assert.Equal(t, "100", query.Get("items"))

	protocols, ok := result.StructuredContent.([]Protocol)
	require.True(t, ok)
	require.Len(t, protocols, 1)
	assert.Equal(t, "uniswap-v3", protocols[0].ID)
}

func TestProtocolsGetHandler(t *testing.T) {
	t.Run("rejects malformed slug", func(t *testing.T) {
		upstream := newMockUpstream(t, 200, `{}`)
		s := newTestServer(t, upstream)

		req := callToolRequest("protocols-get", map[string]interface{}{"id": "../admin"})
		result, err := s.ProtocolsGetHandler(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, 0, upstream.callCount())
	})

	t.Run("not found sentinel", func(t *testing.T) {
		upstream := newMockUpstream(t, 404, `{"error":"not found"}`)
		s := newTestServer(t, upstream)

		req := callToolRequest("protocols-get", map[string]interface{}{"id": "no-such-protocol"})
		result, err := s.ProtocolsGetHandler(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "null", resultText(t, result))
	})
}

func TestChainsSearchHandler(t *testing.T) {
	upstream := newMockUpstream(t, 200, `[{"id": 1, "name": "Ethereum"}, {"id": 42161, "name": "Arbitrum One"}]`)
	s := newTestServer(t, upstream)

	req := callToolRequest("chains-search", map[string]interface{}{"search": "arb"})
	result, err := s.ChainsSearchHandler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/v4/chains", upstream.lastPath())
	assert.Equal(t, "search=arb", upstream.lastQuery())

	chains, ok := result.StructuredContent.([]Chain)
	require.True(t, ok)
	assert.Len(t, chains, 2)
}

func TestChainsGetHandler(t *testing.T) {
	t.Run("rejects non-numeric id", func(t *testing.T) {
		upstream := newMockUpstream(t, 200, `{}`)
		s := newTestServer(t, upstream)

		req := callToolRequest("chains-get", map[string]interface{}{"chainId": "mainnet"})
		result, err := s.ChainsGetHandler(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, 0, upstream.callCount())
	})

	t.Run("returns the chain", func(t *testing.T) {
		upstream := newMockUpstream(t, 200, `{"id": 42161, "name": "Arbitrum One"}`)
		s := newTestServer(t, upstream)

		req := callToolRequest("chains-get", map[string]interface{}{"chainId": "42161"})
		result, err := s.ChainsGetHandler(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "/v4/chains/42161", upstream.lastPath())

		chain, ok := result.StructuredContent.(Chain)
		require.True(t, ok)
		assert.Equal(t, "Arbitrum One", chain.Name)
	})
}

func TestTokensSearchHandler(t *testing.T) {
	upstream := newMockUpstream(t, 200, `[{"id": "t1", "chainId": 1, "address": "0xusdc", "symbol": "USDC", "decimals": 6}]`)
	s := newTestServer(t, upstream)

	req := callToolRequest("tokens-search", map[string]interface{}{
		"chainId": []interface{}{"1"},
		"symbol":  "USDC",
	})
	result, err := s.TokensSearchHandler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/v4/tokens", upstream.lastPath())

	query, parseErr := url.ParseQuery(upstream.lastQuery())
	require.NoError(t, parseErr)
	assert.Equal(t, "1", query.Get("chainId"))
	assert.Equal(t, "USDC", query.Get("symbol"))
	assert.Equal(t, "100", query.Get("items"))

	tokens, ok := result.StructuredContent.([]Token)
	require.True(t, ok)
	require.Len(t, tokens, 1)
	assert.Equal(t, "USDC", tokens[0].Symbol)
}
