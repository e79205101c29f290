package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// TokensSearchHandler handles the tokens-search tool
func (s *MerklServer) TokensSearchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	q := &Query{}
	q.AddList("chainId", extractArgumentStringList(req, "chainId"))
	q.Add("address", extractArgumentString(req, "address", ""))
	q.Add("symbol", extractArgumentString(req, "symbol", ""))
	if page, ok := extractArgumentNumber(req, "page"); ok {
		q.AddInt("page", int(page))
	}
	q.AddInt("items", extractArgumentInt(req, "items", 100))

	var tokens []Token
	if _, err := s.client.getJSON(ctx, "/v4/tokens", q, false, &tokens); err != nil {
		logger.Error("tokens-search upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if tokens == nil {
		tokens = []Token{}
	}
	return newToolResultJSON(tokens), nil
}
