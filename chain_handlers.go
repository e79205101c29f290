package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ChainsSearchHandler handles the chains-search tool
func (s *MerklServer) ChainsSearchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	q := &Query{}
	q.Add("search", extractArgumentString(req, "search", ""))

	var chains []Chain
	if _, err := s.client.getJSON(ctx, "/v4/chains", q, false, &chains); err != nil {
		logger.Error("chains-search upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if chains == nil {
		chains = []Chain{}
	}
	return newToolResultJSON(chains), nil
}

// ChainsGetHandler handles the chains-get tool
func (s *MerklServer) ChainsGetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	chainID := extractArgumentString(req, "chainId", "")
	if err := validateNumericID("chainId", chainID); err != nil {
		return createErrorResult(err.Error()), nil
	}

	var chain Chain
	found, err := s.client.getJSON(ctx, "/v4/chains/"+chainID, nil, true, &chain)
	if err != nil {
		logger.Error("chains-get upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if !found {
		logger.Info("Chain %s not found", chainID)
		return newNotFoundResult(), nil
	}

	return newToolResultJSON(chain), nil
}
