package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProtocolsSearchHandler handles the protocols-search tool
func (s *MerklServer) ProtocolsSearchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	q := &Query{}
	q.Add("id", extractArgumentString(req, "id", ""))
	q.Add("name", extractArgumentString(req, "name", ""))
	q.AddList("tags", extractArgumentStringList(req, "tags"))
	if page, ok := extractArgumentNumber(req, "page"); ok {
		q.AddInt("page", int(page))
	}
	q.AddInt("items", extractArgumentInt(req, "items", 100))

	var protocols []Protocol
	if _, err := s.client.getJSON(ctx, "/v4/protocols", q, false, &protocols); err != nil {
		logger.Error("protocols-search upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if protocols == nil {
		protocols = []Protocol{}
	}
	return newToolResultJSON(protocols), nil
}

// ProtocolsGetHandler handles the protocols-get tool
func (s *MerklServer) ProtocolsGetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	id := extractArgumentString(req, "id", "")
	if err := validateProtocolID(id); err != nil {
		return createErrorResult(err.Error()), nil
	}

	var protocol Protocol
	found, err := s.client.getJSON(ctx, "/v4/protocols/"+id, nil, true, &protocol)
	if err != nil {
		logger.Error("protocols-get upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if !found {
		logger.Info("Protocol %s not found", id)
		return newNotFoundResult(), nil
	}

	return newToolResultJSON(protocol), nil
}
