package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMerklServer creates a new MerklServer with the provided configuration
func NewMerklServer(config *Config, logger Logger) (*MerklServer, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	return &MerklServer{
		config: config,
		client: NewMerklClient(config, logger),
	}, nil
}

// toolRegistration binds a tool specification to its handler
type toolRegistration struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// toolRegistrations lists every tool with its handler, in catalog order
func (s *MerklServer) toolRegistrations() []toolRegistration {
	return []toolRegistration{
		{OpportunitiesSearchTool, s.OpportunitiesSearchHandler},
		{OpportunitiesGetTool, s.OpportunitiesGetHandler},
		{OpportunitiesCampaignsTool, s.OpportunitiesCampaignsHandler},
		{OpportunitiesCountTool, s.OpportunitiesCountHandler},
		{OpportunitiesBinsAprTool, s.OpportunitiesBinsAprHandler},
		{OpportunitiesBinsTvlTool, s.OpportunitiesBinsTvlHandler},
		{OpportunitiesAggregateTool, s.OpportunitiesAggregateHandler},
		{OpportunitiesAggregateMaxTool, s.OpportunitiesAggregateMaxHandler},
		{OpportunitiesAggregateMinTool, s.OpportunitiesAggregateMinHandler},
		{CampaignsSearchTool, s.CampaignsSearchHandler},
		{CampaignsGetTool, s.CampaignsGetHandler},
		{CampaignsCountTool, s.CampaignsCountHandler},
		{ProtocolsSearchTool, s.ProtocolsSearchHandler},
		{ProtocolsGetTool, s.ProtocolsGetHandler},
		{ChainsSearchTool, s.ChainsSearchHandler},
		{ChainsGetTool, s.ChainsGetHandler},
		{TokensSearchTool, s.TokensSearchHandler},
	}
}

// registerTools registers the full tool catalog with the MCP server, each
// handler wrapped in the logging middleware
func registerTools(mcpServer *server.MCPServer, merklSvc *MerklServer, logger Logger) {
	for _, reg := range merklSvc.toolRegistrations() {
		mcpServer.AddTool(reg.tool, wrapHandlerWithLogger(reg.handler, reg.tool.Name, logger))
		logger.Info("Registered tool: %s", reg.tool.Name)
	}
}

// ErrorMerklServer answers every tool call with the startup error. It is
// used when configuration fails, so the host still sees the full tool
// catalog instead of a dead transport.
type ErrorMerklServer struct {
	errorMessage string
}

// handleErrorResponse reports the initialization error for any tool call
func (s *ErrorMerklServer) handleErrorResponse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return createErrorResult(fmt.Sprintf("Merkl server failed to initialize: %s", s.errorMessage)), nil
}

// registerErrorTools registers the full catalog against the error handler
func registerErrorTools(mcpServer *server.MCPServer, errorServer *ErrorMerklServer, logger Logger) {
	for _, tool := range allTools {
		mcpServer.AddTool(tool, wrapHandlerWithLogger(errorServer.handleErrorResponse, tool.Name, logger))
	}
	logger.Info("Registered error handlers for all tools")
}
