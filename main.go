package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "merkl"
	serverVersion = "1.0.0"
)

// main is the entry point for the application.
// It sets up the MCP server with the Merkl tool catalog and starts it.
func main() {
	// Define command-line flags for configuration override
	baseURLFlag := flag.String("base-url", "", "Merkl API base URL (overrides env var)")
	apiKeyFlag := flag.String("api-key", "", "Merkl API key (overrides env var)")
	timeoutFlag := flag.Int("timeout", 0, "Upstream request timeout in seconds (overrides env var)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides env var)")
	transportFlag := flag.String("transport", "stdio", "Transport mode: 'stdio' (default) or 'http'")
	flag.Parse()

	// Create application context with logger. All logging goes to stderr;
	// stdout belongs to the stdio transport.
	level := os.Getenv("MERKL_LOG_LEVEL")
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	logger := NewLogger(ParseLogLevel(level))
	ctx := context.WithValue(context.Background(), loggerKey, logger)

	// Create configuration from environment variables
	config, err := NewConfig(logger)
	if err != nil {
		handleStartupError(ctx, err)
		return
	}

	// Override with command-line flags if provided
	if *baseURLFlag != "" {
		logger.Info("Overriding Merkl API base URL with flag value")
		config.APIURL = *baseURLFlag
	}
	if *apiKeyFlag != "" {
		config.APIKey = *apiKeyFlag
	}
	if *timeoutFlag > 0 {
		config.RequestTimeout = time.Duration(*timeoutFlag) * time.Second
	}

	ctx = context.WithValue(ctx, configKey, config)

	// Validate transport flag
	if *transportFlag != "stdio" && *transportFlag != "http" {
		logger.Error("Invalid transport mode: %s. Must be 'stdio' or 'http'", *transportFlag)
		os.Exit(1)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// Create and register the Merkl tool catalog
	merklSvc, err := NewMerklServer(config, logger)
	if err != nil {
		handleStartupError(ctx, err)
		return
	}
	registerTools(mcpServer, merklSvc, logger)

	if config.APIKey != "" {
		logger.Info("Forwarding bearer token to upstream requests")
	}
	logger.Info("Upstream: %s (request timeout %s)", config.APIURL, config.RequestTimeout)

	// Start the appropriate transport based on command-line flag
	if *transportFlag == "http" {
		logger.Info("Starting Merkl MCP server with HTTP transport on %s%s", config.HTTPAddress, config.HTTPPath)
		if err := startHTTPServer(ctx, mcpServer, config, logger); err != nil {
			logger.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Info("Starting Merkl MCP server with stdio transport")
		if err := server.ServeStdio(mcpServer); err != nil {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	}
}

// wrapHandlerWithLogger creates a logging middleware around a tool handler
func wrapHandlerWithLogger(handler server.ToolHandlerFunc, toolName string, logger Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Info("Calling tool '%s'...", toolName)
		start := time.Now()

		resp, err := handler(ctx, req)

		switch {
		case err != nil:
			logger.Error("Tool '%s' failed after %s: %v", toolName, time.Since(start).Round(time.Millisecond), err)
		case resp != nil && resp.IsError:
			logger.Warn("Tool '%s' returned an error result after %s", toolName, time.Since(start).Round(time.Millisecond))
		default:
			logger.Info("Tool '%s' completed in %s", toolName, time.Since(start).Round(time.Millisecond))
		}
		return resp, err
	}
}

// handleStartupError handles initialization errors by setting up an error server
func handleStartupError(ctx context.Context, err error) {
	logger := getLoggerFromContext(ctx)
	logger.Error("Initialization error: %v", err)

	// Create MCP server in degraded mode
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	errorServer := &ErrorMerklServer{errorMessage: err.Error()}
	registerErrorTools(mcpServer, errorServer, logger)

	// Start server in degraded mode
	logger.Info("Starting Merkl MCP server in degraded mode")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("Server error in degraded mode: %v", err)
		os.Exit(1)
	}
}
