package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default configuration values
const (
	defaultAPIURL         = "https://api.merkl.xyz"
	defaultRequestTimeout = 20 * time.Second
	defaultHTTPAddress    = ":8080"
	defaultHTTPPath       = "/mcp"
	defaultHTTPTimeout    = 30 * time.Second
)

// Config holds all configuration parameters for the application
type Config struct {
	// Merkl API settings
	APIURL string
	APIKey string // optional bearer token forwarded upstream

	// Upstream request timeout
	RequestTimeout time.Duration

	// HTTP transport settings
	HTTPAddress   string
	HTTPPath      string
	HTTPHeartbeat time.Duration // 0 disables the heartbeat
	HTTPStateless bool
	HTTPTimeout   time.Duration // graceful shutdown budget
}

// NewConfig creates a new configuration from environment variables
func NewConfig(logger Logger) (*Config, error) {
	// Get Merkl API base URL - optional with default
	apiURL := os.Getenv("MERKL_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	apiURL = strings.TrimSuffix(apiURL, "/")
	parsed, err := url.Parse(apiURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid MERKL_API_URL %q: must be an absolute http(s) URL", apiURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid MERKL_API_URL scheme %q: must be http or https", parsed.Scheme)
	}

	// The API key is optional; without it requests go out unauthenticated
	apiKey := os.Getenv("MERKL_API_KEY")
	if apiKey == "" {
		logger.Debug("No MERKL_API_KEY set, upstream requests will not carry an Authorization header")
	}

	// Upstream request timeout in seconds
	timeout := defaultRequestTimeout
	if timeoutStr := os.Getenv("MERKL_TIMEOUT"); timeoutStr != "" {
		timeoutSec, err := strconv.Atoi(timeoutStr)
		if err != nil || timeoutSec <= 0 {
			return nil, fmt.Errorf("invalid MERKL_TIMEOUT %q: must be a positive number of seconds", timeoutStr)
		}
		timeout = time.Duration(timeoutSec) * time.Second
	}

	// HTTP transport settings - only used with -transport http
	httpAddress := os.Getenv("MERKL_HTTP_ADDRESS")
	if httpAddress == "" {
		httpAddress = defaultHTTPAddress
	}

	httpPath := os.Getenv("MERKL_HTTP_PATH")
	if httpPath == "" {
		httpPath = defaultHTTPPath
	}
	if !strings.HasPrefix(httpPath, "/") {
		return nil, fmt.Errorf("invalid MERKL_HTTP_PATH %q: must start with '/'", httpPath)
	}

	var httpHeartbeat time.Duration
	if heartbeatStr := os.Getenv("MERKL_HTTP_HEARTBEAT"); heartbeatStr != "" {
		heartbeatSec, err := strconv.Atoi(heartbeatStr)
		if err != nil || heartbeatSec < 0 {
			return nil, fmt.Errorf("invalid MERKL_HTTP_HEARTBEAT %q: must be a non-negative number of seconds", heartbeatStr)
		}
		httpHeartbeat = time.Duration(heartbeatSec) * time.Second
	}

	httpStateless := false
	if statelessStr := os.Getenv("MERKL_HTTP_STATELESS"); statelessStr != "" {
		httpStateless = strings.EqualFold(statelessStr, "true")
	}

	httpTimeout := defaultHTTPTimeout
	if timeoutStr := os.Getenv("MERKL_HTTP_TIMEOUT"); timeoutStr != "" {
		if timeoutSec, err := strconv.Atoi(timeoutStr); err == nil && timeoutSec > 0 {
			httpTimeout = time.Duration(timeoutSec) * time.Second
		}
	}

	return &Config{
		APIURL:         apiURL,
		APIKey:         apiKey,
		RequestTimeout: timeout,
		HTTPAddress:    httpAddress,
		HTTPPath:       httpPath,
		HTTPHeartbeat:  httpHeartbeat,
		HTTPStateless:  httpStateless,
		HTTPTimeout:    httpTimeout,
	}, nil
}
