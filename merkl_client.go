package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MerklClient issues GET requests against the Merkl v4 API. It is built
// from explicit configuration values so tests can point it at a mock
// upstream; it never reads process-wide state.
type MerklClient struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     Logger
}

// NewMerklClient creates a client for the configured upstream
func NewMerklClient(config *Config, logger Logger) *MerklClient {
	return &MerklClient{
		baseURL:    config.APIURL,
		apiKey:     config.APIKey,
		timeout:    config.RequestTimeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// getJSON performs exactly one GET against path with the encoded query and
// decodes the JSON body into out. The bool result reports whether the
// entity was found: it is false only when allow404 is set and upstream
// answered 404, which is the not-found sentinel rather than an error.
//
// Every call owns one timer for the request timeout, released on all exit
// paths. There is no retry; a failed call fails the whole operation.
func (c *MerklClient) getJSON(ctx context.Context, path string, query *Query, allow404 bool, out interface{}) (bool, error) {
	requestURL := c.baseURL + path
	if query != nil {
		requestURL += query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("GET %s", requestURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isDeadlineExceeded(err) {
			return false, &RequestTimeoutError{Timeout: c.timeout}
		}
		return false, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && allow404 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode upstream response: %w", err)
		}
	}
	return true, nil
}

// Decoding helpers for the polymorphic count/bins/aggregate payloads.
// Upstream serves these either in bare or wrapped form depending on the
// endpoint, so decoding is tolerant of both.

// decodeCount accepts a bare number or a {"count": n} object
func decodeCount(raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return int64(n), nil
	}
	var wrapped struct {
		Count float64 `json:"count"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return 0, fmt.Errorf("unexpected count payload: %w", err)
	}
	return int64(wrapped.Count), nil
}

// decodeBins accepts either an array of {label, count} objects or a
// label-to-count object, preserving document order in the latter case
func decodeBins(raw json.RawMessage) ([]Bin, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty bins payload")
	}
	if trimmed[0] == '[' {
		var bins []Bin
		if err := json.Unmarshal(trimmed, &bins); err != nil {
			return nil, fmt.Errorf("unexpected bins payload: %w", err)
		}
		return bins, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, fmt.Errorf("unexpected bins payload: %w", err)
	}
	var bins []Bin
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("unexpected bins payload: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected bins payload: non-string key")
		}
		var count float64
		if err := dec.Decode(&count); err != nil {
			return nil, fmt.Errorf("unexpected bins payload: %w", err)
		}
		bins = append(bins, Bin{Label: label, Count: count})
	}
	return bins, nil
}

// decodeAggregate accepts either an array of {value, count} objects or a
// value-to-count object, preserving document order in the latter case
func decodeAggregate(raw json.RawMessage) ([]AggregateBucket, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty aggregate payload")
	}
	if trimmed[0] == '[' {
		var buckets []AggregateBucket
		if err := json.Unmarshal(trimmed, &buckets); err != nil {
			return nil, fmt.Errorf("unexpected aggregate payload: %w", err)
		}
		return buckets, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("unexpected aggregate payload: %w", err)
	}
	var buckets []AggregateBucket
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("unexpected aggregate payload: %w", err)
		}
		value, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected aggregate payload: non-string key")
		}
		var count float64
		if err := dec.Decode(&count); err != nil {
			return nil, fmt.Errorf("unexpected aggregate payload: %w", err)
		}
		buckets = append(buckets, AggregateBucket{Value: value, Count: count})
	}
	return buckets, nil
}

// decodeExtremum accepts null, a bare number, or a single-key object
// wrapping the number
func decodeExtremum(raw json.RawMessage) (*float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return &n, nil
	}
	var wrapped map[string]*float64
	if err := json.Unmarshal(trimmed, &wrapped); err == nil && len(wrapped) == 1 {
		for _, v := range wrapped {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unexpected aggregate extremum payload")
}
