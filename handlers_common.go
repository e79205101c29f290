package main

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// extractArgumentString extracts a string argument from the request parameters
func extractArgumentString(req mcp.CallToolRequest, name string, defaultValue string) string {
	args := req.GetArguments()
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return defaultValue
}

// extractArgumentBool extracts a boolean argument from the request parameters
func extractArgumentBool(req mcp.CallToolRequest, name string, defaultValue bool) bool {
	args := req.GetArguments()
	if val, ok := args[name].(bool); ok {
		return val
	}
	return defaultValue
}

// extractArgumentBoolSet reports the boolean argument and whether the
// caller actually supplied it; filters that are absent must stay absent
// from the upstream query
func extractArgumentBoolSet(req mcp.CallToolRequest, name string) (bool, bool) {
	val, ok := req.GetArguments()[name].(bool)
	return val, ok
}

// extractArgumentNumber extracts a numeric argument, reporting whether it
// was supplied. Zero is a valid value, so presence matters.
func extractArgumentNumber(req mcp.CallToolRequest, name string) (float64, bool) {
	val, ok := req.GetArguments()[name].(float64)
	return val, ok
}

// extractArgumentInt extracts an integer argument with a default fallback
func extractArgumentInt(req mcp.CallToolRequest, name string, defaultValue int) int {
	if val, ok := req.GetArguments()[name].(float64); ok {
		return int(val)
	}
	return defaultValue
}

// extractArgumentStringList extracts a list-valued argument. JSON arrays
// and pre-joined comma strings are both accepted; ["A","B"] and "A,B"
// encode to the same query value.
func extractArgumentStringList(req mcp.CallToolRequest, name string) []string {
	args := req.GetArguments()
	switch val := args[name].(type) {
	case []interface{}:
		var result []string
		for _, item := range val {
			switch v := item.(type) {
			case string:
				if v != "" {
					result = append(result, v)
				}
			case float64:
				result = append(result, formatNumber(v))
			case bool:
				result = append(result, strconv.FormatBool(v))
			}
		}
		return result
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	}
	return nil
}

// Identifier shapes accepted by the single-entity lookups. Malformed ids
// fail before any upstream request is issued.
var (
	opportunityIDPattern  = regexp.MustCompile(`^([0-9]{1,20}|[0-9]+-[A-Z0-9]+-0x[a-fA-F0-9]+)$`)
	numericIDPattern      = regexp.MustCompile(`^[0-9]{1,20}$`)
	protocolIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,63}$`)
	aggregateFieldPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{0,63}$`)
)

// validateOpportunityID accepts either a bare decimal id or the composite
// "<chainId>-<TYPE>-<0xaddress>" form
func validateOpportunityID(id string) error {
	if !opportunityIDPattern.MatchString(id) {
		return &ValidationError{Param: "id", Message: `must be a decimal id or "<chainId>-<TYPE>-0x<address>"`}
	}
	return nil
}

// validateNumericID accepts a non-negative decimal integer string
func validateNumericID(param, id string) error {
	if !numericIDPattern.MatchString(id) {
		return &ValidationError{Param: param, Message: "must be a non-negative decimal integer string"}
	}
	return nil
}

// validateProtocolID accepts a protocol slug such as "uniswap-v3"
func validateProtocolID(id string) error {
	if !protocolIDPattern.MatchString(id) {
		return &ValidationError{Param: "id", Message: "must be an alphanumeric protocol slug"}
	}
	return nil
}

// validateAggregateField keeps the aggregate field safe to splice into the
// upstream path
func validateAggregateField(field string) error {
	if !aggregateFieldPattern.MatchString(field) {
		return &ValidationError{Param: "field", Message: "must be an alphanumeric field name"}
	}
	return nil
}

// createErrorResult creates a standardized error result for mcp.CallToolResult
func createErrorResult(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// newToolResultJSON returns both renderings of a result: the serialized
// JSON as text content and the value itself as structured content
func newToolResultJSON(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return createErrorResult(fmt.Sprintf("Failed to serialize response: %v", err))
	}
	result := mcp.NewToolResultText(string(data))
	result.StructuredContent = v
	return result
}

// newNotFoundResult is the sentinel returned by the allow404 single-entity
// lookups; per contract it is a null value, not an error
func newNotFoundResult() *mcp.CallToolResult {
	return newToolResultJSON(nil)
}
