package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// opportunityFilterQuery builds the upstream query for the shared
// opportunity filter vocabulary. Keys are added in a fixed order; absent
// filters stay absent.
func opportunityFilterQuery(req mcp.CallToolRequest) *Query {
	q := &Query{}
	q.Add("name", extractArgumentString(req, "name", ""))
	q.Add("search", extractArgumentString(req, "search", ""))
	q.AddList("chainId", extractArgumentStringList(req, "chainId"))
	q.AddList("action", extractArgumentStringList(req, "action"))
	q.AddList("type", extractArgumentStringList(req, "type"))
	q.AddList("status", extractArgumentStringList(req, "status"))
	q.AddList("tags", extractArgumentStringList(req, "tags"))
	q.AddList("tokens", extractArgumentStringList(req, "tokens"))
	q.Add("identifier", extractArgumentString(req, "identifier", ""))
	q.AddList("mainProtocolId", extractArgumentStringList(req, "mainProtocolId"))
	if v, ok := extractArgumentBoolSet(req, "test"); ok {
		q.AddBool("test", v)
	}
	if v, ok := extractArgumentBoolSet(req, "point"); ok {
		q.AddBool("point", v)
	}
	if v, ok := extractArgumentNumber(req, "minimumTvl"); ok {
		q.AddNumber("minimumTvl", v)
	}
	if v, ok := extractArgumentNumber(req, "maximumTvl"); ok {
		q.AddNumber("maximumTvl", v)
	}
	if v, ok := extractArgumentNumber(req, "minimumApr"); ok {
		q.AddNumber("minimumApr", v)
	}
	if v, ok := extractArgumentNumber(req, "maximumApr"); ok {
		q.AddNumber("maximumApr", v)
	}
	q.Add("sort", extractArgumentString(req, "sort", ""))
	q.Add("order", extractArgumentString(req, "order", ""))
	return q
}

// OpportunitiesSearchHandler handles the opportunities-search tool
func (s *MerklServer) OpportunitiesSearchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	q := opportunityFilterQuery(req)
	if page, ok := extractArgumentNumber(req, "page"); ok {
		q.AddInt("page", int(page))
	}
	q.AddInt("items", extractArgumentInt(req, "items", 100))
	q.AddBool("campaigns", extractArgumentBool(req, "campaigns", true))

	// Ended campaigns are filtered here, not upstream
	excludeEnded := extractArgumentBool(req, "excludeEndedCampaigns", true)

	var opportunities []Opportunity
	if _, err := s.client.getJSON(ctx, "/v4/opportunities", q, false, &opportunities); err != nil {
		logger.Error("opportunities-search upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}

	now := time.Now().Unix()
	results := make([]OpportunityResult, 0, len(opportunities))
	for _, o := range opportunities {
		results = append(results, shapeOpportunity(o, excludeEnded, now))
	}
	logger.Debug("opportunities-search returned %d opportunities", len(results))
	return newToolResultJSON(results), nil
}

// OpportunitiesGetHandler handles the opportunities-get tool
func (s *MerklServer) OpportunitiesGetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	id := extractArgumentString(req, "id", "")
	if err := validateOpportunityID(id); err != nil {
		return createErrorResult(err.Error()), nil
	}

	q := &Query{}
	q.AddBool("test", extractArgumentBool(req, "test", false))
	q.AddBool("point", extractArgumentBool(req, "point", false))
	q.AddBool("campaigns", extractArgumentBool(req, "campaigns", false))
	q.AddBool("excludeSubCampaigns", extractArgumentBool(req, "excludeSubCampaigns", false))

	var opportunity Opportunity
	found, err := s.client.getJSON(ctx, "/v4/opportunities/"+id, q, true, &opportunity)
	if err != nil {
		logger.Error("opportunities-get upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if !found {
		logger.Info("Opportunity %s not found", id)
		return newNotFoundResult(), nil
	}

	// Single-entity lookups surface all campaigns, ended or not
	return newToolResultJSON(shapeOpportunity(opportunity, false, 0)), nil
}

// OpportunitiesCampaignsHandler handles the opportunities-campaigns tool
func (s *MerklServer) OpportunitiesCampaignsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	id := extractArgumentString(req, "id", "")
	if err := validateOpportunityID(id); err != nil {
		return createErrorResult(err.Error()), nil
	}

	var opportunity Opportunity
	found, err := s.client.getJSON(ctx, "/v4/opportunities/"+id+"/campaigns", nil, true, &opportunity)
	if err != nil {
		logger.Error("opportunities-campaigns upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if !found {
		logger.Info("Opportunity %s not found", id)
		return newNotFoundResult(), nil
	}

	return newToolResultJSON(shapeOpportunityCampaigns(opportunity)), nil
}

// OpportunitiesCountHandler handles the opportunities-count tool
func (s *MerklServer) OpportunitiesCountHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	var raw json.RawMessage
	if _, err := s.client.getJSON(ctx, "/v4/opportunities/count", opportunityFilterQuery(req), false, &raw); err != nil {
		logger.Error("opportunities-count upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	count, err := decodeCount(raw)
	if err != nil {
		logger.Error("opportunities-count decode failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	return newToolResultJSON(CountResult{Count: count}), nil
}

// OpportunitiesBinsAprHandler handles the opportunities-bins-apr tool
func (s *MerklServer) OpportunitiesBinsAprHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleOpportunityBins(ctx, req, "apr")
}

// OpportunitiesBinsTvlHandler handles the opportunities-bins-tvl tool
func (s *MerklServer) OpportunitiesBinsTvlHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleOpportunityBins(ctx, req, "tvl")
}

func (s *MerklServer) handleOpportunityBins(ctx context.Context, req mcp.CallToolRequest, metric string) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	var raw json.RawMessage
	if _, err := s.client.getJSON(ctx, "/v4/opportunities/bins/"+metric, opportunityFilterQuery(req), false, &raw); err != nil {
		logger.Error("opportunities-bins-%s upstream call failed: %v", metric, err)
		return createErrorResult(err.Error()), nil
	}
	bins, err := decodeBins(raw)
	if err != nil {
		logger.Error("opportunities-bins-%s decode failed: %v", metric, err)
		return createErrorResult(err.Error()), nil
	}
	if bins == nil {
		bins = []Bin{}
	}
	return newToolResultJSON(bins), nil
}

// OpportunitiesAggregateHandler handles the opportunities-aggregate tool
func (s *MerklServer) OpportunitiesAggregateHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	field := extractArgumentString(req, "field", "")
	if err := validateAggregateField(field); err != nil {
		return createErrorResult(err.Error()), nil
	}

	var raw json.RawMessage
	if _, err := s.client.getJSON(ctx, "/v4/opportunities/aggregate/"+field, opportunityFilterQuery(req), false, &raw); err != nil {
		logger.Error("opportunities-aggregate upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	buckets, err := decodeAggregate(raw)
	if err != nil {
		logger.Error("opportunities-aggregate decode failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if buckets == nil {
		buckets = []AggregateBucket{}
	}
	return newToolResultJSON(buckets), nil
}

// OpportunitiesAggregateMaxHandler handles the opportunities-aggregate-max tool
func (s *MerklServer) OpportunitiesAggregateMaxHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleOpportunityExtremum(ctx, req, "max")
}

// OpportunitiesAggregateMinHandler handles the opportunities-aggregate-min tool
func (s *MerklServer) OpportunitiesAggregateMinHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleOpportunityExtremum(ctx, req, "min")
}

func (s *MerklServer) handleOpportunityExtremum(ctx context.Context, req mcp.CallToolRequest, extremum string) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	field := extractArgumentString(req, "field", "")
	if err := validateAggregateField(field); err != nil {
		return createErrorResult(err.Error()), nil
	}

	path := fmt.Sprintf("/v4/opportunities/aggregate/%s/%s", extremum, field)
	var raw json.RawMessage
	if _, err := s.client.getJSON(ctx, path, opportunityFilterQuery(req), false, &raw); err != nil {
		logger.Error("opportunities-aggregate-%s upstream call failed: %v", extremum, err)
		return createErrorResult(err.Error()), nil
	}
	value, err := decodeExtremum(raw)
	if err != nil {
		logger.Error("opportunities-aggregate-%s decode failed: %v", extremum, err)
		return createErrorResult(err.Error()), nil
	}
	return newToolResultJSON(ExtremumResult{Field: field, Value: value}), nil
}
