package main

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// campaignFilterQuery builds the upstream query for the shared campaign
// filter vocabulary
func campaignFilterQuery(req mcp.CallToolRequest) *Query {
	q := &Query{}
	q.AddList("chainId", extractArgumentStringList(req, "chainId"))
	q.AddList("type", extractArgumentStringList(req, "type"))
	q.AddList("status", extractArgumentStringList(req, "status"))
	q.Add("campaignId", extractArgumentString(req, "campaignId", ""))
	q.Add("opportunityId", extractArgumentString(req, "opportunityId", ""))
	q.Add("creatorAddress", extractArgumentString(req, "creatorAddress", ""))
	if v, ok := extractArgumentBoolSet(req, "test"); ok {
		q.AddBool("test", v)
	}
	if v, ok := extractArgumentBoolSet(req, "withOpportunity"); ok {
		q.AddBool("withOpportunity", v)
	}
	return q
}

// CampaignsSearchHandler handles the campaigns-search tool
func (s *MerklServer) CampaignsSearchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	q := campaignFilterQuery(req)
	if page, ok := extractArgumentNumber(req, "page"); ok {
		q.AddInt("page", int(page))
	}
	q.AddInt("items", extractArgumentInt(req, "items", 100))

	var campaigns []Campaign
	if _, err := s.client.getJSON(ctx, "/v4/campaigns", q, false, &campaigns); err != nil {
		logger.Error("campaigns-search upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}

	// Upstream's action=INVALID filter is additive, not exclusive, so
	// INVALID rows are always dropped here regardless of the filters sent.
	results := make([]CampaignResult, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Type == "INVALID" {
			continue
		}
		results = append(results, shapeCampaign(c))
	}
	logger.Debug("campaigns-search returned %d campaigns", len(results))
	return newToolResultJSON(results), nil
}

// CampaignsGetHandler handles the campaigns-get tool
func (s *MerklServer) CampaignsGetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	id := extractArgumentString(req, "id", "")
	if err := validateNumericID("id", id); err != nil {
		return createErrorResult(err.Error()), nil
	}

	var campaign Campaign
	found, err := s.client.getJSON(ctx, "/v4/campaigns/"+id, nil, true, &campaign)
	if err != nil {
		logger.Error("campaigns-get upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	if !found {
		logger.Info("Campaign %s not found", id)
		return newNotFoundResult(), nil
	}

	return newToolResultJSON(shapeCampaign(campaign)), nil
}

// CampaignsCountHandler handles the campaigns-count tool
func (s *MerklServer) CampaignsCountHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := getLoggerFromContext(ctx)

	var raw json.RawMessage
	if _, err := s.client.getJSON(ctx, "/v4/campaigns/count", campaignFilterQuery(req), false, &raw); err != nil {
		logger.Error("campaigns-count upstream call failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	count, err := decodeCount(raw)
	if err != nil {
		logger.Error("campaigns-count decode failed: %v", err)
		return createErrorResult(err.Error()), nil
	}
	return newToolResultJSON(CountResult{Count: count}), nil
}
