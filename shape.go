package main

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// dashboardBaseURL is the public Merkl dashboard used for derived links
const dashboardBaseURL = "https://app.merkl.xyz"

// formatEpochSeconds renders an upstream epoch-seconds instant as an
// ISO-8601 string with millisecond precision. Zero renders as the Unix
// epoch, matching the upstream dashboard's own formatting.
func formatEpochSeconds(t int64) string {
	return time.Unix(t, 0).UTC().Format("2006-01-02T15:04:05.000Z")
}

// lowerWords lower-cases a display name word by word, splitting on
// non-alphanumeric runs, case boundaries, and letter/digit transitions.
// "Polygon zkEVM" becomes "polygon zk evm" and "BOB" becomes "bob"; a
// straight strings.ToLower would get the first one wrong.
func lowerWords(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, " ")
}

// splitWords breaks a display name into its word runs
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsDigit(r):
			if len(cur) > 0 && !unicode.IsDigit(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		case unicode.IsUpper(r):
			if len(cur) > 0 && !unicode.IsUpper(cur[len(cur)-1]) {
				flush()
			} else if len(cur) > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				// end of an acronym run: "EVMChain" -> "EVM", "Chain"
				flush()
			}
			cur = append(cur, r)
		default: // lower-case letter
			if len(cur) > 0 && unicode.IsDigit(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// opportunityLink synthesizes the dashboard URL for an opportunity.
// Returns "" when any component is missing.
func opportunityLink(chainName, opportunityType, identifier string) string {
	if chainName == "" || opportunityType == "" || identifier == "" {
		return ""
	}
	return fmt.Sprintf("%s/opportunities/%s/%s/%s", dashboardBaseURL, lowerWords(chainName), opportunityType, identifier)
}

// shapeOpportunity converts an upstream opportunity into its result shape.
// When excludeEnded is true, campaigns whose end instant is before now are
// dropped from the sub-list.
func shapeOpportunity(o Opportunity, excludeEnded bool, now int64) OpportunityResult {
	result := OpportunityResult{
		ID:           o.ID,
		Name:         o.Name,
		ChainID:      o.ChainID,
		Type:         o.Type,
		Status:       o.Status,
		Action:       o.Action,
		Identifier:   o.Identifier,
		APR:          o.APR,
		TVL:          o.TVL,
		DailyRewards: o.DailyRewards,
	}
	if o.Chain != nil {
		result.Chain = o.Chain.Name
		result.Link = opportunityLink(o.Chain.Name, o.Type, o.Identifier)
	}
	if o.Protocol != nil {
		result.Protocol = o.Protocol.Name
	}
	for _, token := range o.Tokens {
		result.Tokens = append(result.Tokens, token.Symbol)
	}
	for _, c := range o.Campaigns {
		if excludeEnded && c.EndTimestamp < now {
			continue
		}
		result.Campaigns = append(result.Campaigns, shapeCampaign(c))
	}
	return result
}

// shapeOpportunityCampaigns converts an upstream opportunity into the
// narrower shape returned by opportunities-campaigns. Ended campaigns are
// kept; only opportunities-search filters them.
func shapeOpportunityCampaigns(o Opportunity) OpportunityCampaignsResult {
	result := OpportunityCampaignsResult{
		ID:        o.ID,
		ChainID:   o.ChainID,
		Type:      o.Type,
		Name:      o.Name,
		Campaigns: []CampaignResult{},
	}
	for _, c := range o.Campaigns {
		result.Campaigns = append(result.Campaigns, shapeCampaign(c))
	}
	return result
}

// shapeCampaign converts an upstream campaign into its result shape. The
// dashboard link needs the embedded opportunity; rows fetched without one
// get no link.
func shapeCampaign(c Campaign) CampaignResult {
	result := CampaignResult{
		ID:             c.ID,
		CampaignID:     c.CampaignID,
		Type:           c.Type,
		SubType:        c.SubType,
		ChainID:        c.ChainID,
		StartTime:      formatEpochSeconds(c.StartTimestamp),
		EndTime:        formatEpochSeconds(c.EndTimestamp),
		APR:            c.APR,
		CreatorAddress: c.CreatorAddress,
		CreatedAt:      c.CreatedAt,
	}
	if c.Opportunity != nil {
		result.Opportunity = c.Opportunity.Name
		if c.Chain != nil {
			result.Link = opportunityLink(c.Chain.Name, c.Opportunity.Type, c.Opportunity.Identifier)
		}
	}
	return result
}
