package main

// MerklServer holds the upstream client and configuration shared by all
// tool handlers
type MerklServer struct {
	config *Config
	client *MerklClient
}

// Upstream entity snapshots. These mirror the subset of the Merkl v4
// payloads the tools surface; unknown upstream fields are ignored on decode.

// Chain is an upstream chain record embedded in opportunities and campaigns
type Chain struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Protocol is an upstream protocol record
type Protocol struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon,omitempty"`
	URL  string   `json:"url,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// Token is an upstream token record
type Token struct {
	ID       string   `json:"id"`
	ChainID  int64    `json:"chainId"`
	Address  string   `json:"address"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name,omitempty"`
	Decimals int      `json:"decimals"`
	Verified bool     `json:"verified,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Opportunity is an upstream incentive opportunity snapshot
type Opportunity struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ChainID      int64      `json:"chainId"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Action       string     `json:"action"`
	Identifier   string     `json:"identifier"`
	APR          *float64   `json:"apr"`
	TVL          *float64   `json:"tvl"`
	DailyRewards *float64   `json:"dailyRewards"`
	Tags         []string   `json:"tags"`
	Chain        *Chain     `json:"chain"`
	Protocol     *Protocol  `json:"protocol"`
	Tokens       []Token    `json:"tokens"`
	Campaigns    []Campaign `json:"campaigns"`
}

// Campaign is an upstream funding campaign snapshot. StartTimestamp and
// EndTimestamp are epoch seconds; the shaped results render them as
// ISO-8601 instants.
type Campaign struct {
	ID             string              `json:"id"`
	CampaignID     string              `json:"campaignId"`
	Type           string              `json:"type"`
	SubType        *int                `json:"subType"`
	ChainID        int64               `json:"chainId"`
	StartTimestamp int64               `json:"startTimestamp"`
	EndTimestamp   int64               `json:"endTimestamp"`
	APR            *float64            `json:"apr"`
	CreatorAddress string              `json:"creatorAddress"`
	CreatedAt      string              `json:"createdAt"`
	Chain          *Chain              `json:"chain"`
	Opportunity    *OpportunitySummary `json:"opportunity"`
}

// OpportunitySummary is the trimmed opportunity record embedded in
// campaign rows when withOpportunity is requested
type OpportunitySummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
	ChainID    int64  `json:"chainId"`
}

// Shaped response types returned to the MCP host.

// OpportunityResult is the shaped opportunity row surfaced by the
// opportunities-search and opportunities-get tools
type OpportunityResult struct {
	ID           string           `json:"id"`
	Name         string           `json:"name,omitempty"`
	ChainID      int64            `json:"chainId"`
	Type         string           `json:"type,omitempty"`
	Status       string           `json:"status,omitempty"`
	Action       string           `json:"action,omitempty"`
	Identifier   string           `json:"identifier,omitempty"`
	APR          *float64         `json:"apr,omitempty"`
	TVL          *float64         `json:"tvl,omitempty"`
	DailyRewards *float64         `json:"dailyRewards,omitempty"`
	Chain        string           `json:"chain,omitempty"`
	Protocol     string           `json:"protocol,omitempty"`
	Tokens       []string         `json:"tokens,omitempty"`
	Link         string           `json:"link,omitempty"`
	Campaigns    []CampaignResult `json:"campaigns,omitempty"`
}

// OpportunityCampaignsResult is the narrower shape returned by
// opportunities-campaigns
type OpportunityCampaignsResult struct {
	ID        string           `json:"id"`
	ChainID   int64            `json:"chainId"`
	Type      string           `json:"type,omitempty"`
	Name      string           `json:"name,omitempty"`
	Campaigns []CampaignResult `json:"campaigns"`
}

// CampaignResult is the shaped campaign row. StartTime and EndTime are
// ISO-8601 instants derived from the upstream epoch seconds.
type CampaignResult struct {
	ID             string   `json:"id"`
	CampaignID     string   `json:"campaignId,omitempty"`
	Type           string   `json:"type,omitempty"`
	SubType        *int     `json:"subType,omitempty"`
	ChainID        int64    `json:"chainId,omitempty"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	APR            *float64 `json:"apr,omitempty"`
	CreatorAddress string   `json:"creatorAddress,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	Opportunity    string   `json:"opportunity,omitempty"`
	Link           string   `json:"link,omitempty"`
}

// CountResult wraps the integer returned by the count tools
type CountResult struct {
	Count int64 `json:"count"`
}

// Bin is one labeled bucket of a bins histogram
type Bin struct {
	Label string  `json:"label"`
	Count float64 `json:"count"`
}

// AggregateBucket is one distinct-value bucket of an aggregate grouping
type AggregateBucket struct {
	Value string  `json:"value"`
	Count float64 `json:"count"`
}

// ExtremumResult is the single nullable numeric returned by
// aggregate-max and aggregate-min
type ExtremumResult struct {
	Field string   `json:"field"`
	Value *float64 `json:"value"`
}
