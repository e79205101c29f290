package main

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the Merkl MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

// opportunityFilterOptions is the filter vocabulary shared by the
// opportunity search/count/bins/aggregate tools
func opportunityFilterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name", mcp.Description("Filter by opportunity name")),
		mcp.WithString("search", mcp.Description("Free-text search across opportunity names and tokens")),
		mcp.WithArray("chainId", mcp.Description("Filter by chain ids (e.g. [\"1\", \"42161\"]). A comma-joined string is also accepted.")),
		mcp.WithArray("action", mcp.Description("Filter by action types: POOL, HOLD, DROP, LEND, BORROW, LONG, SHORT, SWAP, INVALID")),
		mcp.WithArray("type", mcp.Description("Filter by campaign types backing the opportunity (e.g. [\"CLAMM\", \"ERC20\"])")),
		mcp.WithArray("status", mcp.Description("Filter by status: LIVE, PAST, SOON")),
		mcp.WithArray("tags", mcp.Description("Filter by opportunity tags")),
		mcp.WithArray("tokens", mcp.Description("Filter by reward or underlying token symbols")),
		mcp.WithString("identifier", mcp.Description("Filter by the on-chain identifier (e.g. a pool address)")),
		mcp.WithArray("mainProtocolId", mcp.Description("Filter by main protocol ids (e.g. [\"uniswap-v3\"])")),
		mcp.WithBoolean("test", mcp.Description("Include test opportunities")),
		mcp.WithBoolean("point", mcp.Description("Include point-earning opportunities")),
		mcp.WithNumber("minimumTvl", mcp.Description("Minimum TVL in USD (0 is a valid bound)"), mcp.Min(0)),
		mcp.WithNumber("maximumTvl", mcp.Description("Maximum TVL in USD"), mcp.Min(0)),
		mcp.WithNumber("minimumApr", mcp.Description("Minimum APR in percent (0 is a valid bound)"), mcp.Min(0)),
		mcp.WithNumber("maximumApr", mcp.Description("Maximum APR in percent"), mcp.Min(0)),
		mcp.WithString("sort", mcp.Description("Sort field"), mcp.Enum("apr", "tvl", "rewards")),
		mcp.WithString("order", mcp.Description("Sort order"), mcp.Enum("asc", "desc")),
	}
}

// campaignFilterOptions is the filter vocabulary shared by the campaign
// search and count tools
func campaignFilterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithArray("chainId", mcp.Description("Filter by chain ids. A comma-joined string is also accepted.")),
		mcp.WithArray("type", mcp.Description("Filter by campaign types (e.g. [\"CLAMM\"])")),
		mcp.WithArray("status", mcp.Description("Filter by status: LIVE, PAST, SOON")),
		mcp.WithString("campaignId", mcp.Description("Filter by the cross-chain campaign hash (0x...)")),
		mcp.WithString("opportunityId", mcp.Description("Filter by the owning opportunity id")),
		mcp.WithString("creatorAddress", mcp.Description("Filter by the campaign creator's address")),
		mcp.WithBoolean("test", mcp.Description("Include test campaigns")),
		mcp.WithBoolean("withOpportunity", mcp.Description("Embed the owning opportunity in each row (needed for dashboard links)")),
	}
}

func paginationOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("Page number, starting at 0"), mcp.Min(0)),
		mcp.WithNumber("items", mcp.Description("Number of items per page (default 100)"), mcp.Min(1)),
	}
}

func newTool(name string, base []mcp.ToolOption, extra ...[]mcp.ToolOption) mcp.Tool {
	opts := base
	for _, group := range extra {
		opts = append(opts, group...)
	}
	return mcp.NewTool(name, opts...)
}

// OpportunitiesSearchTool defines the opportunities-search tool specification
var OpportunitiesSearchTool = newTool("opportunities-search",
	[]mcp.ToolOption{
		mcp.WithDescription(
			"Search Merkl incentive opportunities. Returns matching opportunities with APR, TVL, " +
				"daily rewards, a dashboard link, and their (optionally end-date-filtered) campaigns."),
	},
	opportunityFilterOptions(),
	paginationOptions(),
	[]mcp.ToolOption{
		mcp.WithBoolean("campaigns", mcp.Description("Embed campaigns in each opportunity (default true)")),
		mcp.WithBoolean("excludeEndedCampaigns", mcp.Description("Drop campaigns that have already ended from the embedded list (default true)")),
	},
)

// OpportunitiesGetTool defines the opportunities-get tool specification
var OpportunitiesGetTool = mcp.NewTool("opportunities-get",
	mcp.WithDescription(
		"Get a single Merkl opportunity by id. The id is either a decimal id or the composite "+
			"\"<chainId>-<TYPE>-0x<address>\" form. Returns null when the opportunity does not exist."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Opportunity id: decimal (e.g. \"12345\") or composite (e.g. \"1-UNISWAP-0xabc...\")"),
		mcp.Pattern(`^([0-9]{1,20}|[0-9]+-[A-Z0-9]+-0x[a-fA-F0-9]+)$`)),
	mcp.WithBoolean("test", mcp.Description("Include test data (default false)")),
	mcp.WithBoolean("point", mcp.Description("Include point data (default false)")),
	mcp.WithBoolean("campaigns", mcp.Description("Embed campaigns (default false)")),
	mcp.WithBoolean("excludeSubCampaigns", mcp.Description("Exclude sub-campaigns (default false)")),
)

// OpportunitiesCampaignsTool defines the opportunities-campaigns tool specification
var OpportunitiesCampaignsTool = mcp.NewTool("opportunities-campaigns",
	mcp.WithDescription(
		"Get the campaigns of a single Merkl opportunity by id. "+
			"Returns a narrow opportunity record with its campaign list, or null when it does not exist."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Opportunity id: decimal or composite \"<chainId>-<TYPE>-0x<address>\""),
		mcp.Pattern(`^([0-9]{1,20}|[0-9]+-[A-Z0-9]+-0x[a-fA-F0-9]+)$`)),
)

// OpportunitiesCountTool defines the opportunities-count tool specification
var OpportunitiesCountTool = newTool("opportunities-count",
	[]mcp.ToolOption{
		mcp.WithDescription("Count Merkl opportunities matching the given filters."),
	},
	opportunityFilterOptions(),
)

// OpportunitiesBinsAprTool defines the opportunities-bins-apr tool specification
var OpportunitiesBinsAprTool = newTool("opportunities-bins-apr",
	[]mcp.ToolOption{
		mcp.WithDescription("Histogram of matching opportunities bucketed by APR range. Returns labeled buckets with counts."),
	},
	opportunityFilterOptions(),
)

// OpportunitiesBinsTvlTool defines the opportunities-bins-tvl tool specification
var OpportunitiesBinsTvlTool = newTool("opportunities-bins-tvl",
	[]mcp.ToolOption{
		mcp.WithDescription("Histogram of matching opportunities bucketed by TVL range. Returns labeled buckets with counts."),
	},
	opportunityFilterOptions(),
)

// OpportunitiesAggregateTool defines the opportunities-aggregate tool specification
var OpportunitiesAggregateTool = newTool("opportunities-aggregate",
	[]mcp.ToolOption{
		mcp.WithDescription("Group matching opportunities by a field's distinct values. Returns one bucket per value with a count."),
		mcp.WithString("field", mcp.Required(),
			mcp.Description("Field to group by (e.g. \"chainId\", \"action\", \"status\")"),
			mcp.Pattern(`^[a-zA-Z][a-zA-Z0-9]{0,63}$`)),
	},
	opportunityFilterOptions(),
)

// OpportunitiesAggregateMaxTool defines the opportunities-aggregate-max tool specification
var OpportunitiesAggregateMaxTool = newTool("opportunities-aggregate-max",
	[]mcp.ToolOption{
		mcp.WithDescription("Maximum value of a numeric field across matching opportunities. Returns null when nothing matches."),
		mcp.WithString("field", mcp.Required(),
			mcp.Description("Numeric field to take the maximum of (e.g. \"apr\", \"tvl\")"),
			mcp.Pattern(`^[a-zA-Z][a-zA-Z0-9]{0,63}$`)),
	},
	opportunityFilterOptions(),
)

// OpportunitiesAggregateMinTool defines the opportunities-aggregate-min tool specification
var OpportunitiesAggregateMinTool = newTool("opportunities-aggregate-min",
	[]mcp.ToolOption{
		mcp.WithDescription("Minimum value of a numeric field across matching opportunities. Returns null when nothing matches."),
		mcp.WithString("field", mcp.Required(),
			mcp.Description("Numeric field to take the minimum of (e.g. \"apr\", \"tvl\")"),
			mcp.Pattern(`^[a-zA-Z][a-zA-Z0-9]{0,63}$`)),
	},
	opportunityFilterOptions(),
)

// CampaignsSearchTool defines the campaigns-search tool specification
var CampaignsSearchTool = newTool("campaigns-search",
	[]mcp.ToolOption{
		mcp.WithDescription(
			"Search Merkl campaigns. Returns matching campaigns with ISO-8601 start/end instants " +
				"and a dashboard link when the owning opportunity is embedded."),
	},
	campaignFilterOptions(),
	paginationOptions(),
)

// CampaignsGetTool defines the campaigns-get tool specification
var CampaignsGetTool = mcp.NewTool("campaigns-get",
	mcp.WithDescription("Get a single Merkl campaign by id. Returns null when the campaign does not exist."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Campaign id as a decimal integer string"),
		mcp.Pattern(`^[0-9]{1,20}$`)),
)

// CampaignsCountTool defines the campaigns-count tool specification
var CampaignsCountTool = newTool("campaigns-count",
	[]mcp.ToolOption{
		mcp.WithDescription("Count Merkl campaigns matching the given filters."),
	},
	campaignFilterOptions(),
)

// ProtocolsSearchTool defines the protocols-search tool specification
var ProtocolsSearchTool = newTool("protocols-search",
	[]mcp.ToolOption{
		mcp.WithDescription("Search protocols known to Merkl. Returns protocol ids, names and tags."),
		mcp.WithString("id", mcp.Description("Filter by protocol id (slug, e.g. \"uniswap-v3\")")),
		mcp.WithString("name", mcp.Description("Filter by protocol name")),
		mcp.WithArray("tags", mcp.Description("Filter by protocol tags")),
	},
	paginationOptions(),
)

// ProtocolsGetTool defines the protocols-get tool specification
var ProtocolsGetTool = mcp.NewTool("protocols-get",
	mcp.WithDescription("Get a single protocol by its slug id. Returns null when the protocol does not exist."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Protocol slug (e.g. \"uniswap-v3\")"),
		mcp.Pattern(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,63}$`)),
)

// ChainsSearchTool defines the chains-search tool specification
var ChainsSearchTool = mcp.NewTool("chains-search",
	mcp.WithDescription("List chains supported by Merkl, optionally filtered by name."),
	mcp.WithString("search", mcp.Description("Filter by chain name substring")),
)

// ChainsGetTool defines the chains-get tool specification
var ChainsGetTool = mcp.NewTool("chains-get",
	mcp.WithDescription("Get a single chain by its numeric id. Returns null when the chain is not supported."),
	mcp.WithString("chainId", mcp.Required(),
		mcp.Description("Chain id as a decimal integer string (e.g. \"42161\")"),
		mcp.Pattern(`^[0-9]{1,20}$`)),
)

// TokensSearchTool defines the tokens-search tool specification
var TokensSearchTool = newTool("tokens-search",
	[]mcp.ToolOption{
		mcp.WithDescription("Search tokens known to Merkl by chain, address, or symbol."),
		mcp.WithArray("chainId", mcp.Description("Filter by chain ids. A comma-joined string is also accepted.")),
		mcp.WithString("address", mcp.Description("Filter by token contract address")),
		mcp.WithString("symbol", mcp.Description("Filter by token symbol (e.g. \"USDC\")")),
	},
	paginationOptions(),
)

// allTools lists every tool exposed by this server, in registration order
var allTools = []mcp.Tool{
	OpportunitiesSearchTool,
	OpportunitiesGetTool,
	OpportunitiesCampaignsTool,
	OpportunitiesCountTool,
	OpportunitiesBinsAprTool,
	OpportunitiesBinsTvlTool,
	OpportunitiesAggregateTool,
	OpportunitiesAggregateMaxTool,
	OpportunitiesAggregateMinTool,
	CampaignsSearchTool,
	CampaignsGetTool,
	CampaignsCountTool,
	ProtocolsSearchTool,
	ProtocolsGetTool,
	ChainsSearchTool,
	ChainsGetTool,
	TokensSearchTool,
}
