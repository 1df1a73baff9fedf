package types

import "github.com/vnmarket/vnstock-mcp/internal/vnstock"

// ListCompaniesResult reports the filtered listing. TotalCompanies counts all
// matches; Companies is capped, with Displayed telling how many survived.
type ListCompaniesResult struct {
	Exchange       string            `json:"exchange"`
	Sector         string            `json:"sector,omitempty"`
	TotalCompanies int               `json:"total_companies"`
	Displayed      int               `json:"displayed"`
	Companies      []vnstock.Company `json:"companies"`
}

// SearchResult reports a symbol/name search over the listing.
type SearchResult struct {
	Query        string            `json:"query"`
	TotalMatches int               `json:"total_matches"`
	Limit        int               `json:"limit"`
	Matches      []vnstock.Company `json:"matches"`
}
