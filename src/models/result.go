// backend/src/models/result.go
package models

// EnrichedFundResult is a FundRecord with every derived attribute populated
// for a specific user tax profile. Rates are fractions (0.24 = 24%); yields
// stay in percentage points.
type EnrichedFundResult struct {
	FundRecord
	Category           TaxCategory `json:"category"`
	FundCategory       string      `json:"fund_category"` // display label, independent of Category
	NetYield           float64     `json:"net_yield"`
	EffectiveTaxRate   float64     `json:"effective_tax_rate"`
	TaxEquivalentYield float64     `json:"tax_equivalent_yield"`
	AnnualReturn10K    float64     `json:"annual_return_10k"`
}

// Recommendation is the top-ranked fund plus the explanation shown to the
// user.
type Recommendation struct {
	Fund        EnrichedFundResult `json:"fund"`
	Explanation string             `json:"explanation"`
}
