// backend/src/models/fund.go
package models

// TaxCategory is the closed set of tax-treatment classifications a money
// market fund can fall into. Sweep and ETF behave exactly like Taxable for
// the tax math but are tracked separately so the UI can group them apart.
type TaxCategory string

const (
	CategoryTaxable        TaxCategory = "taxable"
	CategoryTreasury       TaxCategory = "treasury"
	CategoryMunicipal      TaxCategory = "municipal"
	CategoryStateMunicipal TaxCategory = "state_municipal"
	CategorySweep          TaxCategory = "sweep"
	CategoryETF            TaxCategory = "etf"
)

// TaxTreatment records which levels of income tax apply to a category's
// distributions.
type TaxTreatment struct {
	FederalTaxable bool
	StateTaxable   bool
}

// treatmentByCategory is static: a category always implies the same treatment.
var treatmentByCategory = map[TaxCategory]TaxTreatment{
	CategoryTaxable:        {FederalTaxable: true, StateTaxable: true},
	CategorySweep:          {FederalTaxable: true, StateTaxable: true},
	CategoryETF:            {FederalTaxable: true, StateTaxable: true},
	CategoryTreasury:       {FederalTaxable: true, StateTaxable: false},
	CategoryMunicipal:      {FederalTaxable: false, StateTaxable: true},
	CategoryStateMunicipal: {FederalTaxable: false, StateTaxable: false},
}

// Treatment returns the tax treatment for the category. Unknown values fall
// back to the fully taxable treatment, mirroring the categorizer's default.
func (c TaxCategory) Treatment() TaxTreatment {
	if t, ok := treatmentByCategory[c]; ok {
		return t
	}
	return treatmentByCategory[CategoryTaxable]
}

// FullyTaxableEquivalent reports whether the category's yield already IS its
// tax-equivalent yield (no gross-up division is applied for these).
func (c TaxCategory) FullyTaxableEquivalent() bool {
	switch c {
	case CategoryTaxable, CategorySweep, CategoryETF:
		return true
	}
	return false
}

// TaxDescription is the human-readable treatment summary used in the
// recommendation explanation.
func (c TaxCategory) TaxDescription() string {
	switch c {
	case CategoryTreasury:
		return "federally taxable but exempt from state income tax"
	case CategoryMunicipal:
		return "exempt from federal income tax"
	case CategoryStateMunicipal:
		return "exempt from both federal and state income tax"
	default:
		return "fully taxable at your federal and state rates"
	}
}

// FundRecord is one fund's snapshot at one observation date, as parsed from
// the source CSV feed. Yields are percentage points (4.52 means 4.52%).
type FundRecord struct {
	FundName          string  `json:"fund_name"`
	Ticker            string  `json:"ticker"`
	RawCategory       string  `json:"raw_category"`
	GrossYield        float64 `json:"gross_yield"`
	ExpenseRatio      float64 `json:"expense_ratio"`
	MinimumInvestment string  `json:"minimum_investment"`
	EligibleInvestors string  `json:"eligible_investors"`
}

// NetYield is the gross 7-day yield minus the expense ratio. It is not
// clamped at zero: an expense ratio above the gross yield is a real state.
func (f FundRecord) NetYield() float64 {
	return f.GrossYield - f.ExpenseRatio
}
