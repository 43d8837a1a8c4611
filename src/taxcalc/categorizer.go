// backend/src/taxcalc/categorizer.go
package taxcalc

import (
	"strings"

	"github.com/username/yieldvisor/src/models"
)

// CategorizeFund classifies a fund into the tax-math category. The declared
// category column is authoritative when present; when it is missing or
// unrecognized the fund name is analysed instead, since names reliably
// encode Treasury/Municipal/state-specific status by naming convention.
// First match wins; anything unmatched is Taxable, so classification is
// total.
func CategorizeFund(fund models.FundRecord) models.TaxCategory {
	category := strings.ToLower(fund.RawCategory)
	name := strings.ToLower(fund.FundName)

	switch {
	case strings.Contains(category, "sweep"):
		return models.CategorySweep
	case strings.Contains(category, "etf"):
		return models.CategoryETF
	case strings.Contains(category, "treasury"):
		return models.CategoryTreasury
	case strings.Contains(category, "tax-exempt"):
		return models.CategoryMunicipal
	case strings.Contains(category, "state-specific"), strings.Contains(category, "state municipal"):
		return models.CategoryStateMunicipal
	case strings.Contains(category, "taxable"):
		return models.CategoryTaxable
	}

	// Declared category absent or unrecognized: fall back to the name.
	switch {
	case strings.Contains(name, "etf"):
		return models.CategoryETF
	case strings.Contains(name, "sweep"):
		return models.CategorySweep
	case strings.Contains(name, "treasury"):
		return models.CategoryTreasury
	case strings.Contains(name, "tax-exempt"), strings.Contains(name, "municipal"):
		if strings.Contains(name, "california") || strings.Contains(name, "new york") {
			return models.CategoryStateMunicipal
		}
		return models.CategoryMunicipal
	}

	return models.CategoryTaxable
}

// Display labels for DisplayCategory. These are coarser than TaxCategory
// and ordered differently; they drive the human-readable grouping and the
// chart buckets, never the tax formula.
const (
	DisplayStateMunicipal = "State Municipal"
	DisplayMunicipal      = "Municipal"
	DisplayTreasury       = "Treasury"
	DisplayGovernment     = "Government"
	DisplayPrime          = "Prime"
	DisplayTaxable        = "Taxable"
)

// DisplayCategory classifies a fund for display and chart bucketing. It is
// a second, independent classifier with its own priority order, kept
// deliberately separate from CategorizeFund so the label shown to users can
// evolve without silently changing tax-calculation behavior.
func DisplayCategory(fund models.FundRecord) string {
	category := strings.ToLower(fund.RawCategory)
	name := strings.ToLower(fund.FundName)

	switch {
	case strings.Contains(name, "california"), strings.Contains(name, "new york"):
		return DisplayStateMunicipal
	case strings.Contains(name, "municipal"), strings.Contains(name, "tax-exempt"),
		strings.Contains(category, "tax-exempt"), strings.Contains(category, "muni"):
		return DisplayMunicipal
	case strings.Contains(name, "u.s. treasury"), strings.Contains(name, "treasury obligations"):
		return DisplayTreasury
	case strings.Contains(name, "government"):
		return DisplayGovernment
	case strings.Contains(name, "prime"):
		return DisplayPrime
	}
	return DisplayTaxable
}
