// backend/src/taxcalc/calculator.go
package taxcalc

import (
	"fmt"
	"sort"

	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/utils"
)

// ReferencePrincipal is the fixed illustration principal the annual return
// projection is scaled to.
const ReferencePrincipal = 10000.0

// EffectiveTaxRate composes the blended rate for a tax treatment. When both
// levels tax the income, the state portion is deducted against federal
// (state × (1 − federal), the standard combined-rate formula). A federally
// exempt but state-taxable fund pays the full state rate: there is no
// federal tax baseline to deduct against.
func EffectiveTaxRate(treatment models.TaxTreatment, federalRate, stateRate float64) float64 {
	rate := 0.0
	if treatment.FederalTaxable {
		rate += federalRate
	}
	if treatment.StateTaxable {
		if treatment.FederalTaxable {
			rate += stateRate * (1 - federalRate)
		} else {
			rate += stateRate
		}
	}
	return rate
}

// ComputeForFund enriches one fund with every derived attribute for the
// given profile. Pure: identical inputs always produce identical output.
func ComputeForFund(fund models.FundRecord, profile models.UserTaxProfile) models.EnrichedFundResult {
	netYield := fund.NetYield()
	category := CategorizeFund(fund)

	federalRate := FederalMarginalRate(profile.Income, profile.FilingStatus)
	stateRate := StateMarginalRate(profile.StateCode)
	effectiveRate := EffectiveTaxRate(category.Treatment(), federalRate, stateRate)

	// A fully taxable fund's yield already IS its tax-equivalent yield;
	// applying the gross-up there would be self-referential. The rate >= 1
	// guard only fires on a pathological combined rate and keeps the result
	// finite.
	tey := netYield
	if !category.FullyTaxableEquivalent() && effectiveRate < 1 {
		tey = netYield / (1 - effectiveRate)
	}

	return models.EnrichedFundResult{
		FundRecord:         fund,
		Category:           category,
		FundCategory:       DisplayCategory(fund),
		NetYield:           netYield,
		EffectiveTaxRate:   effectiveRate,
		TaxEquivalentYield: tey,
		AnnualReturn10K:    ReferencePrincipal * (tey / 100),
	}
}

// ComputeAllAndRank enriches every fund and ranks them by tax-equivalent
// yield, best first. The sort is stable so ties keep their input order. An
// empty input returns an empty result, not an error.
func ComputeAllAndRank(funds []models.FundRecord, profile models.UserTaxProfile) []models.EnrichedFundResult {
	results := make([]models.EnrichedFundResult, 0, len(funds))
	for _, fund := range funds {
		results = append(results, ComputeForFund(fund, profile))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TaxEquivalentYield > results[j].TaxEquivalentYield
	})
	return results
}

// Recommend picks the top-ranked result and builds the explanation string.
// When the fund carries any tax burden the explanation quantifies the
// tax-efficiency gain of looking at tax-equivalent rather than net yield.
func Recommend(ranked []models.EnrichedFundResult) *models.Recommendation {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]

	explanation := fmt.Sprintf("%s is your best option: it is %s, for a tax-equivalent yield of %.2f%%.",
		top.FundName, top.Category.TaxDescription(), top.TaxEquivalentYield)
	if top.EffectiveTaxRate > 0 && top.TaxEquivalentYield != 0 {
		gain := (top.TaxEquivalentYield - top.NetYield) / top.TaxEquivalentYield * 100
		explanation += fmt.Sprintf(" Its tax treatment is worth %.2f%% in tax efficiency at your rates.",
			utils.RoundFloat(gain, 2))
	}

	return &models.Recommendation{Fund: top, Explanation: explanation}
}
