package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawRow_Get(t *testing.T) {
	row := RawRow{"Fund Name": "Schwab Treasury Fund", "Ticker": "", "Category": "Treasury"}

	assert.Equal(t, "Schwab Treasury Fund", row.Get("FundName", "Fund Name"))
	assert.Equal(t, "Treasury", row.Get("Category"))
	assert.Equal(t, "", row.Get("Ticker"), "present but empty key yields empty")
	assert.Equal(t, "", row.Get("Missing", "Also Missing"))
}

func TestTaxCategory_Treatment(t *testing.T) {
	tests := []struct {
		category TaxCategory
		federal  bool
		state    bool
	}{
		{CategoryTaxable, true, true},
		{CategorySweep, true, true},
		{CategoryETF, true, true},
		{CategoryTreasury, true, false},
		{CategoryMunicipal, false, true},
		{CategoryStateMunicipal, false, false},
	}
	for _, tc := range tests {
		treatment := tc.category.Treatment()
		assert.Equal(t, tc.federal, treatment.FederalTaxable, "federal for %s", tc.category)
		assert.Equal(t, tc.state, treatment.StateTaxable, "state for %s", tc.category)
	}

	// Unknown categories get the fully taxable treatment.
	assert.Equal(t, CategoryTaxable.Treatment(), TaxCategory("bogus").Treatment())
}

func TestTaxCategory_FullyTaxableEquivalent(t *testing.T) {
	assert.True(t, CategoryTaxable.FullyTaxableEquivalent())
	assert.True(t, CategorySweep.FullyTaxableEquivalent())
	assert.True(t, CategoryETF.FullyTaxableEquivalent())
	assert.False(t, CategoryTreasury.FullyTaxableEquivalent())
	assert.False(t, CategoryMunicipal.FullyTaxableEquivalent())
	assert.False(t, CategoryStateMunicipal.FullyTaxableEquivalent())
}

func TestFundRecord_NetYield_NotClamped(t *testing.T) {
	fund := FundRecord{GrossYield: 0.10, ExpenseRatio: 0.45}
	assert.InDelta(t, -0.35, fund.NetYield(), 1e-9)
}
