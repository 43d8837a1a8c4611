// backend/src/taxcalc/resolver.go
package taxcalc

import (
	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/taxdata"
)

// FederalMarginalRate resolves the marginal federal rate for the given
// income and filing status. The scan runs from the top bracket down and
// matches on income strictly greater than the bracket's lower bound, so an
// income exactly on a boundary resolves to the bracket below it. That is a
// deliberate boundary policy, not an off-by-one.
func FederalMarginalRate(income float64, status models.FilingStatus) float64 {
	brackets := taxdata.BracketsFor(status)
	for i := len(brackets) - 1; i >= 0; i-- {
		if income > brackets[i].Lower {
			return brackets[i].Rate
		}
	}
	return brackets[0].Rate
}

// StateMarginalRate resolves the flat state rate. Unknown state codes mean
// no state income tax, never an error.
func StateMarginalRate(stateCode string) float64 {
	return taxdata.StateRate(stateCode)
}
