// backend/src/taxdata/states.go
package taxdata

import "strings"

// StateRates maps a two-letter state code to a single flat marginal rate.
// This is an approximation: the top marginal rate is applied uniformly
// instead of modelling each state's bracket system. States with no income
// tax (AK, FL, NV, NH, SD, TN, TX, WA, WY) are simply absent.
var StateRates = map[string]float64{
	"AL": 0.050,
	"AZ": 0.025,
	"AR": 0.044,
	"CA": 0.133,
	"CO": 0.044,
	"CT": 0.0699,
	"DE": 0.066,
	"DC": 0.1075,
	"GA": 0.0549,
	"HI": 0.110,
	"ID": 0.058,
	"IL": 0.0495,
	"IN": 0.0305,
	"IA": 0.057,
	"KS": 0.057,
	"KY": 0.040,
	"LA": 0.0425,
	"ME": 0.0715,
	"MD": 0.0575,
	"MA": 0.050,
	"MI": 0.0425,
	"MN": 0.0985,
	"MS": 0.047,
	"MO": 0.047,
	"MT": 0.059,
	"NE": 0.0584,
	"NJ": 0.1075,
	"NM": 0.059,
	"NY": 0.109,
	"NC": 0.045,
	"ND": 0.025,
	"OH": 0.035,
	"OK": 0.0475,
	"OR": 0.099,
	"PA": 0.0307,
	"RI": 0.0599,
	"SC": 0.064,
	"UT": 0.0465,
	"VT": 0.0875,
	"VA": 0.0575,
	"WV": 0.0512,
	"WI": 0.0765,
}

// StateRate looks up a state's flat rate. Unknown codes resolve to 0,
// treated as no state income tax rather than an error.
func StateRate(code string) float64 {
	return StateRates[strings.ToUpper(strings.TrimSpace(code))]
}
