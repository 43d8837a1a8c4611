// backend/src/models/profile.go
package models

// FilingStatus is the federal filing status used to select a bracket table.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "marriedJoint"
	FilingHeadOfHousehold FilingStatus = "headOfHousehold"
)

// UserTaxProfile carries everything needed to resolve a user's marginal
// rates. It is supplied once per calculation call and never mutated.
type UserTaxProfile struct {
	Income       float64      `json:"income"`
	FilingStatus FilingStatus `json:"filing_status"`
	StateCode    string       `json:"state"`
}
