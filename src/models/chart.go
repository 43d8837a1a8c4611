// backend/src/models/chart.go
package models

// ChartDataPoint is one (fund, date) yield observation bucketed by its
// display category.
type ChartDataPoint struct {
	Category string  `json:"category"`
	FundName string  `json:"fund_name"`
	Date     string  `json:"date"` // calendar date, no time component
	NetYield float64 `json:"net_yield"`
}

// AggregatedSeries is the chart-ready view of many ChartDataPoints: one
// average per (category, date) slot, positionally aligned with Dates. A nil
// slot means no funds reported for that category on that date, which is a
// different condition from an average of zero.
type AggregatedSeries struct {
	Dates    []string              `json:"dates"`
	Averages map[string][]*float64 `json:"averages"`
}
