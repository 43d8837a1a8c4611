// backend/src/chartdata/aggregator.go
package chartdata

import (
	"sort"
	"time"

	"github.com/username/yieldvisor/src/models"
)

// Date layouts seen across snapshot feeds. Dates must sort in true calendar
// order regardless of which textual format a snapshot used.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	time.RFC3339,
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Aggregate groups observations into one average per (category, date) slot.
// Every category present in the input gets a slice aligned 1:1 with the
// sorted distinct dates; a slot with no observations is nil rather than
// zero, because "no funds reported" and "funds reported 0%" are different
// facts and the chart must be able to tell them apart.
func Aggregate(points []models.ChartDataPoint) models.AggregatedSeries {
	type bucket struct {
		sum   float64
		count int
	}

	seenDates := make(map[string]bool)
	sums := make(map[string]map[string]*bucket) // category -> date -> bucket
	for _, p := range points {
		seenDates[p.Date] = true
		if sums[p.Category] == nil {
			sums[p.Category] = make(map[string]*bucket)
		}
		b := sums[p.Category][p.Date]
		if b == nil {
			b = &bucket{}
			sums[p.Category][p.Date] = b
		}
		b.sum += p.NetYield
		b.count++
	}

	dates := make([]string, 0, len(seenDates))
	for d := range seenDates {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		ti, okI := parseDate(dates[i])
		tj, okJ := parseDate(dates[j])
		if okI && okJ && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		// Unparseable dates sort lexicographically among themselves, after
		// anything that parsed.
		if okI != okJ {
			return okI
		}
		return dates[i] < dates[j]
	})

	averages := make(map[string][]*float64, len(sums))
	for category, byDate := range sums {
		series := make([]*float64, len(dates))
		for i, d := range dates {
			if b, ok := byDate[d]; ok && b.count > 0 {
				avg := b.sum / float64(b.count)
				series[i] = &avg
			}
		}
		averages[category] = series
	}

	return models.AggregatedSeries{Dates: dates, Averages: averages}
}
