// backend/src/parsers/snapshotcsv/parser.go
package snapshotcsv

import (
	"strings"

	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/utils"
)

// Parse turns a raw CSV snapshot into header-keyed rows. The first line is
// the header; blank body lines are skipped; a row shorter than the header
// maps its missing trailing columns to "".
//
// The grammar is deliberately lenient: fields may be wrapped in double
// quotes to carry literal commas, an inner quote is escaped by doubling,
// and a stray unbalanced quote never fails the parse. encoding/csv is too
// strict for the feeds this ingests (it errors on bare quotes and ragged
// rows), so the scan is done by hand.
func Parse(text string) []models.RawRow {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var headers []string
	var rows []models.RawRow
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		if headers == nil {
			headers = fields
			continue
		}
		row := make(models.RawRow, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// splitLine scans one line character by character, toggling quote state on
// each double quote, and splits on commas outside quotes. Every field is
// trimmed, has one layer of surrounding quotes stripped, and has doubled
// inner quotes collapsed.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			cur.WriteRune(ch)
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

// Accepted header spellings. The upstream feed has shifted these over time,
// so each logical column is read through a candidate list.
var (
	fundNameKeys     = []string{"Fund Name", "FundName", "Name"}
	tickerKeys       = []string{"Ticker", "Symbol", "Ticker Symbol"}
	categoryKeys     = []string{"Category", "Fund Category"}
	yieldKeys        = []string{"7-Day Yield (with waivers)", "7-Day Yield", "7 Day Yield", "Yield"}
	expenseRatioKeys = []string{"Expense Ratio", "ExpenseRatio", "Net Expense Ratio"}
	minInvestKeys    = []string{"Minimum Investment", "Min Investment"}
	eligibleKeys     = []string{"Eligible Investors", "Eligible"}
)

// FundFromRow maps one parsed row onto a FundRecord. Missing columns
// degrade to zero values rather than failing: a row with no expense ratio
// still yields a usable record.
func FundFromRow(row models.RawRow) models.FundRecord {
	ticker := row.Get(tickerKeys...)
	if ticker == "" {
		ticker = "N/A"
	}
	return models.FundRecord{
		FundName:          row.Get(fundNameKeys...),
		Ticker:            ticker,
		RawCategory:       row.Get(categoryKeys...),
		GrossYield:        utils.ParsePercent(row.Get(yieldKeys...)),
		ExpenseRatio:      utils.ParsePercent(row.Get(expenseRatioKeys...)),
		MinimumInvestment: row.Get(minInvestKeys...),
		EligibleInvestors: row.Get(eligibleKeys...),
	}
}

// ParseFunds is the convenience composition of Parse and FundFromRow. Rows
// with an empty fund name are dropped, everything else is kept as-is.
func ParseFunds(text string) []models.FundRecord {
	var funds []models.FundRecord
	for _, row := range Parse(text) {
		fund := FundFromRow(row)
		if fund.FundName == "" {
			continue
		}
		funds = append(funds, fund)
	}
	return funds
}
