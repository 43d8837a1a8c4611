package model

import (
	"database/sql"
	"fmt"

	"github.com/username/yieldvisor/src/models"
)

// DatedFund is one stored snapshot row together with its observation date.
type DatedFund struct {
	ObservationDate string
	Fund            models.FundRecord
}

// ReplaceSnapshot atomically replaces all rows for an observation date with
// the given funds. Re-ingesting the same date is an overwrite, not a merge.
func ReplaceSnapshot(db *sql.DB, observationDate string, funds []models.FundRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM fund_snapshots WHERE observation_date = ?`, observationDate); err != nil {
		return fmt.Errorf("clear snapshot for %s: %w", observationDate, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fund_snapshots
			(observation_date, fund_name, ticker, raw_category, gross_yield, expense_ratio, minimum_investment, eligible_investors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range funds {
		if _, err := stmt.Exec(observationDate, f.FundName, f.Ticker, f.RawCategory,
			f.GrossYield, f.ExpenseRatio, f.MinimumInvestment, f.EligibleInvestors); err != nil {
			return fmt.Errorf("insert snapshot row %q: %w", f.FundName, err)
		}
	}

	return tx.Commit()
}

// GetFundsByDate returns the funds stored for one observation date, in
// insertion order.
func GetFundsByDate(db *sql.DB, observationDate string) ([]models.FundRecord, error) {
	rows, err := db.Query(`
		SELECT fund_name, ticker, raw_category, gross_yield, expense_ratio, minimum_investment, eligible_investors
		FROM fund_snapshots WHERE observation_date = ? ORDER BY id ASC`, observationDate)
	if err != nil {
		return nil, fmt.Errorf("query snapshot for %s: %w", observationDate, err)
	}
	defer rows.Close()

	var funds []models.FundRecord
	for rows.Next() {
		var f models.FundRecord
		if err := rows.Scan(&f.FundName, &f.Ticker, &f.RawCategory, &f.GrossYield,
			&f.ExpenseRatio, &f.MinimumInvestment, &f.EligibleInvestors); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

// GetLatestDate returns the most recent observation date, or "" when no
// snapshot has been ingested yet.
func GetLatestDate(db *sql.DB) (string, error) {
	var date sql.NullString
	err := db.QueryRow(`SELECT MAX(observation_date) FROM fund_snapshots`).Scan(&date)
	if err != nil {
		return "", fmt.Errorf("query latest snapshot date: %w", err)
	}
	if !date.Valid {
		return "", nil
	}
	return date.String, nil
}

// GetSnapshotDates returns every distinct observation date, ascending.
func GetSnapshotDates(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT observation_date FROM fund_snapshots ORDER BY observation_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan snapshot date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// GetAllDatedFunds returns every stored (date, fund) row across all
// snapshots, ordered by date then insertion order.
func GetAllDatedFunds(db *sql.DB) ([]DatedFund, error) {
	rows, err := db.Query(`
		SELECT observation_date, fund_name, ticker, raw_category, gross_yield, expense_ratio, minimum_investment, eligible_investors
		FROM fund_snapshots ORDER BY observation_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query all snapshot rows: %w", err)
	}
	defer rows.Close()

	var result []DatedFund
	for rows.Next() {
		var df DatedFund
		if err := rows.Scan(&df.ObservationDate, &df.Fund.FundName, &df.Fund.Ticker,
			&df.Fund.RawCategory, &df.Fund.GrossYield, &df.Fund.ExpenseRatio,
			&df.Fund.MinimumInvestment, &df.Fund.EligibleInvestors); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		result = append(result, df)
	}
	return result, rows.Err()
}
