// backend/src/services/interfaces.go
package services

import (
	"errors"
	"io"

	"github.com/username/yieldvisor/src/model"
	"github.com/username/yieldvisor/src/models"
)

// IngestResult summarizes one snapshot upload.
type IngestResult struct {
	ObservationDate string `json:"observation_date"`
	FundCount       int    `json:"fund_count"`
}

// RankingResult is the response payload of a ranking request: every fund
// enriched and sorted best-first, plus the recommendation for the top one.
type RankingResult struct {
	ObservationDate string                      `json:"observation_date"`
	Results         []models.EnrichedFundResult `json:"results"`
	Recommendation  *models.Recommendation      `json:"recommendation,omitempty"`
}

// Define common service errors
var (
	ErrNoSnapshots   = errors.New("no fund snapshots have been ingested")
	ErrEmptySnapshot = errors.New("snapshot contained no fund rows")
)

// SnapshotService is the core orchestration surface: ingest CSV snapshots,
// rank the latest snapshot for a tax profile, and build the chart series.
type SnapshotService interface {
	IngestSnapshot(reader io.Reader, observationDate string) (*IngestResult, error)
	RankFunds(profile models.UserTaxProfile) (*RankingResult, error)
	ChartSeries() (models.AggregatedSeries, error)
	ListSnapshotDates() ([]string, error)
}

// SnapshotStore abstracts the persistence behind the service so the
// calculation paths can be exercised without a database.
type SnapshotStore interface {
	ReplaceSnapshot(observationDate string, funds []models.FundRecord) error
	GetFundsByDate(observationDate string) ([]models.FundRecord, error)
	GetLatestDate() (string, error)
	GetSnapshotDates() ([]string, error)
	GetAllDatedFunds() ([]model.DatedFund, error)
}
