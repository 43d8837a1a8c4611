// backend/src/services/snapshot_service.go
package services

import (
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/yieldvisor/src/chartdata"
	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/parsers/snapshotcsv"
	"github.com/username/yieldvisor/src/taxcalc"
)

const (
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// Cache key formats.
const (
	ckChartSeries = "chart_series"
	ckRanking     = "ranking:%s:%.2f:%s:%s" // date, income, filing status, state
)

type snapshotServiceImpl struct {
	store       SnapshotStore
	reportCache *cache.Cache
}

// NewSnapshotService builds the production SnapshotService.
func NewSnapshotService(store SnapshotStore, reportCache *cache.Cache) SnapshotService {
	return &snapshotServiceImpl{
		store:       store,
		reportCache: reportCache,
	}
}

// IngestSnapshot parses a CSV snapshot and stores it under the observation
// date, replacing any rows previously stored for that date. Cached reports
// are invalidated since every report is derived from the stored snapshots.
func (s *snapshotServiceImpl) IngestSnapshot(reader io.Reader, observationDate string) (*IngestResult, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot upload: %w", err)
	}

	funds := snapshotcsv.ParseFunds(string(raw))
	if len(funds) == 0 {
		return nil, ErrEmptySnapshot
	}

	if observationDate == "" {
		observationDate = time.Now().Format("2006-01-02")
	}

	if err := s.store.ReplaceSnapshot(observationDate, funds); err != nil {
		return nil, fmt.Errorf("storing snapshot for %s: %w", observationDate, err)
	}

	s.reportCache.Flush()
	logger.L.Info("Snapshot ingested", "observationDate", observationDate, "fundCount", len(funds))

	return &IngestResult{ObservationDate: observationDate, FundCount: len(funds)}, nil
}

// RankFunds enriches and ranks the latest snapshot for the given profile.
// Results are memoized per (snapshot date, profile).
func (s *snapshotServiceImpl) RankFunds(profile models.UserTaxProfile) (*RankingResult, error) {
	latest, err := s.store.GetLatestDate()
	if err != nil {
		return nil, err
	}
	if latest == "" {
		return nil, ErrNoSnapshots
	}

	cacheKey := fmt.Sprintf(ckRanking, latest, profile.Income, profile.FilingStatus, profile.StateCode)
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(*RankingResult), nil
	}

	funds, err := s.store.GetFundsByDate(latest)
	if err != nil {
		return nil, err
	}

	ranked := taxcalc.ComputeAllAndRank(funds, profile)
	result := &RankingResult{
		ObservationDate: latest,
		Results:         ranked,
		Recommendation:  taxcalc.Recommend(ranked),
	}

	s.reportCache.Set(cacheKey, result, DefaultCacheExpiration)
	return result, nil
}

// ChartSeries aggregates net yields across every stored snapshot into the
// per-date-per-category average matrix, bucketed by display category.
func (s *snapshotServiceImpl) ChartSeries() (models.AggregatedSeries, error) {
	if cached, found := s.reportCache.Get(ckChartSeries); found {
		return cached.(models.AggregatedSeries), nil
	}

	datedFunds, err := s.store.GetAllDatedFunds()
	if err != nil {
		return models.AggregatedSeries{}, err
	}

	points := make([]models.ChartDataPoint, 0, len(datedFunds))
	for _, df := range datedFunds {
		points = append(points, models.ChartDataPoint{
			Category: taxcalc.DisplayCategory(df.Fund),
			FundName: df.Fund.FundName,
			Date:     df.ObservationDate,
			NetYield: df.Fund.NetYield(),
		})
	}

	series := chartdata.Aggregate(points)
	s.reportCache.Set(ckChartSeries, series, DefaultCacheExpiration)
	return series, nil
}

func (s *snapshotServiceImpl) ListSnapshotDates() ([]string, error) {
	return s.store.GetSnapshotDates()
}
