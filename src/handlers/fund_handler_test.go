package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/services"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// stubService returns canned values so handler behavior can be tested
// without a database.
type stubService struct {
	ranking *services.RankingResult
	rankErr error
	series  models.AggregatedSeries
	dates   []string
}

func (s *stubService) IngestSnapshot(reader io.Reader, date string) (*services.IngestResult, error) {
	return &services.IngestResult{ObservationDate: date, FundCount: 1}, nil
}

func (s *stubService) RankFunds(profile models.UserTaxProfile) (*services.RankingResult, error) {
	if s.rankErr != nil {
		return nil, s.rankErr
	}
	return s.ranking, nil
}

func (s *stubService) ChartSeries() (models.AggregatedSeries, error) {
	return s.series, nil
}

func (s *stubService) ListSnapshotDates() ([]string, error) {
	return s.dates, nil
}

func TestHandleRankFunds(t *testing.T) {
	svc := &stubService{
		ranking: &services.RankingResult{
			ObservationDate: "2026-08-29",
			Results: []models.EnrichedFundResult{{
				FundRecord:         models.FundRecord{FundName: "Schwab Municipal Money Fund"},
				Category:           models.CategoryMunicipal,
				TaxEquivalentYield: 2.62,
			}},
		},
	}
	handler := NewFundHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/funds/rank",
		strings.NewReader(`{"income":200000,"filing_status":"single","state":"MO"}`))
	rec := httptest.NewRecorder()
	handler.HandleRankFunds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Schwab Municipal Money Fund")
	assert.Contains(t, rec.Body.String(), `"observation_date":"2026-08-29"`)
}

func TestHandleRankFunds_InvalidBody(t *testing.T) {
	handler := NewFundHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/funds/rank", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.HandleRankFunds(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRankFunds_NegativeIncome(t *testing.T) {
	handler := NewFundHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/funds/rank", strings.NewReader(`{"income":-1}`))
	rec := httptest.NewRecorder()
	handler.HandleRankFunds(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRankFunds_NoSnapshots(t *testing.T) {
	handler := NewFundHandler(&stubService{rankErr: services.ErrNoSnapshots})

	req := httptest.NewRequest(http.MethodPost, "/api/funds/rank", strings.NewReader(`{"income":100000}`))
	rec := httptest.NewRecorder()
	handler.HandleRankFunds(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetYieldChart_EmptyIsNotNull(t *testing.T) {
	handler := NewChartHandler(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/chart/yields", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetYieldChart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dates":[],"averages":{}}`, rec.Body.String())
}

func TestHandleGetSnapshotDates(t *testing.T) {
	handler := NewSnapshotHandler(&stubService{dates: []string{"2026-08-01", "2026-08-15"}})

	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/dates", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetSnapshotDates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dates":["2026-08-01","2026-08-15"]}`, rec.Body.String())
}
