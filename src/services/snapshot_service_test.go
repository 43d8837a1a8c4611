package services

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/model"
	"github.com/username/yieldvisor/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// fakeStore keeps snapshots in memory, ordered by date string.
type fakeStore struct {
	snapshots map[string][]models.FundRecord
	dates     []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[string][]models.FundRecord)}
}

func (f *fakeStore) ReplaceSnapshot(date string, funds []models.FundRecord) error {
	if _, exists := f.snapshots[date]; !exists {
		f.dates = append(f.dates, date)
	}
	f.snapshots[date] = funds
	return nil
}

func (f *fakeStore) GetFundsByDate(date string) ([]models.FundRecord, error) {
	return f.snapshots[date], nil
}

func (f *fakeStore) GetLatestDate() (string, error) {
	latest := ""
	for _, d := range f.dates {
		if d > latest {
			latest = d
		}
	}
	return latest, nil
}

func (f *fakeStore) GetSnapshotDates() ([]string, error) {
	return append([]string(nil), f.dates...), nil
}

func (f *fakeStore) GetAllDatedFunds() ([]model.DatedFund, error) {
	var all []model.DatedFund
	for _, d := range f.dates {
		for _, fund := range f.snapshots[d] {
			all = append(all, model.DatedFund{ObservationDate: d, Fund: fund})
		}
	}
	return all, nil
}

func newTestService(store SnapshotStore) SnapshotService {
	return NewSnapshotService(store, cache.New(time.Minute, time.Minute))
}

const sampleCSV = `Fund Name,Ticker,7-Day Yield,Category,Expense Ratio
Schwab Value Advantage Money Fund,SWVXX,4.52%,Taxable Money Market,0.34
Schwab Municipal Money Fund,SWTXX,2.89%,Tax-Exempt,0.39
Schwab U.S. Treasury Money Fund,SNSXX,4.20%,,0.34
`

func TestIngestSnapshot(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	result, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", result.ObservationDate)
	assert.Equal(t, 3, result.FundCount)

	stored, _ := store.GetFundsByDate("2026-08-29")
	require.Len(t, stored, 3)
	assert.Equal(t, "SWVXX", stored[0].Ticker)
}

func TestIngestSnapshot_EmptyCSV(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.IngestSnapshot(strings.NewReader(""), "2026-08-29")
	assert.ErrorIs(t, err, ErrEmptySnapshot)

	_, err = svc.IngestSnapshot(strings.NewReader("Fund Name,Ticker\n"), "2026-08-29")
	assert.ErrorIs(t, err, ErrEmptySnapshot)
}

func TestIngestSnapshot_DefaultsDateToToday(t *testing.T) {
	svc := newTestService(newFakeStore())
	result, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), result.ObservationDate)
}

func TestRankFunds(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	_, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-29")
	require.NoError(t, err)

	result, err := svc.RankFunds(models.UserTaxProfile{
		Income: 200000, FilingStatus: models.FilingSingle, StateCode: "MO",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", result.ObservationDate)
	require.Len(t, result.Results, 3)
	for i := 0; i < len(result.Results)-1; i++ {
		assert.GreaterOrEqual(t, result.Results[i].TaxEquivalentYield, result.Results[i+1].TaxEquivalentYield)
	}
	require.NotNil(t, result.Recommendation)
	assert.Equal(t, result.Results[0].FundName, result.Recommendation.Fund.FundName)
}

func TestRankFunds_NoSnapshots(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.RankFunds(models.UserTaxProfile{Income: 100000, FilingStatus: models.FilingSingle})
	assert.ErrorIs(t, err, ErrNoSnapshots)
}

func TestRankFunds_UsesLatestSnapshot(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	_, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-01")
	require.NoError(t, err)
	_, err = svc.IngestSnapshot(strings.NewReader(
		"Fund Name,Ticker,7-Day Yield,Category,Expense Ratio\nOnly Fund,XXXX,4.00%,Taxable,0.30\n"), "2026-08-15")
	require.NoError(t, err)

	result, err := svc.RankFunds(models.UserTaxProfile{Income: 100000, FilingStatus: models.FilingSingle, StateCode: "MO"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", result.ObservationDate)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Only Fund", result.Results[0].FundName)
}

func TestChartSeries(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	_, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-01")
	require.NoError(t, err)
	_, err = svc.IngestSnapshot(strings.NewReader(
		"Fund Name,Ticker,7-Day Yield,Category,Expense Ratio\nSchwab Municipal Money Fund,SWTXX,2.99%,Tax-Exempt,0.39\n"), "2026-08-15")
	require.NoError(t, err)

	series, err := svc.ChartSeries()
	require.NoError(t, err)
	require.Equal(t, []string{"2026-08-01", "2026-08-15"}, series.Dates)

	municipal := series.Averages["Municipal"]
	require.Len(t, municipal, 2)
	require.NotNil(t, municipal[0])
	assert.InDelta(t, 2.50, *municipal[0], 1e-9)
	require.NotNil(t, municipal[1])
	assert.InDelta(t, 2.60, *municipal[1], 1e-9)

	// The taxable fund only appears in the first snapshot.
	taxable := series.Averages["Taxable"]
	require.Len(t, taxable, 2)
	require.NotNil(t, taxable[0])
	assert.Nil(t, taxable[1])
}

func TestIngestInvalidatesChartCache(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	_, err := svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-01")
	require.NoError(t, err)

	first, err := svc.ChartSeries()
	require.NoError(t, err)
	require.Len(t, first.Dates, 1)

	_, err = svc.IngestSnapshot(strings.NewReader(sampleCSV), "2026-08-15")
	require.NoError(t, err)

	second, err := svc.ChartSeries()
	require.NoError(t, err)
	assert.Len(t, second.Dates, 2, "ingest must flush the cached series")
}
