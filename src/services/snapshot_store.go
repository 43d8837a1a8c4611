// backend/src/services/snapshot_store.go
package services

import (
	"database/sql"

	"github.com/username/yieldvisor/src/model"
	"github.com/username/yieldvisor/src/models"
)

// sqliteSnapshotStore is the production SnapshotStore, delegating to the
// model package's queries.
type sqliteSnapshotStore struct {
	db *sql.DB
}

// NewSQLiteSnapshotStore wraps an open database handle as a SnapshotStore.
func NewSQLiteSnapshotStore(db *sql.DB) SnapshotStore {
	return &sqliteSnapshotStore{db: db}
}

func (s *sqliteSnapshotStore) ReplaceSnapshot(observationDate string, funds []models.FundRecord) error {
	return model.ReplaceSnapshot(s.db, observationDate, funds)
}

func (s *sqliteSnapshotStore) GetFundsByDate(observationDate string) ([]models.FundRecord, error) {
	return model.GetFundsByDate(s.db, observationDate)
}

func (s *sqliteSnapshotStore) GetLatestDate() (string, error) {
	return model.GetLatestDate(s.db)
}

func (s *sqliteSnapshotStore) GetSnapshotDates() ([]string, error) {
	return model.GetSnapshotDates(s.db)
}

func (s *sqliteSnapshotStore) GetAllDatedFunds() ([]model.DatedFund, error) {
	return model.GetAllDatedFunds(s.db)
}
