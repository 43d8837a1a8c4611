// backend/src/handlers/fund_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/models"
	"github.com/username/yieldvisor/src/services"
	"github.com/username/yieldvisor/src/utils"
)

type FundHandler struct {
	snapshotService services.SnapshotService
}

func NewFundHandler(service services.SnapshotService) *FundHandler {
	return &FundHandler{snapshotService: service}
}

// HandleRankFunds ranks the latest snapshot for the profile in the request
// body and returns the enriched results plus a recommendation.
func (h *FundHandler) HandleRankFunds(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var profile models.UserTaxProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		ctxLogger.Warn("Invalid ranking request body", "error", err)
		utils.SendJSONError(w, "Invalid request body: expected {income, filing_status, state}", http.StatusBadRequest)
		return
	}

	if profile.Income < 0 {
		utils.SendJSONError(w, "income must be non-negative", http.StatusBadRequest)
		return
	}
	if profile.FilingStatus == "" {
		profile.FilingStatus = models.FilingSingle
	}

	ctxLogger.Info("Handling RankFunds request", "income", profile.Income, "filingStatus", profile.FilingStatus, "state", profile.StateCode)

	result, err := h.snapshotService.RankFunds(profile)
	if err != nil {
		if errors.Is(err, services.ErrNoSnapshots) {
			utils.SendJSONError(w, "no fund snapshots available yet", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Error ranking funds", "error", err)
		utils.SendJSONError(w, "Error ranking funds", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
