// backend/src/handlers/chart_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/services"
	"github.com/username/yieldvisor/src/utils"
)

type ChartHandler struct {
	snapshotService services.SnapshotService
}

func NewChartHandler(service services.SnapshotService) *ChartHandler {
	return &ChartHandler{snapshotService: service}
}

// HandleGetYieldChart returns the date-aligned per-category average yields
// across every stored snapshot. Missing (category, date) slots are null,
// never zero.
func (h *ChartHandler) HandleGetYieldChart(w http.ResponseWriter, r *http.Request) {
	series, err := h.snapshotService.ChartSeries()
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to build yield chart series", "error", err)
		utils.SendJSONError(w, "Failed to retrieve chart data", http.StatusInternalServerError)
		return
	}
	if series.Dates == nil {
		series.Dates = []string{}
	}
	if series.Averages == nil {
		series.Averages = map[string][]*float64{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}
