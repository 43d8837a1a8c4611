// backend/src/handlers/snapshot_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/yieldvisor/src/config"
	"github.com/username/yieldvisor/src/logger"
	"github.com/username/yieldvisor/src/security/validation"
	"github.com/username/yieldvisor/src/services"
	"github.com/username/yieldvisor/src/utils"
)

type SnapshotHandler struct {
	snapshotService services.SnapshotService
}

func NewSnapshotHandler(service services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: service}
}

// HandleUploadSnapshot ingests one CSV snapshot. The multipart form carries
// the file under "file" and an optional "date" (YYYY-MM-DD); a missing date
// defaults to today inside the service.
func (h *SnapshotHandler) HandleUploadSnapshot(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	if err := r.ParseMultipartForm(config.Cfg.MaxSnapshotSizeBytes); err != nil {
		ctxLogger.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxSnapshotSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("failed to process upload or file too large (max %d KB)", config.Cfg.MaxSnapshotSizeBytes/1024), http.StatusBadRequest)
		return
	}

	observationDate := r.FormValue("date")

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		ctxLogger.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxSnapshotSizeBytes {
		ctxLogger.Warn("Uploaded file too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxSnapshotSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("file too large, max %d KB", config.Cfg.MaxSnapshotSizeBytes/1024), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		ctxLogger.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
		ctxLogger.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.snapshotService.IngestSnapshot(file, observationDate)
	if err != nil {
		if errors.Is(err, services.ErrEmptySnapshot) {
			utils.SendJSONError(w, "snapshot contained no fund rows", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Snapshot ingest failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, "Failed to ingest snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// HandleGetSnapshotDates lists every stored observation date.
func (h *SnapshotHandler) HandleGetSnapshotDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.snapshotService.ListSnapshotDates()
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list snapshot dates", "error", err)
		utils.SendJSONError(w, "Failed to list snapshot dates", http.StatusInternalServerError)
		return
	}
	if dates == nil {
		dates = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"dates": dates})
}
