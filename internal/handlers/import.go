package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=import.go -destination=import_mock.go -package=handlers

// SnapshotImporter pulls proposals from the off-chain poll space.
type SnapshotImporter interface {
	Import(ctx context.Context) ([]models.ImportResult, error)
}

// ImportResponse reports the outcome of an import run
// swagger:model ImportResponse
type ImportResponse struct {
	Count   int                   `json:"count"`
	Results []models.ImportResult `json:"results"`
}

// NewImportSnapshotHandler returns an HTTP handler running the poll import.
// @Summary Import snapshot.org proposals
// @Description Upsert the newest proposals of the configured space
// @Tags admin
// @Produce json
// @Param X-API-Key header string true "Admin API key"
// @Success 200 {object} handlers.ImportResponse "Import report"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/import/snapshot [post]
func NewImportSnapshotHandler(svc SnapshotImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.Import(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if results == nil {
			results = []models.ImportResult{}
		}
		writeJSON(w, http.StatusOK, ImportResponse{Count: len(results), Results: results})
	}
}
