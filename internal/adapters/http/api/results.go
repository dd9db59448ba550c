// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// ResultsDependencies defines the interface for online results operations
type ResultsDependencies interface {
	OnlineResults(ctx context.Context, catID string, compType int) ([]model.ResultView, error)
}

// ResultsHandler handles aggregated results requests
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// HandleOnlineResults handles GET /api/onlineResults?catId=X&compType=N
// requests. Any compType other than "0" selects cumulative ranking.
func (h *ResultsHandler) HandleOnlineResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	if catID == "" {
		writeBadRequest(w)
		return
	}
	compType := 1
	if r.URL.Query().Get("compType") == "0" {
		compType = 0
	}
	views, err := h.deps.OnlineResults(r.Context(), catID, compType)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
