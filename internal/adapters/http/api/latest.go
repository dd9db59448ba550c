// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// LatestDependencies defines the interface for latest-exercise operations
type LatestDependencies interface {
	Latest(ctx context.Context, panelNumber int) (*model.LatestView, error)
	LatestScore(ctx context.Context, panelNumber int) ([]model.CompetitorRow, error)
}

// LatestHandler handles latest-exercise requests
type LatestHandler struct {
	deps LatestDependencies
}

// NewLatestHandler creates a new latest handler
func NewLatestHandler(deps LatestDependencies) *LatestHandler {
	return &LatestHandler{deps: deps}
}

// HandleLatest handles GET /api/latest?panelNumber=N requests. When no
// competitor has scored on the panel yet the body is an empty object, not
// an error, so display clients can keep polling without special cases.
func (h *LatestHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	panelNumber, err := strconv.Atoi(r.URL.Query().Get("panelNumber"))
	if err != nil || panelNumber < 1 {
		writeBadRequest(w)
		return
	}
	view, err := h.deps.Latest(r.Context(), panelNumber)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if view == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleLatestScore handles GET /api/latestScore?panelNumber=N requests,
// returning the raw display rows for the panel's most recent competitor.
func (h *LatestHandler) HandleLatestScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	panelNumber, err := strconv.Atoi(r.URL.Query().Get("panelNumber"))
	if err != nil || panelNumber < 1 {
		writeBadRequest(w)
		return
	}
	rows, err := h.deps.LatestScore(r.Context(), panelNumber)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
