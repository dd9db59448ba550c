// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// BoardDependencies defines the interface for venue display board operations
type BoardDependencies interface {
	PanelBoard(ctx context.Context) ([]model.PanelBoardEntry, error)
	Rankings(ctx context.Context) ([]model.RankingGroup, error)
}

// BoardHandler handles venue display board requests
type BoardHandler struct {
	deps BoardDependencies
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(deps BoardDependencies) *BoardHandler {
	return &BoardHandler{deps: deps}
}

// HandleBoard handles GET /api/bg/latest requests with the per-panel
// current and next competitor board.
func (h *BoardHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	entries, err := h.deps.PanelBoard(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": entries})
}

// HandleRankings handles GET /api/bg/rankings requests with the latest
// signed-off round standings per category.
func (h *BoardHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	groups, err := h.deps.Rankings(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rankings": groups})
}
