// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// StartListDependencies defines the interface for start list operations
type StartListDependencies interface {
	QualifyingStartList(ctx context.Context, catID string) ([]model.StartListCompetitor, error)
	RoundStartList(ctx context.Context, catID, roundName string) ([]model.RoundStartEntry, error)
	RoundStartListCompetitors(ctx context.Context, catID, roundName string) ([]model.StartListCompetitor, error)
	StartListRounds(ctx context.Context) ([]model.StartListRound, error)
}

// StartListHandler handles start list requests
type StartListHandler struct {
	deps StartListDependencies
}

// NewStartListHandler creates a new start list handler
func NewStartListHandler(deps StartListDependencies) *StartListHandler {
	return &StartListHandler{deps: deps}
}

// HandleQualifyingStartList handles GET /api/qualifyingStartList?catId=X
// requests with the first-flight running order for a category.
func (h *StartListHandler) HandleQualifyingStartList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	if catID == "" {
		writeBadRequest(w)
		return
	}
	starters, err := h.deps.QualifyingStartList(r.Context(), catID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, starters)
}

// HandleRoundStartList handles GET /api/roundStartList?catId=X&roundName=Y
// requests.
func (h *StartListHandler) HandleRoundStartList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	roundName := r.URL.Query().Get("roundName")
	if catID == "" || roundName == "" {
		writeBadRequest(w)
		return
	}
	entries, err := h.deps.RoundStartList(r.Context(), catID, roundName)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleRoundStartListCompetitors handles
// GET /api/roundStartListCompetitors?catId=X&roundName=Y requests with the
// flight-ordered competitor details for a round.
func (h *StartListHandler) HandleRoundStartListCompetitors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	roundName := r.URL.Query().Get("roundName")
	if catID == "" || roundName == "" {
		writeBadRequest(w)
		return
	}
	competitors, err := h.deps.RoundStartListCompetitors(r.Context(), catID, roundName)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, competitors)
}

// HandleStartListRounds handles GET /api/startListRounds requests, listing
// rounds whose predecessors are signed off and so are ready to display.
func (h *StartListHandler) HandleStartListRounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rounds, err := h.deps.StartListRounds(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}
