// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// ReferenceDependencies defines the interface for competition reference data
type ReferenceDependencies interface {
	Categories(ctx context.Context, catID string) ([]model.Category, error)
	DisplayCategories(ctx context.Context) ([]model.Category, error)
	Rounds(ctx context.Context, catID string) ([]model.Round, error)
	CategoryRoundExercises(ctx context.Context, catID string) ([]model.CategoryRoundExercise, error)
	CategoryRoundExercise(ctx context.Context, catID string, exerciseNumber int) ([]model.CategoryRoundExercise, error)
	ExerciseNumbers(ctx context.Context, catID string) ([]model.ExerciseNumberRow, error)
	CompetitorRanks(ctx context.Context, catID string, compType int) ([]model.CompetitorRankRow, error)
	CompetitorRoundTotals(ctx context.Context, competitorID int) ([]model.RoundTotalDetailRow, error)
	PanelStatuses(ctx context.Context, panelNumber *int) ([]model.PanelStatus, error)
	EventInfo(ctx context.Context) ([]model.EventInfo, error)
}

// ReferenceHandler handles competition reference data requests
type ReferenceHandler struct {
	deps ReferenceDependencies
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(deps ReferenceDependencies) *ReferenceHandler {
	return &ReferenceHandler{deps: deps}
}

// HandleCategories handles GET /api/categories requests. An optional catId
// parameter narrows the listing to one category.
func (h *ReferenceHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cats, err := h.deps.Categories(r.Context(), r.URL.Query().Get("catId"))
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// HandleDisplayCategories handles GET /api/displayCategories requests.
func (h *ReferenceHandler) HandleDisplayCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cats, err := h.deps.DisplayCategories(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// HandleRounds handles GET /api/rounds?catId=X requests.
func (h *ReferenceHandler) HandleRounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	if catID == "" {
		writeBadRequest(w)
		return
	}
	rounds, err := h.deps.Rounds(r.Context(), catID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

// HandleCategoryRoundExercises handles GET /api/categoryRoundExercises
// requests. With only catId it lists the whole schedule for the category;
// adding exerciseNumber narrows it to a single exercise.
func (h *ReferenceHandler) HandleCategoryRoundExercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	if catID == "" {
		writeBadRequest(w)
		return
	}
	if raw := r.URL.Query().Get("exerciseNumber"); raw != "" {
		exerciseNumber, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w)
			return
		}
		exercises, err := h.deps.CategoryRoundExercise(r.Context(), catID, exerciseNumber)
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, exercises)
		return
	}
	exercises, err := h.deps.CategoryRoundExercises(r.Context(), catID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

// HandleExerciseNumbers handles GET /api/exerciseNumbers?catId=X requests.
func (h *ReferenceHandler) HandleExerciseNumbers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	catID := r.URL.Query().Get("catId")
	if catID == "" {
		writeBadRequest(w)
		return
	}
	numbers, err := h.deps.ExerciseNumbers(r.Context(), catID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, numbers)
}

// HandleCompetitorRanks handles GET /api/competitorRanks?catId=X&compType=N
// requests.
func (h *ReferenceHandler) HandleCompetitorRanks(w http.ResponseWriter, r *http.Request) {
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
	ranks, err := h.deps.CompetitorRanks(r.Context(), catID, compType)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ranks)
}

// HandleCompetitorRoundTotal handles GET /api/competitorRoundTotal?competitorId=N
// requests.
func (h *ReferenceHandler) HandleCompetitorRoundTotal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	competitorID, err := strconv.Atoi(r.URL.Query().Get("competitorId"))
	if err != nil || competitorID < 1 {
		writeBadRequest(w)
		return
	}
	totals, err := h.deps.CompetitorRoundTotals(r.Context(), competitorID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// HandlePanelStatus handles GET /api/panelStatus requests. An optional
// panelNumber parameter narrows the listing to one panel.
func (h *ReferenceHandler) HandlePanelStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var panelNumber *int
	if raw := r.URL.Query().Get("panelNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w)
			return
		}
		panelNumber = &n
	}
	statuses, err := h.deps.PanelStatuses(r.Context(), panelNumber)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// HandleEventInfo handles GET /api/eventInfo requests.
func (h *ReferenceHandler) HandleEventInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	info, err := h.deps.EventInfo(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
