// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openfloor/scorecast/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	LatestDependencies
	ResultsDependencies
	BoardDependencies
	ReferenceDependencies
	StartListDependencies
}

// Server wires HTTP routes for the display API.
type Server struct {
	healthHandler    *HealthHandler
	latestHandler    *LatestHandler
	resultsHandler   *ResultsHandler
	boardHandler     *BoardHandler
	referenceHandler *ReferenceHandler
	startListHandler *StartListHandler
	clockHandler     *ClockHandler
	videoHandler     *VideoHandler

	allowedOrigin string
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, videoRoot, allowedOrigin string) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		latestHandler:    NewLatestHandler(deps),
		resultsHandler:   NewResultsHandler(deps),
		boardHandler:     NewBoardHandler(deps),
		referenceHandler: NewReferenceHandler(deps),
		startListHandler: NewStartListHandler(deps),
		clockHandler:     NewClockHandler(),
		videoHandler:     NewVideoHandler(videoRoot),
		allowedOrigin:    allowedOrigin,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(CORSMiddleware(s.allowedOrigin, MetricsMiddleware(h, endpoint))))
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))

	route("/api/latest", "latest", s.latestHandler.HandleLatest)
	route("/api/latestScore", "latestScore", s.latestHandler.HandleLatestScore)
	route("/api/onlineResults", "onlineResults", s.resultsHandler.HandleOnlineResults)
	route("/api/bg/latest", "bgLatest", s.boardHandler.HandleBoard)
	route("/api/bg/rankings", "bgRankings", s.boardHandler.HandleRankings)
	route("/api/categories", "categories", s.referenceHandler.HandleCategories)
	route("/api/displayCategories", "displayCategories", s.referenceHandler.HandleDisplayCategories)
	route("/api/rounds", "rounds", s.referenceHandler.HandleRounds)
	route("/api/categoryRoundExercises", "categoryRoundExercises", s.referenceHandler.HandleCategoryRoundExercises)
	route("/api/exerciseNumbers", "exerciseNumbers", s.referenceHandler.HandleExerciseNumbers)
	route("/api/competitorRanks", "competitorRanks", s.referenceHandler.HandleCompetitorRanks)
	route("/api/competitorRoundTotal", "competitorRoundTotal", s.referenceHandler.HandleCompetitorRoundTotal)
	route("/api/panelStatus", "panelStatus", s.referenceHandler.HandlePanelStatus)
	route("/api/eventInfo", "eventInfo", s.referenceHandler.HandleEventInfo)
	route("/api/qualifyingStartList", "qualifyingStartList", s.startListHandler.HandleQualifyingStartList)
	route("/api/roundStartList", "roundStartList", s.startListHandler.HandleRoundStartList)
	route("/api/roundStartListCompetitors", "roundStartListCompetitors", s.startListHandler.HandleRoundStartListCompetitors)
	route("/api/startListRounds", "startListRounds", s.startListHandler.HandleStartListRounds)
	route("/api/serverClock", "serverClock", s.clockHandler.HandleServerClock)
	route("/api/videoFile", "videoFile", s.videoHandler.HandleVideoFile)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServerError emits the uniform failure body. Every backend failure
// looks the same to callers; the cause goes to the log only.
func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Get().Error(r.Context(), "request failed",
		logger.String("path", r.URL.Path),
		logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Bad Request"})
}
