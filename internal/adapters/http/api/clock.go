// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// ClockHandler handles server clock requests
type ClockHandler struct{}

// NewClockHandler creates a new clock handler
func NewClockHandler() *ClockHandler {
	return &ClockHandler{}
}

type clockResponse struct {
	Time string `json:"time"`
}

// HandleServerClock handles GET /api/serverClock requests. Venue displays
// show this instead of their own clock so every screen agrees.
func (h *ClockHandler) HandleServerClock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, clockResponse{Time: time.Now().Format("15:04")})
}
