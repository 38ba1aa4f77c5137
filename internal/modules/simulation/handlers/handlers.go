// Package handlers provides HTTP handlers for simulation operations.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mkarvelas/marketglow/internal/modules/simulation"
	"github.com/mkarvelas/marketglow/internal/physics"
)

// Handler handles simulation HTTP requests
type Handler struct {
	service *simulation.Service
	log     zerolog.Logger
}

// NewHandler creates a new simulation handler
func NewHandler(service *simulation.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "simulation").Logger(),
	}
}

// TickRequest represents a request to advance the simulation. Strength is
// a pointer so an explicit zero (attraction off) or negative value
// (repulsion) is distinguishable from the field being absent.
type TickRequest struct {
	Mode     string   `json:"mode"`
	Strength *float64 `json:"strength"`
	Frames   int      `json:"frames"`
}

// HandleScene handles GET /api/simulation/scene
func (h *Handler) HandleScene(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Scene())
}

// HandleTick handles POST /api/simulation/tick.
// An unrecognized mode is accepted and behaves as no attraction, matching
// the solver's no-op semantics.
func (h *Handler) HandleTick(w http.ResponseWriter, r *http.Request) {
	var req TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode tick request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	strength := h.service.DefaultStrength()
	if req.Strength != nil {
		strength = *req.Strength
	}

	scene := h.service.Tick(physics.Mode(req.Mode), strength, req.Frames)
	h.writeJSON(w, http.StatusOK, scene)
}

// HandleRefresh handles POST /api/simulation/refresh
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.log.Error().Err(err).Msg("Snapshot refresh failed")
		http.Error(w, "Failed to refresh snapshot", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Scene())
}

// HandleReshuffle handles POST /api/simulation/reshuffle
func (h *Handler) HandleReshuffle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reshuffle(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Scene())
}

// HandleModes handles GET /api/simulation/modes
func (h *Handler) HandleModes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"modes": physics.Modes(),
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
