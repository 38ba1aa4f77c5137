package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all simulation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/simulation", func(r chi.Router) {
		r.Get("/scene", h.HandleScene)
		r.Get("/modes", h.HandleModes)
		r.Post("/tick", h.HandleTick)
		r.Post("/refresh", h.HandleRefresh)
		r.Post("/reshuffle", h.HandleReshuffle)
	})
}
