package handlers

import (
	"github.com/go-chi/chi"
)

// Routes for app. Every path and method lands on the update handler.
func (h *Handlers) Routes() chi.Router {
	router := chi.NewRouter()

	router.Handle("/", h.handleUpdates())
	router.Handle("/*", h.handleUpdates())

	return router
}
