package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/commands/", h.listCommands)
		r.Get("/api/commands/{id}", h.getCommand)
		r.Post("/api/commands/{id}/views", h.recordView)
		r.Post("/api/commands/{id}/copies", h.recordCopy)
	})

	// routes where a token is used when present (anonymous rows otherwise)
	router.Group(func(r chi.Router) {
		r.Use(h.authOptional)
		r.Post("/api/activities/", h.logActivity)
	})

	// routes requiring authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/commands/", h.createCommand)
		r.Patch("/api/commands/{id}", h.patchCommand)
		r.Delete("/api/commands/{id}", h.deleteCommand)

		r.Get("/api/favorites/", h.listFavorites)
		r.Post("/api/favorites/", h.addFavorite)
		r.Delete("/api/favorites/{commandID}", h.removeFavorite)
	})

	return router
}
