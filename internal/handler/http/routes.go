package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.verifyHash)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes scoped to the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/user", h.currentUser)
		r.Get("/api/profiles/me", h.getProfile)

		r.Get("/api/notes", h.listNotes)
		r.With(h.verifyHash).Post("/api/notes", h.createNote)
		r.With(h.verifyHash).Patch("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Get("/api/notes/{id}/html", h.renderNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
