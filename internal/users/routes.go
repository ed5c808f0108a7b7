package users

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches the user endpoints to the router. The
// collection lives at /users/ with a trailing slash, matching the
// published API paths.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
