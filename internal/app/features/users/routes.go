// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user management screen and its dialog intents under
// the path where this router is mounted (typically "/users").
//
// Every intent is a POST that redirects back to the list on success, so a
// browser refresh never repeats a mutation.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	// Add dialog
	r.Post("/add/open", h.HandleAddOpen)
	r.Post("/add", h.HandleAdd)
	r.Post("/add/cancel", h.HandleAddCancel)

	// Edit dialog
	r.Post("/{id}/edit/open", h.HandleEditOpen)
	r.Post("/edit", h.HandleEdit)
	r.Post("/edit/cancel", h.HandleEditCancel)

	// Delete confirmation
	r.Post("/{id}/delete/open", h.HandleDeleteOpen)
	r.Post("/delete", h.HandleDelete)
	r.Post("/delete/cancel", h.HandleDeleteCancel)

	// Immediate status flip
	r.Post("/{id}/toggle", h.HandleToggle)

	return r
}
