// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderNotFound shows a friendly "not found" page with status 404.
// If backURL is empty, it resolves a safe back URL with "/" as fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page with status 400.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows a generic failure page with status 500.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong."
	}
	render(w, r, http.StatusInternalServerError, "Server error", msg, backURL)
}

// WriteStatus sets an HTML content type and writes status ahead of a
// template render.
func WriteStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
}

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	data := newPageData(r, status, title, msg, backURL)
	WriteStatus(w, status)
	templates.Render(w, r, "error_page", data)
}
