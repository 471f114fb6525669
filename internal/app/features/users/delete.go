// internal/app/features/users/delete.go
package users

import (
	"net/http"

	"github.com/dalemusser/bankadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
)

// HandleDeleteOpen selects a record and asks for confirmation.
// POST /users/{id}/delete/open
func (h *Handler) HandleDeleteOpen(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	u, ok := h.loadTarget(w, r)
	if !ok {
		return
	}

	var err error
	c.With(func(ctl *interaction.Controller) {
		err = ctl.OpenDelete(u)
	})
	if err != nil {
		h.conflict(w, r, c, err)
		return
	}
	redirectToList(w, r)
}

// HandleDelete removes the selected record. With nothing selected it is a
// no-op.
// POST /users/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}

	var (
		name    string
		deleted bool
	)
	c.With(func(ctl *interaction.Controller) {
		if u, ok := ctl.Selected(); ok {
			name = u.Username
		}
		deleted = ctl.ConfirmDelete()
	})

	if deleted && name != "" {
		c.SetFlash(htmlsanitize.Message("User <strong>%s</strong> deleted.", name))
	}
	redirectToList(w, r)
}

// HandleDeleteCancel closes the confirmation without deleting.
// POST /users/delete/cancel
func (h *Handler) HandleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	c.With(func(ctl *interaction.Controller) {
		ctl.CloseDelete()
	})
	redirectToList(w, r)
}
