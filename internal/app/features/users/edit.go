// internal/app/features/users/edit.go
package users

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/bankadmin/internal/app/features/errors"
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"go.uber.org/zap"
)

// HandleEditOpen selects a record and opens the Edit dialog seeded with its
// current values.
// POST /users/{id}/edit/open
func (h *Handler) HandleEditOpen(w http.ResponseWriter, r *http.Request) {
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
		err = ctl.OpenEdit(u)
	})
	if err != nil {
		h.conflict(w, r, c, err)
		return
	}
	redirectToList(w, r)
}

// HandleEdit validates the Edit form and, when it passes, overwrites the
// selected record. Id and status are never changed here.
// POST /users/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}
	buf := readBuffer(r)

	var (
		open      bool
		committed bool
		err       error
	)
	c.With(func(ctl *interaction.Controller) {
		if ctl.ActiveModal() != interaction.ModalEdit {
			return
		}
		open = true
		ctl.SetEditBuffer(buf)
		committed, err = ctl.SubmitEdit()
	})

	switch {
	case !open || errors.Is(err, interaction.ErrNoSelection):
		h.Log.Debug("edit submitted without open dialog")
		redirectToList(w, r)
	case errors.Is(err, userstore.ErrNotFound):
		h.Log.Info("edit target vanished", zap.Error(err))
		uierrors.RenderNotFound(w, r, "That user no longer exists.", "/users")
	case err != nil:
		h.ErrLog.LogServerError(w, r, "edit user failed", err, "Unable to save user.", "/users")
	case !committed:
		h.renderList(w, r, c, http.StatusUnprocessableEntity)
	default:
		c.SetFlash(htmlsanitize.Message("User <strong>%s</strong> updated.", buf.Username))
		redirectToList(w, r)
	}
}

// HandleEditCancel closes the Edit dialog and clears the selection.
// POST /users/edit/cancel
func (h *Handler) HandleEditCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	c.With(func(ctl *interaction.Controller) {
		ctl.CloseEdit()
	})
	redirectToList(w, r)
}
