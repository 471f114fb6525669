// internal/app/features/users/add.go
package users

import (
	"errors"
	"net/http"

	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"go.uber.org/zap"
)

// HandleAddOpen opens the Add dialog with a blank form.
// POST /users/add/open
func (h *Handler) HandleAddOpen(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}

	var err error
	c.With(func(ctl *interaction.Controller) {
		err = ctl.OpenAdd()
	})
	if err != nil {
		h.conflict(w, r, c, err)
		return
	}
	redirectToList(w, r)
}

// HandleAdd validates the Add form and, when it passes, creates the record.
// An invalid form re-renders the open dialog with field errors (422).
// POST /users/add
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}
	buf := readBuffer(r)

	var open, added bool
	c.With(func(ctl *interaction.Controller) {
		if ctl.ActiveModal() != interaction.ModalAdd {
			return
		}
		open = true
		ctl.SetAddBuffer(buf)
		added = ctl.SubmitAdd()
	})

	switch {
	case !open:
		// Stale form from a dialog that was already closed.
		h.Log.Debug("add submitted without open dialog")
		redirectToList(w, r)
	case !added:
		h.renderList(w, r, c, http.StatusUnprocessableEntity)
	default:
		c.SetFlash(htmlsanitize.Message("User <strong>%s</strong> added.", buf.Username))
		redirectToList(w, r)
	}
}

// HandleAddCancel closes the Add dialog and discards the form.
// POST /users/add/cancel
func (h *Handler) HandleAddCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	c.With(func(ctl *interaction.Controller) {
		ctl.CloseAdd()
	})
	redirectToList(w, r)
}

// conflict re-renders the page with the dialog that is already open.
func (h *Handler) conflict(w http.ResponseWriter, r *http.Request, c *console.Console, err error) {
	if !errors.Is(err, interaction.ErrModalBusy) {
		h.ErrLog.LogServerError(w, r, "open dialog failed", err, "Unable to open dialog.", "/users")
		return
	}
	h.Log.Debug("dialog busy", zap.Error(err))
	c.SetFlash(htmlsanitize.Message("Finish or cancel the open dialog first."))
	h.renderList(w, r, c, http.StatusConflict)
}
