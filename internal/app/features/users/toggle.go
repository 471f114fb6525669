// internal/app/features/users/toggle.go
package users

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/bankadmin/internal/app/features/errors"
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"github.com/dalemusser/bankadmin/internal/domain/models"
)

// HandleToggle flips a record between Active and Inactive. Any open dialog
// stays as it is.
// POST /users/{id}/toggle
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	u, ok := h.loadTarget(w, r)
	if !ok {
		return
	}

	var (
		st  models.Status
		err error
	)
	c.With(func(ctl *interaction.Controller) {
		st, err = ctl.ToggleStatus(u)
	})
	if errors.Is(err, userstore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "User not found.", "/users")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "toggle status failed", err, "Unable to change status.", "/users")
		return
	}

	c.SetFlash(htmlsanitize.Message("User <strong>%s</strong> is now %s.", u.Username, st))
	redirectToList(w, r)
}
