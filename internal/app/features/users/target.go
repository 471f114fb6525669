// internal/app/features/users/target.go
package users

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/bankadmin/internal/app/features/errors"
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/normalize"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// loadTarget resolves the {id} URL parameter to a live record. On failure it
// has already written the error page.
func (h *Handler) loadTarget(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	raw := chi.URLParam(r, "id")
	id, ok := normalize.ID(raw)
	if !ok {
		uierrors.RenderBadRequest(w, r, "Invalid user id.", "/users")
		return models.User{}, false
	}

	u, err := h.Users.Get(id)
	if errors.Is(err, userstore.ErrNotFound) {
		h.Log.Debug("user not found", zap.Int("user_id", id))
		uierrors.RenderNotFound(w, r, "User not found.", "/users")
		return models.User{}, false
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load user failed", err, "Unable to load user.", "/users")
		return models.User{}, false
	}
	return u, true
}
