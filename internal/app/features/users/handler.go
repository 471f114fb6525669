// internal/app/features/users/handler.go
package users

import (
	"net/http"

	uierrors "github.com/dalemusser/bankadmin/internal/app/features/errors"
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the user management handler bound to the shared
// user store.
func NewHandler(users *userstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Log:    logger,
		ErrLog: errLog,
	}
}

// consoleFor returns the caller's console. A missing console means the
// session middleware was not mounted, which is a wiring bug.
func (h *Handler) consoleFor(w http.ResponseWriter, r *http.Request) (*console.Console, bool) {
	c, ok := console.FromRequest(r)
	if !ok {
		h.ErrLog.LogServerError(w, r, "no console on request", nil, "Your session could not be loaded.", "/")
		return nil, false
	}
	return c, true
}

func redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
