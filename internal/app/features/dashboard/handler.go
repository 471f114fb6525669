// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	_ "github.com/dalemusser/bankadmin/internal/app/features/dashboard/views"
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: users,
		Log:   logger,
	}
}

// counts returns the dashboard view model without rendering it.
func (h *Handler) counts(r *http.Request) dashboardData {
	c := h.Users.Counts()
	return dashboardData{
		BaseVM:   viewdata.NewBaseVM(r, "Dashboard", "/"),
		Total:    c.Total,
		Active:   c.Active,
		Inactive: c.Inactive,
		Admins:   c.Admins,
	}
}

// ServeDashboard renders the record counts.
// GET /
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := h.counts(r)
	h.Log.Debug("dashboard served", zap.Int("users", data.Total))
	templates.Render(w, r, "dashboard_view", data)
}
