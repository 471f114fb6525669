// internal/app/features/users/list.go
package users

import (
	"net/http"

	uierrors "github.com/dalemusser/bankadmin/internal/app/features/errors"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"github.com/dalemusser/bankadmin/internal/app/system/normalize"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList renders every record plus whichever dialog the caller's console
// has open.
// GET /users
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	c, ok := h.consoleFor(w, r)
	if !ok {
		return
	}
	h.renderList(w, r, c, http.StatusOK)
}

// renderList snapshots the console and renders the page with status. It
// takes the console lock itself, so callers must not hold it.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, c *console.Console, status int) {
	var st interaction.State
	c.With(func(ctl *interaction.Controller) {
		ctl.DropStale()
		st = ctl.State()
	})

	filter := statusFilter(r)
	records := h.Users.List()
	rows := make([]userRow, 0, len(records))
	for _, u := range records {
		if filter != "" && u.Status != filter {
			continue
		}
		rows = append(rows, rowFor(u))
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Users", "/"),
		Rows:   rows,
		Total:  len(records),
		Filter: string(filter),
		Modal:  st.Modal.String(),
		Add:    formFor(st.Add, st.AddErrors, false),
		Edit:   formFor(st.Edit, st.EditErrors, true),
	}
	if st.Selected != nil {
		sel := rowFor(*st.Selected)
		data.Selected = &sel
	}

	if status != http.StatusOK {
		uierrors.WriteStatus(w, status)
	}
	templates.Render(w, r, "users_list", data)
}

// statusFilter reads the optional ?status= list filter. Unknown values are
// ignored.
func statusFilter(r *http.Request) models.Status {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return ""
	}
	st := normalize.Status(raw)
	for _, known := range models.Statuses() {
		if st == known {
			return st
		}
	}
	return ""
}
