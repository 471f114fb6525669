package interaction

import (
	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"go.uber.org/zap"
)

// State is a read-only snapshot of a controller for rendering.
//
// Buffers never carry the password back out; it is write-only.
type State struct {
	Modal      Modal
	Selected   *models.User
	Add        FormBuffer
	Edit       FormBuffer
	AddErrors  inputval.Result
	EditErrors inputval.Result
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	st := State{
		Modal:      c.modal,
		Add:        c.addBuf,
		Edit:       c.editBuf,
		AddErrors:  c.addErrs,
		EditErrors: c.editErrs,
	}
	st.Add.Password = ""
	st.Edit.Password = ""
	if u, ok := c.Selected(); ok {
		st.Selected = &u
	}
	return st
}

// DropStale closes an Edit or Delete dialog whose selected record no longer
// exists, e.g. because another session deleted it, even if a newer record has
// since been given the same id. It reports whether a dialog was closed.
func (c *Controller) DropStale() bool {
	if !c.modal.needsSelection() {
		return false
	}
	if _, ok := c.Selected(); ok {
		return false
	}
	id := c.selected.ID
	switch c.modal {
	case ModalEdit:
		c.CloseEdit()
	case ModalDelete:
		c.CloseDelete()
	}
	c.log.Debug("closed dialog for missing record", zap.Int("user_id", id))
	return true
}
