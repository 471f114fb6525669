// Package interaction sequences the Add, Edit and Delete dialogs of the user
// management screen and gates every mutation behind validation.
//
// A Controller holds the transient state of one UI session: which dialog is
// open, which record it refers to, and the staged Add/Edit form values. It
// owns no records. Records live in a Collection shared by all sessions and
// are referenced here by id and insertion serial only, so a record deleted
// elsewhere is never confused with a later one that reuses its id.
//
// Lifecycle per dialog:
//
//	None --OpenAdd--> Add --CloseAdd or valid SubmitAdd--> None
//	None --OpenEdit--> Edit --CloseEdit or valid SubmitEdit--> None
//	None --OpenDelete--> Delete --CloseDelete or ConfirmDelete--> None
//
// An invalid submit leaves the dialog open with its buffer and field errors.
//
// A Controller is not safe for concurrent use; the caller serializes access.
package interaction

import (
	"errors"
	"fmt"

	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"go.uber.org/zap"
)

var (
	// ErrModalBusy is returned when a dialog is opened while a different one
	// is still open.
	ErrModalBusy = errors.New("another dialog is open")

	// ErrNoSelection is returned when an edit is submitted without an open
	// Edit dialog and selected record.
	ErrNoSelection = errors.New("no record selected")
)

// Collection is the store the controller commits to. It is trusted to apply
// each primitive without further checks.
type Collection interface {
	Create(u models.User) models.User
	Replace(ref models.Ref, f models.UserFields) error
	Remove(ref models.Ref) error
	ToggleStatus(id int) (models.Status, error)
	Get(id int) (models.User, error)
}

// Controller is the per-session dialog state machine.
type Controller struct {
	users Collection
	log   *zap.Logger

	modal    Modal
	selected models.Ref // zero when nothing is selected

	addBuf  FormBuffer
	editBuf FormBuffer

	addErrs  inputval.Result
	editErrs inputval.Result
}

// New returns an idle controller committing to users.
func New(users Collection, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		users:  users,
		log:    logger,
		addBuf: blankAddBuffer(),
	}
}

// ActiveModal returns the open dialog.
func (c *Controller) ActiveModal() Modal {
	return c.modal
}

// Selected returns the live copy of the selected record. ok is false when
// nothing is selected or the record no longer exists, including when its id
// now belongs to a different record.
func (c *Controller) Selected() (models.User, bool) {
	if c.selected.ID == 0 {
		return models.User{}, false
	}
	u, err := c.users.Get(c.selected.ID)
	if err != nil || !c.selected.Matches(u) {
		return models.User{}, false
	}
	return u, true
}

// SelectedID returns the id of the selected record, or 0.
func (c *Controller) SelectedID() int {
	return c.selected.ID
}

/*─────────────────────────────────────────────────────────────────────────────*
| Add                                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// OpenAdd opens the Add dialog with a blank buffer and role preset to User.
func (c *Controller) OpenAdd() error {
	if err := c.checkFree(ModalAdd); err != nil {
		return err
	}
	c.modal = ModalAdd
	c.addBuf = blankAddBuffer()
	c.addErrs = inputval.Result{}
	return nil
}

// CloseAdd closes the Add dialog and clears its buffer.
func (c *Controller) CloseAdd() {
	if c.modal == ModalAdd {
		c.modal = ModalNone
	}
	c.addBuf = blankAddBuffer()
	c.addErrs = inputval.Result{}
}

// SetAddBuffer stages submitted Add form values.
func (c *Controller) SetAddBuffer(b FormBuffer) {
	c.addBuf = b
}

// SubmitAdd validates the Add buffer and, if it passes, appends a new Active
// record with a freshly assigned id and closes the dialog. It reports whether
// a record was added. The password is checked and then discarded.
func (c *Controller) SubmitAdd() bool {
	if c.modal != ModalAdd {
		c.log.Debug("add submitted without open dialog", zap.Stringer("modal", c.modal))
		return false
	}

	res := inputval.Validate(inputval.AddUserRules, c.addBuf.values())
	if res.HasErrors() {
		c.log.Debug("add rejected", zap.Int("errors", len(res.Errors)), zap.String("first", res.First()))
		c.addErrs = res
		return false
	}

	f := c.addBuf.fields()
	created := c.users.Create(models.User{
		Username: f.Username,
		Email:    f.Email,
		Phone:    f.Phone,
		Role:     f.Role,
		Status:   models.StatusActive,
	})
	c.log.Info("user added",
		zap.Int("user_id", created.ID),
		zap.String("username", created.Username),
		zap.String("role", string(created.Role)))

	c.CloseAdd()
	return true
}

/*─────────────────────────────────────────────────────────────────────────────*
| Edit                                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// OpenEdit selects u and opens the Edit dialog seeded from u's current
// fields, with the password left blank.
func (c *Controller) OpenEdit(u models.User) error {
	if err := c.checkFree(ModalEdit); err != nil {
		return err
	}
	c.modal = ModalEdit
	c.selected = u.Ref()
	c.editBuf = editBufferFor(u)
	c.editErrs = inputval.Result{}
	return nil
}

// CloseEdit closes the Edit dialog, clears the selection and the buffer.
func (c *Controller) CloseEdit() {
	if c.modal == ModalEdit {
		c.modal = ModalNone
		c.selected = models.Ref{}
	}
	c.editBuf = FormBuffer{}
	c.editErrs = inputval.Result{}
}

// SetEditBuffer stages submitted Edit form values.
func (c *Controller) SetEditBuffer(b FormBuffer) {
	c.editBuf = b
}

// SubmitEdit validates the Edit buffer and, if it passes, overwrites the
// selected record's username, email, phone and role, then closes the dialog.
// Id and status are never changed. The password is optional and discarded.
//
// committed is false for an invalid buffer (dialog stays open, err is nil).
// ErrNoSelection means no Edit dialog is open. If the record vanished in the
// meantime the dialog is closed and the store's error is returned wrapped.
func (c *Controller) SubmitEdit() (committed bool, err error) {
	if c.modal != ModalEdit || c.selected.ID == 0 {
		return false, ErrNoSelection
	}

	res := inputval.Validate(inputval.EditUserRules, c.editBuf.values())
	if res.HasErrors() {
		c.log.Debug("edit rejected", zap.Int("errors", len(res.Errors)), zap.String("first", res.First()))
		c.editErrs = res
		return false, nil
	}

	id := c.selected.ID
	if err := c.users.Replace(c.selected, c.editBuf.fields()); err != nil {
		c.log.Debug("edit target missing", zap.Int("user_id", id), zap.Error(err))
		c.CloseEdit()
		return false, fmt.Errorf("replace user %d: %w", id, err)
	}
	c.log.Info("user updated", zap.Int("user_id", id))

	c.CloseEdit()
	return true, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Delete                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// OpenDelete selects u and opens the Delete confirmation.
func (c *Controller) OpenDelete(u models.User) error {
	if err := c.checkFree(ModalDelete); err != nil {
		return err
	}
	c.modal = ModalDelete
	c.selected = u.Ref()
	return nil
}

// CloseDelete closes the Delete confirmation and clears the selection.
func (c *Controller) CloseDelete() {
	if c.modal == ModalDelete {
		c.modal = ModalNone
		c.selected = models.Ref{}
	}
}

// ConfirmDelete removes the selected record and closes the confirmation.
// With nothing selected it does nothing and reports false. A record that was
// already removed elsewhere still counts as deleted; a newer record that
// reuses its id is left alone.
func (c *Controller) ConfirmDelete() bool {
	if c.modal != ModalDelete || c.selected.ID == 0 {
		return false
	}

	id := c.selected.ID
	if err := c.users.Remove(c.selected); err != nil {
		c.log.Debug("delete target already gone", zap.Int("user_id", id), zap.Error(err))
	} else {
		c.log.Info("user deleted", zap.Int("user_id", id))
	}

	c.CloseDelete()
	return true
}

/*─────────────────────────────────────────────────────────────────────────────*
| Toggle                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// ToggleStatus flips u between Active and Inactive immediately and returns
// the status the stored record now has. No dialog is involved and the current
// dialog state is left alone.
func (c *Controller) ToggleStatus(u models.User) (models.Status, error) {
	st, err := c.users.ToggleStatus(u.ID)
	if err != nil {
		return "", fmt.Errorf("toggle user %d: %w", u.ID, err)
	}
	c.log.Info("user status toggled", zap.Int("user_id", u.ID), zap.String("status", string(st)))
	return st, nil
}

// checkFree allows opening want when nothing is open or want itself is open.
func (c *Controller) checkFree(want Modal) error {
	if c.modal == ModalNone || c.modal == want {
		return nil
	}
	return fmt.Errorf("open %s: %w (%s)", want, ErrModalBusy, c.modal)
}
