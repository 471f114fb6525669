// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"github.com/dalemusser/bankadmin/internal/domain/models"
)

// Row used in the users table.
type userRow struct {
	ID          int
	Username    string
	Email       string
	Phone       string
	Role        string
	RoleClass   string
	Status      string
	StatusClass string
	IsActive    bool
}

// formVM is the Add or Edit dialog. Password is always rendered blank.
type formVM struct {
	Username string
	Email    string
	Phone    string
	Role     string
	Errors   inputval.Result

	Roles    []models.RoleOption
	Optional bool // password may be left blank
}

// Error returns the message for field, or "".
func (f formVM) Error(field string) string {
	return f.Errors.For(field)
}

// View model for the users page.
type listData struct {
	viewdata.BaseVM

	Rows   []userRow
	Total  int    // records in the store, before filtering
	Filter string // "", Active, Inactive

	Modal    string // none, add, edit, delete
	Selected *userRow
	Add      formVM
	Edit     formVM
}

func rowFor(u models.User) userRow {
	return userRow{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        string(u.Role),
		RoleClass:   interaction.RoleClass(u.Role),
		Status:      string(u.Status),
		StatusClass: interaction.StatusClass(u.Status),
		IsActive:    u.IsActive(),
	}
}

func formFor(b interaction.FormBuffer, errs inputval.Result, passwordOptional bool) formVM {
	return formVM{
		Username: b.Username,
		Email:    b.Email,
		Phone:    b.Phone,
		Role:     string(b.Role),
		Errors:   errs,
		Roles:    models.RoleOptions,
		Optional: passwordOptional,
	}
}
