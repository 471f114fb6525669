// internal/app/features/users/form.go
package users

import (
	"net/http"

	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"github.com/dalemusser/bankadmin/internal/app/system/normalize"
)

// readBuffer reads the Add/Edit form fields. r.ParseForm must have been
// called.
func readBuffer(r *http.Request) interaction.FormBuffer {
	return interaction.FormBuffer{
		Username: normalize.Username(r.PostFormValue(inputval.FieldUsername)),
		Password: r.PostFormValue(inputval.FieldPassword),
		Email:    normalize.Email(r.PostFormValue(inputval.FieldEmail)),
		Phone:    normalize.Phone(r.PostFormValue(inputval.FieldPhone)),
		Role:     normalize.Role(r.PostFormValue(inputval.FieldRole)),
	}
}
