package interaction

import (
	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/domain/models"
)

// FormBuffer holds staged, uncommitted values for the Add or Edit form.
// Password is captured so it can be validated but is never written to a
// record.
type FormBuffer struct {
	Username string
	Password string
	Email    string
	Phone    string
	Role     models.Role
}

func blankAddBuffer() FormBuffer {
	return FormBuffer{Role: models.RoleUser}
}

func editBufferFor(u models.User) FormBuffer {
	return FormBuffer{
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

func (b FormBuffer) values() map[string]string {
	return map[string]string{
		inputval.FieldUsername: b.Username,
		inputval.FieldPassword: b.Password,
		inputval.FieldEmail:    b.Email,
		inputval.FieldPhone:    b.Phone,
		inputval.FieldRole:     string(b.Role),
	}
}

func (b FormBuffer) fields() models.UserFields {
	return models.UserFields{
		Username: b.Username,
		Email:    b.Email,
		Phone:    b.Phone,
		Role:     b.Role,
	}
}
