package interaction

import "github.com/dalemusser/bankadmin/internal/domain/models"

// RoleClass maps a role to its display tag.
func RoleClass(r models.Role) string {
	if r == models.RoleAdmin {
		return "role-admin"
	}
	return "role-user"
}

// StatusClass maps a status to its display tag.
func StatusClass(s models.Status) string {
	if s == models.StatusActive {
		return "status-active"
	}
	return "status-inactive"
}
