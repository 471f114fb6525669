// internal/domain/models/roles.go
package models

// RoleOption is a role choice for the UI.
type RoleOption struct {
	Value Role   // The value stored on the record
	Label string // The display label in the UI
}

// RoleOptions lists the roles offered in the Add and Edit forms, in display order.
var RoleOptions = []RoleOption{
	{Value: RoleUser, Label: "User"},
	{Value: RoleAdmin, Label: "Admin"},
}

// Roles returns the valid role values in display order.
func Roles() []Role {
	out := make([]Role, 0, len(RoleOptions))
	for _, o := range RoleOptions {
		out = append(out, o.Value)
	}
	return out
}

// Statuses returns the valid status values.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive}
}
