// internal/domain/models/user.go
package models

// Role is the access level shown for a managed user.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Status is whether a managed user is currently enabled.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// User is one row of the managed user collection.
//
// ID is assigned once by the store and never changes. Status starts Active
// and only flips through an explicit toggle.
//
// Serial is stamped by the store on insertion and is never reused, so it tells
// apart two records that carried the same ID at different times.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
	Status   Status `json:"status"`
	Serial   uint64 `json:"-"`
}

// Ref names one stored record. A zero Serial matches whatever record
// currently holds ID.
type Ref struct {
	ID     int
	Serial uint64
}

// Ref returns the reference to exactly this record.
func (u User) Ref() Ref {
	return Ref{ID: u.ID, Serial: u.Serial}
}

// Matches reports whether u is the record r refers to.
func (r Ref) Matches(u User) bool {
	return r.ID == u.ID && (r.Serial == 0 || r.Serial == u.Serial)
}

// UserFields holds the fields an edit may overwrite.
type UserFields struct {
	Username string
	Email    string
	Phone    string
	Role     Role
}

// Fields returns the editable part of u.
func (u User) Fields() UserFields {
	return UserFields{
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

// IsActive reports whether the user is enabled.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// Flip returns the opposite status.
func (s Status) Flip() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// SeedUsers returns the starting collection used when seeding is enabled.
// A fresh slice is returned on every call.
func SeedUsers() []User {
	return []User{
		{ID: 1, Username: "admin", Email: "admin@bank.com", Phone: "+1234567890", Role: RoleAdmin, Status: StatusActive},
		{ID: 2, Username: "user1", Email: "user1@bank.com", Phone: "+1234567891", Role: RoleUser, Status: StatusActive},
		{ID: 3, Username: "user2", Email: "user2@bank.com", Phone: "+1234567892", Role: RoleUser, Status: StatusActive},
		{ID: 4, Username: "user3", Email: "user3@bank.com", Phone: "+1234567893", Role: RoleUser, Status: StatusInactive},
	}
}
