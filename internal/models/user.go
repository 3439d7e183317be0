package models

// UserRole represents the role of a user in the store
type UserRole string

const (
	UserRoleCustomer UserRole = "CLIENTE"
	UserRoleAdmin    UserRole = "ADMIN"
)

// User represents an authenticated user as resolved from the store API.
// JSON field names follow the store API wire format.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"nombre"`
	Email string   `json:"email"`
	Phone string   `json:"telefono,omitempty"`
	Role  UserRole `json:"rol"`
}

// IsAdmin reports whether the user may access the admin panel
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
