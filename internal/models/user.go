package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleProvider UserRole = "PROVIDER"
	RoleStudent  UserRole = "STUDENT"
	RoleVerifier UserRole = "VERIFIER"
)

// User is an application user from the in-memory roster. Passwords are kept
// in plaintext; this service has no real authentication layer.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
