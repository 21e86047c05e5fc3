package models

import "time"

// Roles a user account can hold. Every account is created with RoleUser;
// RoleAdmin is assigned out-of-band (seeding, manual promotion).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID, server-assigned).
	ID string `json:"id"`

	// Email is the unique, normalized (trimmed, lower-cased) address the
	// user registers and logs in with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a bcrypt digest, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin and controls access to
	// admin-only endpoints.
	Role string `json:"role"`

	// Forenames and Surname are optional display names shown in
	// reservation listings. They are non-sensitive.
	Forenames string `json:"forenames,omitempty"`
	Surname   string `json:"surname,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
