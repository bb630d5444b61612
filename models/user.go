package models

import "time"

// User represents an account entity used for authentication and for scoping
// favorites and activity rows. Credential material never leaves the server
// process.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Name is the optional display name.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext password on register/login requests
	// only; it is never persisted or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in the users table.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated user context the client layer scopes
// favorite and activity rows by. A nil *Identity means "not signed in".
type Identity struct {
	UserID int64
	Email  string
}
