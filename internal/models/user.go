package models

import "time"

// User represents a registered customer account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the login address. Unique, compared exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// Optional profile fields supplied at registration.
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"-"`
}
