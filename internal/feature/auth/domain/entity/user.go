// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// RoleAdmin is the only role with access to the moderation dashboard.
const RoleAdmin = "admin"

// User represents an admin account able to moderate listings.
// Accounts are reference data: there is no self-service signup or mutation.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role controls dashboard access. Currently only "admin" exists.
	Role string `gorm:"size:32;not null;default:admin"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
