package model

import "time"

// Roles a user can hold. Every route is gated on one of these.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// User represents a registered user of the marketplace
type User struct {
	UserID       string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
