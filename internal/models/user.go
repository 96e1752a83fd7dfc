package models

import "time"

// UserDB represents a user row in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                     // Primary key
	Name         string    `json:"name" db:"name"`                 // Display name
	Email        string    `json:"email" db:"email"`               // Unique email address
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt digest
	City         *string   `json:"city" db:"city"`                 // Optional city
	Country      *string   `json:"country" db:"country"`           // Optional country
	AuthToken    *string   `json:"-" db:"auth_token"`              // Current session token, nil when logged out
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
