package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminDB represents an administrator record in the database
type AdminDB struct {
	AdminID      uuid.UUID `json:"id" db:"admin_id"`           // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
