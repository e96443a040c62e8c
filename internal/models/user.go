package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported account roles carried in tokens
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CodePurpose tells which pending code of an account an OTP belongs to.
type CodePurpose string

// Supported code purposes
const (
	PurposeSignup CodePurpose = "signup"
	PurposeReset  CodePurpose = "reset"
)

// Title returns the human readable name used in notifications.
func (p CodePurpose) Title() string {
	switch p {
	case PurposeSignup:
		return "Account Verification"
	case PurposeReset:
		return "Password Reset"
	default:
		return string(p)
	}
}

// PendingCode is a one-time code waiting to be consumed.
type PendingCode struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is no longer valid at now.
func (c *PendingCode) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID  `json:"id" db:"user_id"`              // Primary key
	Username       string     `json:"username" db:"username"`       // Unique username
	Email          string     `json:"email" db:"email"`             // Unique, lower-cased email
	PasswordHash   string     `json:"-" db:"password_hash"`         // bcrypt hash
	IsVerified     bool       `json:"is_verified" db:"is_verified"` // Set once the signup OTP is consumed
	OTPCode        *string    `json:"-" db:"otp_code"`              // Pending signup code
	OTPExpiresAt   *time.Time `json:"-" db:"otp_expires_at"`        // Signup code expiry
	ResetCode      *string    `json:"-" db:"reset_code"`            // Pending password reset code
	ResetExpiresAt *time.Time `json:"-" db:"reset_expires_at"`      // Reset code expiry
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// PendingCode returns the stored code for purpose, or nil when none is pending.
func (u *UserDB) PendingCode(purpose CodePurpose) *PendingCode {
	var code *string
	var exp *time.Time
	switch purpose {
	case PurposeSignup:
		code, exp = u.OTPCode, u.OTPExpiresAt
	case PurposeReset:
		code, exp = u.ResetCode, u.ResetExpiresAt
	}
	if code == nil || exp == nil {
		return nil
	}
	return &PendingCode{Code: *code, ExpiresAt: *exp}
}
