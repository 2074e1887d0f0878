package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDisabledUser       = errors.New("user account is disabled")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrFullNameRequired   = errors.New("full name is required")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

// User represents a customer or admin account.
// New accounts start unverified; an admin flips Verified before the
// customer is allowed to book.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Verified     bool
	IsAdmin      bool
	Disabled     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	FullName string
	Verified *bool // Use pointer to distinguish between false and nil (not set)
	Disabled *bool

	Page     int
	PageSize int
}
