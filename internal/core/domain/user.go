package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicateCredentials is returned when a signup reuses an email
	// already present in the store.
	ErrDuplicateCredentials = errors.New("duplicate credentials")

	// ErrInvalidCredentials covers every failed login. The two wrapped
	// variants carry the internal reason; the boundary reports both with the
	// same status and message so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotValid      = fmt.Errorf("%w: email not valid", ErrInvalidCredentials)
	ErrPasswordNotValid   = fmt.Errorf("%w: password not valid", ErrInvalidCredentials)

	ErrUserNotFound = errors.New("user not found")
)

// User models a registered account. PasswordHash never leaves the process.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
