package admin

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordNotConfigured means no admin password document exists.
	// Login never falls back to a built-in password.
	ErrPasswordNotConfigured = errors.New("admin password not configured")
)

func NewCredentialLookupError(err error) error {
	return fmt.Errorf("failed to resolve admin credentials: %w", err)
}

func NewPasswordUpdateError(err error) error {
	return fmt.Errorf("failed to update admin password: %w", err)
}
