package registration

import (
	"errors"
	"fmt"
)

var ErrRegistrationNotFound = errors.New("registration not found")

func NewListRegistrationsError(err error) error {
	return fmt.Errorf("failed to list registrations: %w", err)
}

func NewCreateRegistrationError(err error) error {
	return fmt.Errorf("failed to add registration: %w", err)
}

func NewUpdateRegistrationError(err error) error {
	return fmt.Errorf("failed to update registration: %w", err)
}

func NewDeleteRegistrationError(err error) error {
	return fmt.Errorf("failed to remove registration: %w", err)
}
