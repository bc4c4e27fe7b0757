package business

import (
	"errors"
	"fmt"
)

var ErrBusinessNotFound = errors.New("business not found")

func NewListBusinessesError(err error) error {
	return fmt.Errorf("failed to list businesses: %w", err)
}

func NewCreateBusinessError(err error) error {
	return fmt.Errorf("failed to add business: %w", err)
}

func NewUpdateBusinessError(err error) error {
	return fmt.Errorf("failed to update business: %w", err)
}

func NewDeleteBusinessError(err error) error {
	return fmt.Errorf("failed to remove business: %w", err)
}
