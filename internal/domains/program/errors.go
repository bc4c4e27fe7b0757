package program

import (
	"errors"
	"fmt"
)

var (
	ErrProgramNotFound = errors.New("program not found")

	// ErrAlreadySeeded guards the seed command: defaults are only
	// persisted into an empty collection.
	ErrAlreadySeeded = errors.New("programs collection is not empty")
)

func NewListProgramsError(err error) error {
	return fmt.Errorf("failed to list programs: %w", err)
}

func NewCreateProgramError(err error) error {
	return fmt.Errorf("failed to add program: %w", err)
}

func NewUpdateProgramError(err error) error {
	return fmt.Errorf("failed to update program: %w", err)
}

func NewDeleteProgramError(err error) error {
	return fmt.Errorf("failed to remove program: %w", err)
}
