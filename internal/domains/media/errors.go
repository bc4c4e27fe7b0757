package media

import (
	"errors"
	"fmt"
)

var (
	ErrNoFile     = errors.New("no file provided")
	ErrNotAnImage = errors.New("only image files are allowed")
	ErrTooLarge   = errors.New("file size must be less than 10MB")
)

func NewUploadError(err error) error {
	return fmt.Errorf("failed to upload image: %w", err)
}

func NewDeleteError(err error) error {
	return fmt.Errorf("failed to delete image: %w", err)
}
