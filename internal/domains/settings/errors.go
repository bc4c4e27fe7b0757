package settings

import (
	"errors"
	"fmt"
)

var ErrSettingNotFound = errors.New("setting not found")

func NewGetSettingError(err error) error {
	return fmt.Errorf("failed to get setting: %w", err)
}

func NewSetSettingError(err error) error {
	return fmt.Errorf("failed to update setting: %w", err)
}
