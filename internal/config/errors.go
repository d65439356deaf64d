package config

import (
	"errors"
	"fmt"
)

// ErrSettings is matched by every SettingsError through errors.Is.
var ErrSettings = errors.New("invalid settings")

// SettingsError reports a configuration value that could not be decoded or
// has the wrong shape.
type SettingsError struct {
	Msg string
}

func (e *SettingsError) Error() string {
	return e.Msg
}

// Is lets callers test for ErrSettings without a type assertion.
func (e *SettingsError) Is(target error) bool {
	return target == ErrSettings
}

func settingsErrorf(format string, args ...any) error {
	return &SettingsError{Msg: fmt.Sprintf(format, args...)}
}
