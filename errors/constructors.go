package errors

import (
	"fmt"
)

// AccessError reports that a directory could not be enumerated.
func AccessError(path string, cause error) *BrowseError {
	return Wrap(cause, ErrCodeAccess, fmt.Sprintf("cannot list %s", path)).
		WithDetail("path", path)
}

// ReadError reports that a file could not be opened or decoded as text.
func ReadError(path string, cause error) *BrowseError {
	return Wrap(cause, ErrCodeRead, fmt.Sprintf("cannot read %s", path)).
		WithDetail("path", path)
}

// NotFound creates a path not found error
func NotFound(path string, cause error) *BrowseError {
	return Wrap(cause, ErrCodeNotFound, fmt.Sprintf("no such file or directory: %s", path)).
		WithDetail("path", path)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *BrowseError {
	return New(ErrCodeInvalidInput, reason)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *BrowseError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *BrowseError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// NotATerminal reports that an interactive command was run without a TTY.
func NotATerminal(command string) *BrowseError {
	return New(ErrCodeNotATerminal, fmt.Sprintf("'%s' needs an interactive terminal", command)).
		WithDetail("command", command)
}
