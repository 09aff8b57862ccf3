package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Filesystem errors
	ErrCodeAccess   ErrorCode = "ACCESS_ERROR"
	ErrCodeRead     ErrorCode = "READ_ERROR"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotATerminal ErrorCode = "NOT_A_TERMINAL"
)

// BrowseError represents a structured error with context
type BrowseError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *BrowseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BrowseError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *BrowseError) WithDetail(key string, value interface{}) *BrowseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Path returns the "path" detail, or "" when the error carries none.
func (e *BrowseError) Path() string {
	if p, ok := e.Details["path"].(string); ok {
		return p
	}
	return ""
}

// ToJSON converts the error to JSON
func (e *BrowseError) ToJSON() string {
	data, _ := json.MarshalIndent(struct {
		*BrowseError
		Cause string `json:"cause,omitempty"`
	}{e, causeString(e.Cause)}, "", "  ")
	return string(data)
}

func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// New creates a new BrowseError
func New(code ErrorCode, message string) *BrowseError {
	return &BrowseError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BrowseError
func Wrap(err error, code ErrorCode, message string) *BrowseError {
	return &BrowseError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific BrowseError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	browseErr, ok := err.(*BrowseError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return browseErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	browseErr, ok := err.(*BrowseError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return browseErr.Code
}

// As returns the outermost BrowseError in err's chain.
func As(err error) (*BrowseError, bool) {
	for err != nil {
		if browseErr, ok := err.(*BrowseError); ok {
			return browseErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
