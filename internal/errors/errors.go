package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrFormat       ErrorType = "FORMAT"
	ErrUpstream     ErrorType = "UPSTREAM"
	ErrNoData       ErrorType = "NO_DATA"
	ErrConfig       ErrorType = "CONFIG"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrInternal     ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// TypeOf returns the type of the first AppError in err's chain, or ErrInternal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrInternal
}

// MessageOf returns the message of the first AppError in err's chain, falling
// back to err.Error().
func MessageOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// is walks every AppError in the chain, so an upstream error caused by a
// format error answers to both.
func is(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// IsFormat checks if the error is a malformed date or timestamp
func IsFormat(err error) bool {
	return is(err, ErrFormat)
}

// IsUpstream checks if the error is an upstream fetch failure
func IsUpstream(err error) bool {
	return is(err, ErrUpstream)
}

// IsNoData checks if the error reports an empty result set
func IsNoData(err error) bool {
	return is(err, ErrNoData)
}

// IsConfig checks if the error is a configuration error
func IsConfig(err error) bool {
	return is(err, ErrConfig)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return is(err, ErrInvalidInput)
}

// IsValidationError reports whether the error was caused by client input.
// Format errors count, since dates come from request bodies and flags.
func IsValidationError(err error) bool {
	return IsInvalidInput(err) || IsFormat(err)
}

// NewFormatError creates a new format error
func NewFormatError(message string, err error) *AppError {
	return New(ErrFormat, message, err)
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(message string, err error) *AppError {
	return New(ErrUpstream, message, err)
}

// NewNoDataError creates a new no data error
func NewNoDataError(message string) *AppError {
	return New(ErrNoData, message, nil)
}

// NewConfigError creates a new configuration error
func NewConfigError(field, message string) *AppError {
	return New(ErrConfig, fmt.Sprintf("%s: %s", field, message), nil)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}
