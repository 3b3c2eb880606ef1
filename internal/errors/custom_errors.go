package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the stores. Handlers and the error mapper
// match on these with errors.Is.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrAlreadySaved     = errors.New("property already saved")
	ErrNotSaved         = errors.New("property not saved")
)

// AppError represents a structured application error with user-friendly and
// technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodePropertyNotFound   = "PROPERTY_NOT_FOUND"
	ErrCodeAlreadySaved       = "ALREADY_SAVED"
	ErrCodeNotSaved           = "NOT_SAVED"
	ErrCodeInvalidParameters  = "INVALID_PARAMETERS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
)
