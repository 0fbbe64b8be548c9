package common

import (
	"errors"
	"net/http"
)

// Common error sentinels.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")
	ErrValidation = errors.New("validation error")
)

// ErrorCode constants for machine-readable error identification, restricted
// to the kinds the matching service actually surfaces (spec.md §7).
const (
	ErrCodeValidation = "validation_error"
	ErrCodeNotFound   = "RESOURCE_NOT_FOUND"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError represents an application error with an HTTP status code and a
// machine-readable error code.
type AppError struct {
	Code      int    `json:"code"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError builds a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, ErrorCode: ErrCodeNotFound, Message: message, Err: ErrNotFound}
}

// NewBadRequestError builds a 400 AppError.
func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, ErrorCode: ErrCodeBadRequest, Message: message, Err: err}
}

// NewValidationError builds the validation_error kind spec.md §7 names. It is
// returned before any MatcherContext mutation happens.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, ErrorCode: ErrCodeValidation, Message: message, Err: ErrValidation}
}

// NewInternalError builds a 500 AppError.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, ErrorCode: ErrCodeInternal, Message: message, Err: err}
}
