package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when the resource exists but is outside the caller's scope.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("not authenticated")

// ErrForbidden indicates an authenticated caller is not allowed to use a surface.
var ErrForbidden = errors.New("forbidden")

// ErrProfileNotFound indicates the authenticated principal has no role record
// for the surface being used.
var ErrProfileNotFound = errors.New("profile not found")

// ErrAmbiguousIdentity indicates an email matched more than one role record.
var ErrAmbiguousIdentity = errors.New("ambiguous identity")

// ErrOperationNotAllowed indicates an action attempted from a disallowed lifecycle state.
var ErrOperationNotAllowed = errors.New("operation not allowed")

// AppError carries an HTTP-ish code, a caller-facing message and the
// underlying cause. errors.Is matches against the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
	// Fields holds per-field validation messages, keyed by JSON field name.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError around an arbitrary cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError returns an error matching ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewFieldValidationError returns a validation error with field-level detail.
func NewFieldValidationError(fields map[string]string) *AppError {
	return &AppError{Code: 400, Message: "invalid input", Err: ErrValidation, Fields: fields}
}

// NewConflictError returns an error matching ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewProfileNotFoundError returns an error matching ErrProfileNotFound,
// e.g. NewProfileNotFoundError("Manager").
func NewProfileNotFoundError(role string) *AppError {
	return &AppError{Code: 404, Message: role + " profile not found", Err: ErrProfileNotFound}
}

// NewOperationNotAllowedError returns an error matching ErrOperationNotAllowed.
func NewOperationNotAllowedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrOperationNotAllowed}
}

// Message returns the caller-facing message of err if it is an AppError,
// otherwise fallback.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// FieldErrors returns the field-level validation detail carried by err, if any.
func FieldErrors(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
