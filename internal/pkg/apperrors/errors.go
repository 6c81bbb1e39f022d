package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Application errors
var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationCodeTaken = errors.New("application code already exists")
	// ErrStatusNotChanged marks the no-op case: the application exists but
	// already carries the requested status, so nothing was written. Callers
	// must be able to tell this apart from ErrApplicationNotFound.
	ErrStatusNotChanged = errors.New("application status not changed")
	ErrInvalidStatus    = errors.New("invalid application status")
)

// Reference data errors
var (
	ErrSchoolNotFound             = errors.New("school not found")
	ErrSubjectCombinationNotFound = errors.New("subject combination not found")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// NewNotFoundError creates a custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a custom error for a malformed input field.
// The field name is carried so the API layer can point at the offending
// query parameter or body attribute.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewForbiddenError creates a custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// FieldOf returns the offending field name if err carries one.
func FieldOf(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Field
	}
	return ""
}
