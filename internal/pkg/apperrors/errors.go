package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrInvalidObjectID  = errors.New("invalid object id")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Duplicate-guard errors. These are surfaced to callers as a normal
	// 200 response carrying a message field, matching the legacy contract.
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrSubmissionAlreadyExists = errors.New("assignment already submitted")

	// Downstream errors
	ErrStoreUnavailable   = errors.New("document store unavailable")
	ErrPaymentGateway     = errors.New("payment gateway error")
	ErrDownstreamTimedOut = errors.New("downstream call timed out")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
