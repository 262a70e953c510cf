package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("not logged in")
	ErrUnsupportedMethod = errors.New("unsupported http method")
	ErrInvalidResponse   = errors.New("invalid response")
)

// ValidationError is a local, pre-network rejection. Its message is meant to
// be shown to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func Validation(message string) error {
	return &ValidationError{Message: message}
}
