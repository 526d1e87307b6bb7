package domain

import "errors"

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrBadToken = errors.New("token invalid or expired")
var ErrSecretMissing = errors.New("signing secret not configured")

// ValidationError reports the first payload rule a client request violated.
// The message is surfaced verbatim in the HTTP response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given client message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
