package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. The HTTP layer
// maps them to status codes in one place (internal/api/error_handler.go).
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response never reveals which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token verification failure (malformed,
	// tampered, expired). The distinction lives in the wrapped cause and is
	// visible in logs only.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRecoveryFailed covers every failure of the (email, birthdate)
	// recovery pair without revealing which half mismatched.
	ErrRecoveryFailed = errors.New("recovery details do not match any account")

	ErrForbidden         = errors.New("forbidden")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrImageNotFound     = errors.New("image not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError marks rejected client input. Its message is safe to return
// to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
