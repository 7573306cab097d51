package apperror

import (
	"errors"
	"net/http"
)

// Input validation
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Lookup / uniqueness
var (
	ErrNotFound          = errors.New("not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrAlreadyRegistered = errors.New("email already registered")
)

// Authentication
var (
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidOTP        = errors.New("invalid or expired OTP")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
)

// Collaborators
var (
	ErrDeliveryFailed = errors.New("failed to send email")
	ErrStoreFailure   = errors.New("storage error")
)

// HTTPStatus maps a core error to the status code the API surfaces.
// Unknown errors are treated as opaque store/server failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidOTP),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInvalidCredential),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrAlreadyRegistered):
		// The original API reports these as plain bad requests; keep
		// the contract so existing clients see the same outcomes.
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
