package services

import "errors"

// Domain error taxonomy. Repositories map driver-level failures onto these
// sentinels so handlers can translate them with errors.Is.
var (
	ErrNotAuthorized     = errors.New("not authorized")
	ErrUserNotFound      = errors.New("user not found")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrOTPExpired        = errors.New("otp expired or missing")
	ErrOTPMismatch       = errors.New("otp mismatch")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrMalformedHash     = errors.New("malformed password hash")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
)
