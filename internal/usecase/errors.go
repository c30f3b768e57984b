package usecase

import "errors"

// Validation and lookup failures surfaced to the HTTP layer. Anything not in
// this list is treated as a store/infrastructure failure and collapsed to a
// 500 at the handler boundary.
var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailNotFound      = errors.New("email not found")
	ErrDetailsNotFound    = errors.New("user details not found")
	ErrInvalidOTPOrToken  = errors.New("invalid token or OTP")
	ErrMissingNewPassword = errors.New("new password is required")
	ErrMissingField       = errors.New("at least one field is required to update")
	ErrMissingUserID      = errors.New("user ID is missing")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmailDelivery      = errors.New("failed to send email")
)
