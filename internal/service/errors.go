package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so login responses do not reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongPassword is returned when a sensitive operation (password
	// change, account deletion) fails the current-password re-check.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotVerified is returned when an unverified account attempts to log
	// in. Verification requires redeeming an emailed passcode first.
	ErrNotVerified = errors.New("account is not verified")

	// ErrAlreadyVerified is returned when a verified account submits another
	// passcode.
	ErrAlreadyVerified = errors.New("account is already verified")

	ErrInvalidOtpCode = errors.New("invalid otp code")
	ErrOtpExpired     = errors.New("otp code is expired")

	// ErrAdminOnly is returned when a non-admin caller requests an
	// admin-only listing.
	ErrAdminOnly = errors.New("admin role required")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
