package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrGuessablePassword  = fmt.Errorf("%w: too easy to guess", ErrWeakPassword)

	ErrMissingActivationToken = errors.New("activation token missing")
	ErrInvalidActivationToken = errors.New("invalid or expired activation token")
	ErrAlreadyActivated       = errors.New("account already activated")

	ErrEmailRequired      = errors.New("email required")
	ErrResetInputRequired = errors.New("reset token and password required")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrMissingRefreshToken = errors.New("refresh token missing")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// ConflictError is returned by Register when the username, the email or
// both are already in use.
type ConflictError struct {
	UsernameTaken bool
	EmailTaken    bool
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("account conflict: username_taken=%t email_taken=%t", e.UsernameTaken, e.EmailTaken)
}

// NeedsActivationError is returned by Login when the credentials are right
// but the account was never activated. A fresh activation link has already
// been mailed to Email.
type NeedsActivationError struct {
	Email string
}

func (e *NeedsActivationError) Error() string {
	return "account not activated"
}
