package service

import (
	"fmt"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// RecommendedMinEntropyBits is a sensible entropy floor for deployments
// that opt in to one. The floor is off unless configured.
const RecommendedMinEntropyBits = 50

const minPasswordLength = 8

// PasswordPolicy decides whether a password is acceptable. It requires at
// least eight characters with a lowercase letter, an uppercase letter, a
// digit and a symbol, and optionally a minimum estimated entropy.
type PasswordPolicy struct {
	MinEntropyBits float64
}

// Check returns ErrWeakPassword wrapped with the failing rule. A password
// that passes the character-class rules but falls below the entropy floor
// fails with ErrGuessablePassword.
func (p PasswordPolicy) Check(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("%w: shorter than %d characters", ErrWeakPassword, minPasswordLength)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return fmt.Errorf("%w: needs lowercase, uppercase, digit and symbol", ErrWeakPassword)
	}

	if p.MinEntropyBits > 0 {
		if err := passwordvalidator.Validate(password, p.MinEntropyBits); err != nil {
			return fmt.Errorf("%w: %w", ErrGuessablePassword, err)
		}
	}
	return nil
}
