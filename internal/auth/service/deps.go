package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
)

// Mailer dispatches the account emails carrying single-purpose tokens.
type Mailer interface {
	SendActivation(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// TokenCodec issues and verifies tokens per signing domain.
type TokenCodec interface {
	Issue(domain jwtx.Domain, subject string, ttl time.Duration) (string, error)
	Verify(domain jwtx.Domain, token string) (string, error)
}
