package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConflictError reports which unique columns a write collided with.
// It matches ErrAlreadyExists under errors.Is.
type ConflictError struct {
	Username bool
	Email    bool
}

func (e *ConflictError) Error() string {
	switch {
	case e.Username && e.Email:
		return "store: username and email already exist"
	case e.Username:
		return "store: username already exists"
	case e.Email:
		return "store: email already exists"
	default:
		return ErrAlreadyExists.Error()
	}
}

func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Every account write is a single statement, so there is no
// transaction surface.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by app via ULID).
	// A unique violation is reported as *ConflictError.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetAccountByIdentifier matches either the email or the username.
	GetAccountByIdentifier(ctx context.Context, emailOrUsername string) (domain.Account, error)

	// FindTaken reports whether username and email are already in use.
	FindTaken(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)

	// ActivateAccount flips active to true and reports whether this call
	// made the change. An already active account yields false.
	ActivateAccount(ctx context.Context, id string) (bool, error)

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id string, newHash string) error
}

// NotFound wraps ErrNotFound with the entity that was looked up.
func NotFound(entity, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, entity, key)
}
