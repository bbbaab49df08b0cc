package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
)

const accountColumns = `id, username, email, password_hash, active, avatar_url, bio, created_at, updated_at`

type accountsRepo struct {
	db *sql.DB
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a         domain.Account
		avatarURL sql.NullString
		bio       sql.NullString
	)
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Active,
		&avatarURL,
		&bio,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.AvatarURL = mapNullStringPtr(avatarURL)
	a.Bio = mapNullStringPtr(bio)
	return a, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.Active,
		mapOptionalString(a.AvatarURL),
		mapOptionalString(a.Bio),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
}

func (r *accountsRepo) GetAccountByIdentifier(ctx context.Context, emailOrUsername string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE email = $1 OR username = $1
		 ORDER BY (email = $1) DESC
		 LIMIT 1`, emailOrUsername))
}

func (r *accountsRepo) FindTaken(ctx context.Context, username, email string) (bool, bool, error) {
	var usernameTaken, emailTaken bool
	err := r.db.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM accounts WHERE username = $1),
			EXISTS (SELECT 1 FROM accounts WHERE email = $2)`,
		username, email,
	).Scan(&usernameTaken, &emailTaken)
	if err != nil {
		return false, false, err
	}
	return usernameTaken, emailTaken, nil
}

func (r *accountsRepo) ActivateAccount(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET active = TRUE, updated_at = NOW()
		WHERE id = $1 AND active = FALSE`,
		id,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id string, newHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2`,
		newHash, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
