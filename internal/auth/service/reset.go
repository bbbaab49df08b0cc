package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

type ResetService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenCodec
	Mailer Mailer
	Policy PasswordPolicy
}

// ForgotPassword mails a reset link when email belongs to an account.
// sent reports whether a link went out; callers must not reveal it beyond
// the wording of a success response. Failures that only a known account can
// reach are logged and reported as sent=false with a nil error, so the
// outcome matches an unknown email.
func (s *ResetService) ForgotPassword(ctx context.Context, email string) (sent bool, err error) {
	log := slogx.FromContext(ctx)

	if email == "" {
		return false, ErrEmailRequired
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup account: %w", err)
	}

	token, err := s.Tokens.Issue(jwtx.DomainActivation, account.ID, domain.ResetTokenTTL)
	if err != nil {
		log.Error("issue reset token failed",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return false, nil
	}
	if err := s.Mailer.SendPasswordReset(ctx, account.Email, token); err != nil {
		log.Error("send reset email failed",
			slog.String("account_id", account.ID),
			slog.String("token_fp", cryptox.FingerprintToken(token)),
			slog.Any("error", err),
		)
		return false, nil
	}

	log.Info("password reset link sent",
		slog.String("account_id", account.ID),
		slog.String("token_fp", cryptox.FingerprintToken(token)),
	)
	return true, nil
}

// ResetPassword replaces the password of the account named by token. The
// activation state is not consulted.
func (s *ResetService) ResetPassword(ctx context.Context, token, password string) error {
	log := slogx.FromContext(ctx)

	if token == "" || password == "" {
		return ErrResetInputRequired
	}
	if err := s.Policy.Check(password); err != nil {
		return err
	}

	accountID, err := s.Tokens.Verify(jwtx.DomainActivation, token)
	switch {
	case errors.Is(err, jwtx.ErrRejected):
		log.Debug("reset token rejected",
			slog.String("token_fp", cryptox.FingerprintToken(token)),
			slog.Any("error", err),
		)
		return ErrInvalidResetToken
	case err != nil:
		return fmt.Errorf("verify reset token: %w", err)
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("lookup account: %w", err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Accounts().UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	log.Info("password reset", slog.String("account_id", account.ID))
	return nil
}
