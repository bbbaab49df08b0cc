package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

type ActivationService struct {
	Store  store.Store
	Tokens TokenCodec
}

// Activate flips an account to active exactly once.
func (s *ActivationService) Activate(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	if token == "" {
		return ErrMissingActivationToken
	}

	accountID, err := s.Tokens.Verify(jwtx.DomainActivation, token)
	switch {
	case errors.Is(err, jwtx.ErrRejected):
		log.Debug("activation token rejected",
			slog.String("token_fp", cryptox.FingerprintToken(token)),
			slog.Any("error", err),
		)
		return ErrInvalidActivationToken
	case err != nil:
		return fmt.Errorf("verify activation token: %w", err)
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("lookup account: %w", err)
	}
	if account.Active {
		return ErrAlreadyActivated
	}

	changed, err := s.Store.Accounts().ActivateAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("activate account: %w", err)
	}
	if !changed {
		return ErrAlreadyActivated
	}

	log.Info("account activated", slog.String("account_id", account.ID))
	return nil
}
