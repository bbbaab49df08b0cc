package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

// SessionService mints access tokens from refresh tokens. Refresh tokens
// are neither rotated nor looked up; only signature and expiry count.
type SessionService struct {
	Tokens TokenCodec
}

// Refresh returns a new access token for the refresh token's subject.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := slogx.FromContext(ctx)

	if refreshToken == "" {
		return "", ErrMissingRefreshToken
	}

	accountID, err := s.Tokens.Verify(jwtx.DomainRefresh, refreshToken)
	switch {
	case errors.Is(err, jwtx.ErrRejected):
		log.Debug("refresh token rejected",
			slog.String("token_fp", cryptox.FingerprintToken(refreshToken)),
			slog.Any("error", err),
		)
		return "", ErrInvalidRefreshToken
	case err != nil:
		return "", fmt.Errorf("verify refresh token: %w", err)
	}

	access, err := s.Tokens.Issue(jwtx.DomainAccess, accountID, domain.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}
