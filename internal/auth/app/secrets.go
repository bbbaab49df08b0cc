package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
)

// InitTokenCodec builds the codec for the three signing domains.
//
// Outside production a missing secret is generated at startup and kept
// only in memory. Tokens of that domain stop verifying when the service
// restarts.
func InitTokenCodec(cfg Config, logger *slog.Logger) (*jwtx.Codec, error) {
	secrets := jwtx.Secrets{
		Access:     []byte(cfg.AccessSecret),
		Refresh:    []byte(cfg.RefreshSecret),
		Activation: []byte(cfg.ActivationSecret),
	}

	fill := func(domain jwtx.Domain, secret *[]byte) error {
		if len(*secret) > 0 {
			return nil
		}
		if cfg.Production() {
			return fmt.Errorf("%s secret is required in production", domain)
		}
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("generate %s secret: %w", domain, err)
		}
		*secret = []byte(token)
		logger.Warn("generated ephemeral signing secret; tokens will not survive a restart",
			"domain", domain,
		)
		return nil
	}

	if err := fill(jwtx.DomainAccess, &secrets.Access); err != nil {
		return nil, err
	}
	if err := fill(jwtx.DomainRefresh, &secrets.Refresh); err != nil {
		return nil, err
	}
	if err := fill(jwtx.DomainActivation, &secrets.Activation); err != nil {
		return nil, err
	}

	codec, err := jwtx.NewCodec(cfg.Issuer, secrets, jwtx.WithLeeway(cfg.TokenLeeway))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}

	logger.Info("token codec ready", "issuer", cfg.Issuer, "leeway", cfg.TokenLeeway)
	return codec, nil
}
