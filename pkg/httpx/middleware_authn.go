package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

const (
	MsgNoToken      = "Unauthorized: No token provided"
	MsgInvalidToken = "Unauthorized: Invalid or expired token"
)

// TokenVerifier resolves a token in a signing domain to its subject.
type TokenVerifier interface {
	Verify(domain jwtx.Domain, token string) (string, error)
}

// CookieAuthn requires a valid access token in the named cookie and
// stores its subject under CtxKeyAccountID.
func CookieAuthn(v TokenVerifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				WriteMessage(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			accountID, err := v.Verify(jwtx.DomainAccess, c.Value)
			if err != nil {
				log.Debug("access token rejected",
					"token_fp", cryptox.FingerprintToken(c.Value),
					"err", err,
				)
				WriteMessage(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyAccountID, accountID)
			ctx = slogx.With(ctx, "account_id", accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
