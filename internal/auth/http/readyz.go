package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the credential store and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens service.TokenCodec,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{Database: "ok", Signer: "ok"}
		ready := true

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			ready = false
		}
		if err := probeSigner(tokens); err != nil {
			checks.Signer = "error: " + err.Error()
			ready = false
		}

		if !ready {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthReport("degraded", startTime, version, checks))
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthReport("ok", startTime, version, checks))
	}
}

// probeSigner round-trips a short-lived access token through the codec.
func probeSigner(tokens service.TokenCodec) error {
	token, err := tokens.Issue(jwtx.DomainAccess, "readyz", time.Minute)
	if err != nil {
		return err
	}
	_, err = tokens.Verify(jwtx.DomainAccess, token)
	return err
}
