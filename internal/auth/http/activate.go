package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type ActivateHandler struct {
	ActivationService *service.ActivationService
}

// ServeHTTP godoc
//
//	@Summary		Activate Account Endpoint
//	@Description	Redeem the activation token from the emailed link. An account can only be activated once.
//	@Tags			Accounts
//	@Produce		json
//	@Param			token	path		string					true	"Activation token"
//	@Success		200		{object}	authsdk.MessageResponse	"success, message"
//	@Failure		400		{object}	authsdk.MessageResponse	"missing, invalid or already used token"
//	@Failure		404		{object}	authsdk.MessageResponse	"account no longer exists"
//	@Failure		500		{object}	authsdk.MessageResponse	"success, message"
//	@Router			/api/auth/activate/{token} [get].
func (h *ActivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.ActivationService.Activate(r.Context(), r.PathValue("token")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, MsgActivated)
}
