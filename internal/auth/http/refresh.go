package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type RefreshHandler struct {
	SessionService *service.SessionService
	Cookies        CookieBinder
}

// ServeHTTP godoc
//
//	@Summary		Refresh Endpoint
//	@Description	Exchange the refreshToken cookie for a new 15 minute access cookie. The refresh cookie is left untouched.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"success, message; cookie token set"
//	@Failure		401	{object}	authsdk.MessageResponse	"missing or invalid refresh token"
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	access, err := h.SessionService.Refresh(r.Context(), h.Cookies.RefreshToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.SetAccess(w, access)
	httpx.WriteMessage(w, http.StatusOK, MsgTokenRefreshed)
}
