package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type LogoutHandler struct {
	Cookies CookieBinder
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Clear the session cookies. Tokens are stateless, so copies held elsewhere stay valid until they expire.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"success, message"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Cookies.Clear(w)
	httpx.WriteMessage(w, http.StatusOK, MsgLogoutSuccess)
}
