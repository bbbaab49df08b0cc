package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type LoginHandler struct {
	AccountService *service.AccountService
	Cookies        CookieBinder
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with a username or email. On success the access and refresh tokens are set as HTTP-only cookies.
//	@Description	An inactive account with the right password gets a fresh activation link and a 403 with needsActivation set.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest			true	"emailOrUsername, password"
//	@Success		200		{object}	authsdk.LoginResponse			"profile; cookies token and refreshToken set"
//	@Failure		400		{object}	authsdk.MessageResponse			"missing fields"
//	@Failure		401		{object}	authsdk.MessageResponse			"invalid credentials"
//	@Failure		403		{object}	authsdk.NeedsActivationResponse	"account not activated"
//	@Failure		500		{object}	authsdk.MessageResponse			"success, message"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validateLogin(req); err != nil {
		badRequest(w, err)
		return
	}

	result, err := h.AccountService.Login(r.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.SetSession(w, result.Tokens)
	httpx.WriteJSON(w, http.StatusOK, authsdk.LoginResponse{
		Success: true,
		Message: MsgLoginSuccess,
		Data:    authsdk.LoginData{User: profileResponse(result.Profile)},
	})
}
