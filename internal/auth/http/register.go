package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create an inactive account and email an activation link valid for 24 hours
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	authsdk.MessageResponse	"success, message"
//	@Failure		400		{object}	authsdk.MessageResponse	"missing or malformed fields"
//	@Failure		409		{object}	authsdk.MessageResponse	"username and/or email taken"
//	@Failure		500		{object}	authsdk.MessageResponse	"success, message"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validateRegister(req); err != nil {
		badRequest(w, err)
		return
	}

	err := h.AccountService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusCreated, MsgRegisterSuccess)
}
