package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type ForgotPasswordHandler struct {
	ResetService *service.ResetService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Email a password reset link valid for 15 minutes when the address belongs to an account.
//	@Description	Known and unknown addresses both answer 200 with the same response shape.
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	authsdk.MessageResponse			"success, message"
//	@Failure		400		{object}	authsdk.MessageResponse			"email missing"
//	@Failure		500		{object}	authsdk.MessageResponse			"success, message"
//	@Router			/api/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.ForgotPasswordRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sent, err := h.ResetService.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := MsgResetLinkMaybeSent
	if sent {
		msg = MsgResetLinkSent
	}
	httpx.WriteMessage(w, http.StatusOK, msg)
}

type ResetPasswordHandler struct {
	ResetService *service.ResetService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Set a new password using the token from the reset email
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Reset token"
//	@Param			request	body		authsdk.ResetPasswordRequest	true	"password"
//	@Success		200		{object}	authsdk.MessageResponse			"success, message"
//	@Failure		400		{object}	authsdk.MessageResponse			"missing input, weak password or invalid token"
//	@Failure		404		{object}	authsdk.MessageResponse			"account no longer exists"
//	@Failure		500		{object}	authsdk.MessageResponse			"success, message"
//	@Router			/api/auth/reset-password/{token} [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.ResetPasswordRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.ResetService.ResetPassword(r.Context(), r.PathValue("token"), req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, MsgPasswordUpdated)
}
