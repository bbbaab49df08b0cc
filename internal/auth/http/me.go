package http

import (
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the public profile of the account behind the access cookie
//	@Tags			Session
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	authsdk.MeResponse		"success, user"
//	@Failure		401	{object}	authsdk.MessageResponse	"missing or invalid access token"
//	@Failure		404	{object}	authsdk.MessageResponse	"account no longer exists"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, httpx.MsgNoToken)
		return
	}

	profile, err := h.AccountService.CurrentAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
		Success: true,
		User:    profileResponse(profile),
	})
}

func profileResponse(p domain.PublicProfile) authsdk.UserProfile {
	return authsdk.UserProfile{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
	}
}
