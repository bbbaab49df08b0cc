package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

// writeError maps a service error to its status and message. Anything
// unrecognised is a 500 with a generic message; the detail is only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		conflict        *service.ConflictError
		needsActivation *service.NeedsActivationError
	)

	switch {
	case errors.Is(err, errMalformedBody):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgInvalidBody)
	case errors.As(err, &conflict):
		httpx.WriteMessage(w, http.StatusConflict, conflictMessage(conflict))
	case errors.As(err, &needsActivation):
		httpx.WriteJSON(w, http.StatusForbidden, authsdk.NeedsActivationResponse{
			Success:         false,
			Message:         MsgAccountInactive,
			NeedsActivation: true,
			Data: authsdk.ActivationNotice{
				Message: MsgActivationLinkResent,
				Email:   needsActivation.Email,
			},
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, service.ErrGuessablePassword):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgGuessablePassword)
	case errors.Is(err, service.ErrWeakPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgInvalidPassword)
	case errors.Is(err, service.ErrMissingActivationToken):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgMissingActivationToken)
	case errors.Is(err, service.ErrInvalidActivationToken):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgInvalidActivationToken)
	case errors.Is(err, service.ErrAlreadyActivated):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgAlreadyActivated)
	case errors.Is(err, service.ErrEmailRequired):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgEmailRequired)
	case errors.Is(err, service.ErrResetInputRequired):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgResetInputRequired)
	case errors.Is(err, service.ErrInvalidResetToken):
		httpx.WriteMessage(w, http.StatusBadRequest, MsgInvalidResetToken)
	case errors.Is(err, service.ErrAccountNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, service.ErrMissingRefreshToken):
		httpx.WriteMessage(w, http.StatusUnauthorized, MsgMissingRefreshToken)
	case errors.Is(err, service.ErrInvalidRefreshToken):
		httpx.WriteMessage(w, http.StatusUnauthorized, MsgInvalidRefreshToken)
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.Any("error", err),
		)
		httpx.WriteMessage(w, http.StatusInternalServerError, MsgServerError)
	}
}

func conflictMessage(c *service.ConflictError) string {
	switch {
	case c.UsernameTaken && c.EmailTaken:
		return MsgUsernameAndEmailTaken
	case c.UsernameTaken:
		return MsgUsernameTaken
	default:
		return MsgEmailTaken
	}
}

// badRequest writes a 400 carrying a validation message.
func badRequest(w http.ResponseWriter, err error) {
	httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
}
