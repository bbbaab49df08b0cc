package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		s := newTestServer(t)

		tests := []struct {
			name string
			body any
			msg  string
		}{
			{"empty body", nil, MsgRegisterFieldsRequired},
			{"missing password", map[string]string{"username": "bob", "email": "bob@x.com"}, MsgRegisterFieldsRequired},
			{"username with space", map[string]string{"username": "bob smith", "email": "bob@x.com", "password": testPassword}, MsgInvalidUsername},
			{"username with symbol", map[string]string{"username": "bob_1", "email": "bob@x.com", "password": testPassword}, MsgInvalidUsername},
			{"email without dot", map[string]string{"username": "bob", "email": "bob@x", "password": testPassword}, MsgInvalidEmail},
			{"weak password", map[string]string{"username": "bob", "email": "bob@x.com", "password": "password"}, MsgInvalidPassword},
			{"malformed json", `{"username":`, MsgInvalidBody},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := s.do(t, http.MethodPost, "/api/auth/register", tt.body)
				requireMessage(t, rec, http.StatusBadRequest, tt.msg)
			})
		}
		require.Zero(t, s.mailer.count())
	})

	t.Run("created and mailed", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": testUsername,
			"email":    testEmail,
			"password": testPassword,
		})
		requireMessage(t, rec, http.StatusCreated, MsgRegisterSuccess)
		require.False(t, hasCookie(rec, "token"))

		_, err := s.codec.Verify(jwtx.DomainActivation, s.mailer.token(t, "activation"))
		require.NoError(t, err)
	})

	t.Run("eight character password with every class", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "bob",
			"email":    "bob@x.com",
			"password": "Abcdef1!",
		})
		requireMessage(t, rec, http.StatusCreated, MsgRegisterSuccess)
	})

	t.Run("entropy floor has its own message", func(t *testing.T) {
		s := newTestServer(t)
		s.router.AccountService.Policy = service.PasswordPolicy{MinEntropyBits: service.RecommendedMinEntropyBits}

		rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "bob",
			"email":    "bob@x.com",
			"password": "Abcdef1!",
		})
		requireMessage(t, rec, http.StatusBadRequest, MsgGuessablePassword)
		require.Zero(t, s.mailer.count())
	})

	t.Run("conflicts", func(t *testing.T) {
		s := newTestServer(t)
		s.registerActive(t)

		tests := []struct {
			name     string
			username string
			email    string
			msg      string
		}{
			{"username", testUsername, "other@x.com", MsgUsernameTaken},
			{"email", "other", testEmail, MsgEmailTaken},
			{"both", testUsername, testEmail, MsgUsernameAndEmailTaken},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
					"username": tt.username,
					"email":    tt.email,
					"password": testPassword,
				})
				requireMessage(t, rec, http.StatusConflict, tt.msg)
			})
		}
	})

	t.Run("mail failure is a generic server error", func(t *testing.T) {
		s := newTestServer(t)
		s.mailer.err = errMailDown

		rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": testUsername,
			"email":    testEmail,
			"password": testPassword,
		})
		requireMessage(t, rec, http.StatusInternalServerError, MsgServerError)
		require.NotContains(t, rec.Body.String(), "smtp")
	})
}

func TestActivate(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": testUsername,
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	token := s.mailer.token(t, "activation")

	t.Run("missing token", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/auth/activate/", nil)
		requireMessage(t, rec, http.StatusBadRequest, MsgMissingActivationToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/auth/activate/not-a-jwt", nil)
		requireMessage(t, rec, http.StatusBadRequest, MsgInvalidActivationToken)
	})

	t.Run("token from another domain", func(t *testing.T) {
		sub, err := s.codec.Verify(jwtx.DomainActivation, token)
		require.NoError(t, err)
		refresh, err := s.codec.Issue(jwtx.DomainRefresh, sub, time.Minute)
		require.NoError(t, err)

		rec := s.do(t, http.MethodGet, "/api/auth/activate/"+refresh, nil)
		requireMessage(t, rec, http.StatusBadRequest, MsgInvalidActivationToken)
	})

	t.Run("unknown subject", func(t *testing.T) {
		ghost, err := s.codec.Issue(jwtx.DomainActivation, "01JAB3N9M6WQ4X2D5T8K7Y0C1E", time.Minute)
		require.NoError(t, err)

		rec := s.do(t, http.MethodGet, "/api/auth/activate/"+ghost, nil)
		requireMessage(t, rec, http.StatusNotFound, MsgUserNotFound)
	})

	t.Run("activates once", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/auth/activate/"+token, nil)
		requireMessage(t, rec, http.StatusOK, MsgActivated)

		rec = s.do(t, http.MethodGet, "/api/auth/activate/"+token, nil)
		requireMessage(t, rec, http.StatusBadRequest, MsgAlreadyActivated)
	})
}
