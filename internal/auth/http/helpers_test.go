package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testUsername = "alice"
	testEmail    = "alice@x.com"
	testPassword = "Passw0rd!"
)

var errMailDown = errors.New("smtp relay down")

// recordingMailer keeps the last token per mail kind.
type recordingMailer struct {
	mu     sync.Mutex
	tokens map[string]string
	sent   int
	err    error
}

func (m *recordingMailer) SendActivation(_ context.Context, _, token string) error {
	return m.record("activation", token)
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, _, token string) error {
	return m.record("reset", token)
}

func (m *recordingMailer) record(kind, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.tokens == nil {
		m.tokens = map[string]string{}
	}
	m.tokens[kind] = token
	m.sent++
	return nil
}

func (m *recordingMailer) token(t *testing.T, kind string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	tok, ok := m.tokens[kind]
	require.True(t, ok, "no %s mail sent", kind)
	return tok
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

type testServer struct {
	router *Router
	codec  *jwtx.Codec
	mailer *recordingMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec("instamedia-auth-test", jwtx.Secrets{
		Access:     []byte("test-access-secret"),
		Refresh:    []byte("test-refresh-secret"),
		Activation: []byte("test-activation-secret"),
	})
	require.NoError(t, err)

	hasher := cryptox.NewArgon2Hasher("test-pepper")
	mailer := &recordingMailer{}
	policy := service.PasswordPolicy{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(codec, NewCookieBinder(false), "test", st, logger, "http://localhost:3000")
	r.AccountService = &service.AccountService{
		Store:  st,
		Hasher: hasher,
		Tokens: codec,
		Mailer: mailer,
		Policy: policy,
	}
	r.ActivationService = &service.ActivationService{Store: st, Tokens: codec}
	r.ResetService = &service.ResetService{
		Store:  st,
		Hasher: hasher,
		Tokens: codec,
		Mailer: mailer,
		Policy: policy,
	}
	r.SessionService = &service.SessionService{Tokens: codec}
	r.ApplyRoutes()

	return &testServer{router: r, codec: codec, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// registerActive registers and activates the default account.
func (s *testServer) registerActive(t *testing.T) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": testUsername,
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/auth/activate/"+s.mailer.token(t, "activation"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// login logs the default account in and returns the session cookies.
func (s *testServer) login(t *testing.T) (access, refresh *http.Cookie) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUsername": testUsername,
		"password":        testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	access = responseCookie(t, rec, "token")
	refresh = responseCookie(t, rec, "refreshToken")
	return access, refresh
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func hasCookie(rec *httptest.ResponseRecorder, name string) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return true
		}
	}
	return false
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
	body := decodeMap(t, rec)
	require.Equal(t, code < http.StatusBadRequest, body["success"])
	require.Equal(t, msg, body["message"])
}
