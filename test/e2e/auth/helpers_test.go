package auth_test

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/app"
	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * The service runs in-process behind httptest with a file-backed SQLite
 * store; emails are captured instead of sent.
 */

const (
	testUsername = "alice"
	testEmail    = "alice@x.com"
	testPassword = "Passw0rd!"
	newPassword  = "N3wPassw0rd!"
)

// inbox captures the tokens the service would have emailed.
type inbox struct {
	mu          sync.Mutex
	activations map[string][]string
	resets      map[string][]string
}

func newInbox() *inbox {
	return &inbox{
		activations: map[string][]string{},
		resets:      map[string][]string{},
	}
}

func (i *inbox) SendActivation(_ context.Context, to, token string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.activations[to] = append(i.activations[to], token)
	return nil
}

func (i *inbox) SendPasswordReset(_ context.Context, to, token string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.resets[to] = append(i.resets[to], token)
	return nil
}

func (i *inbox) lastActivation(t *testing.T, to string) string {
	t.Helper()
	i.mu.Lock()
	defer i.mu.Unlock()
	tokens := i.activations[to]
	require.NotEmpty(t, tokens, "no activation mail for %s", to)
	return tokens[len(tokens)-1]
}

func (i *inbox) lastReset(t *testing.T, to string) string {
	t.Helper()
	i.mu.Lock()
	defer i.mu.Unlock()
	tokens := i.resets[to]
	require.NotEmpty(t, tokens, "no reset mail for %s", to)
	return tokens[len(tokens)-1]
}

func (i *inbox) resetCount(to string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.resets[to])
}

// setupAuthService starts the service and returns its base URL and inbox.
func setupAuthService(t *testing.T) (string, *inbox) {
	t.Helper()

	dir := t.TempDir()
	cfg := app.Config{
		Issuer:              "instamedia-auth-e2e",
		AccessSecret:        "e2e-access-secret",
		RefreshSecret:       "e2e-refresh-secret",
		ActivationSecret:    "e2e-activation-secret",
		DatabaseDriver:      app.DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "auth.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		FrontendURL:         "http://localhost:3000",
		Env:                 "test",
		LogLevel:            "info",
		LogFormat:           "json",
		ShutdownGracePeriod: time.Second,
	}

	mail := newInbox()
	application, err := app.New(cfg, app.WithMailer(mail), app.WithLogOutput(io.Discard))
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return srv.URL, mail
}

func newClient(t *testing.T, baseURL string) *authsdk.Client {
	t.Helper()
	client, err := authsdk.NewClient(baseURL)
	require.NoError(t, err)
	return client
}

// requireAPIError asserts err is an *authsdk.APIError with the given status
// and message.
func requireAPIError(t *testing.T, err error, status int, msg string) *authsdk.APIError {
	t.Helper()
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
	return apiErr
}
