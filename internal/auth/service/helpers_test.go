package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aussiebroadwan/instamedia/internal/auth/store"
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

type sentMail struct {
	kind  string // "activation" or "reset"
	to    string
	token string
}

// fakeMailer records every message and optionally fails.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendActivation(_ context.Context, to, token string) error {
	return m.record("activation", to, token)
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, token string) error {
	return m.record("reset", to, token)
}

func (m *fakeMailer) record(kind, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: kind, to: to, token: token})
	return nil
}

func (m *fakeMailer) last(t *testing.T, kind string) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].kind == kind {
			return m.sent[i]
		}
	}
	t.Fatalf("no %s mail sent", kind)
	return sentMail{}
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

var errMailDown = errors.New("smtp relay down")

type fixture struct {
	store      store.Store
	codec      *jwtx.Codec
	hasher     *cryptox.Argon2Hasher
	mailer     *fakeMailer
	accounts   *AccountService
	activation *ActivationService
	reset      *ResetService
	sessions   *SessionService
}

func newFixture(t *testing.T) *fixture {
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
	mailer := &fakeMailer{}
	policy := PasswordPolicy{}

	return &fixture{
		store:  st,
		codec:  codec,
		hasher: hasher,
		mailer: mailer,
		accounts: &AccountService{
			Store:  st,
			Hasher: hasher,
			Tokens: codec,
			Mailer: mailer,
			Policy: policy,
		},
		activation: &ActivationService{Store: st, Tokens: codec},
		reset: &ResetService{
			Store:  st,
			Hasher: hasher,
			Tokens: codec,
			Mailer: mailer,
			Policy: policy,
		},
		sessions: &SessionService{Tokens: codec},
	}
}

// registerActive registers the default account and activates it.
func (f *fixture) registerActive(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.accounts.Register(ctx, RegisterInput{
		Username: testUsername,
		Email:    testEmail,
		Password: testPassword,
	}))
	require.NoError(t, f.activation.Activate(ctx, f.mailer.last(t, "activation").token))

	a, err := f.store.Accounts().GetAccountByEmail(ctx, testEmail)
	require.NoError(t, err)
	return a.ID
}
