package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/storetest"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	a, err := f.store.Accounts().GetAccountByIdentifier(ctx, testUsername)
	require.NoError(t, err)
	require.False(t, a.Active)
	require.NotEqual(t, testPassword, a.PasswordHash)
	require.NoError(t, f.hasher.Verify(testPassword, a.PasswordHash))

	mail := f.mailer.last(t, "activation")
	require.Equal(t, testEmail, mail.to)

	sub, err := f.codec.Verify(jwtx.DomainActivation, mail.token)
	require.NoError(t, err)
	require.Equal(t, a.ID, sub)
}

func TestRegisterConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword}))

	tests := []struct {
		name      string
		username  string
		email     string
		wantUser  bool
		wantEmail bool
	}{
		{"username taken", testUsername, "other@x.com", true, false},
		{"email taken", "other", testEmail, false, true},
		{"both taken", testUsername, testEmail, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.accounts.Register(ctx, RegisterInput{Username: tt.username, Email: tt.email, Password: testPassword})

			var conflict *ConflictError
			require.True(t, errors.As(err, &conflict), "got %v", err)
			require.Equal(t, tt.wantUser, conflict.UsernameTaken)
			require.Equal(t, tt.wantEmail, conflict.EmailTaken)
		})
	}
	require.Equal(t, 1, f.mailer.count(), "conflicts must not send mail")
}

func TestRegisterConflictOnCreateIsTranslated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Row inserted behind the pre-check's back.
	require.NoError(t, f.store.Accounts().CreateAccount(ctx, storetest.NewAccount("bob", "bob@x.com")))

	err := f.accounts.conflictAfterCreate(ctx,
		RegisterInput{Username: "bob", Email: "new@x.com"},
		&store.ConflictError{},
	)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	require.True(t, conflict.UsernameTaken)
	require.False(t, conflict.EmailTaken)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	f := newFixture(t)

	err := f.accounts.Register(context.Background(), RegisterInput{Username: testUsername, Email: testEmail, Password: "password"})
	require.ErrorIs(t, err, ErrWeakPassword)
	require.Zero(t, f.mailer.count())
}

func TestRegisterAcceptsShortPasswordWithEveryClass(t *testing.T) {
	f := newFixture(t)

	err := f.accounts.Register(context.Background(), RegisterInput{Username: testUsername, Email: testEmail, Password: "Abcdef1!"})
	require.NoError(t, err)
	require.Equal(t, 1, f.mailer.count())
}

func TestRegisterMailFailureKeepsAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mailer.err = errMailDown

	err := f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword})
	require.ErrorIs(t, err, errMailDown)

	_, err = f.store.Accounts().GetAccountByEmail(ctx, testEmail)
	require.NoError(t, err, "account row must survive a mail failure")
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerActive(t)

	_, unknownErr := f.accounts.Login(ctx, "nobody", testPassword)
	_, wrongErr := f.accounts.Login(ctx, testUsername, "Wr0ngPassword!")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	require.Equal(t, unknownErr, wrongErr)
}

func TestLoginInactiveResendsActivation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword}))
	first := f.mailer.last(t, "activation").token

	res, err := f.accounts.Login(ctx, testUsername, testPassword)
	require.Nil(t, res, "no session for inactive accounts")

	var needs *NeedsActivationError
	require.True(t, errors.As(err, &needs))
	require.Equal(t, testEmail, needs.Email)

	second := f.mailer.last(t, "activation").token
	require.NotEqual(t, first, second, "a fresh activation token is issued")
	_, err = f.codec.Verify(jwtx.DomainActivation, second)
	require.NoError(t, err)
}

func TestLoginInactiveWrongPasswordSendsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword}))

	_, err := f.accounts.Login(ctx, testUsername, "Wr0ngPassword!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, 1, f.mailer.count())
}

func TestLoginInactiveMailFailureIsServerError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.accounts.Register(ctx, RegisterInput{Username: testUsername, Email: testEmail, Password: testPassword}))
	f.mailer.err = errMailDown

	_, err := f.accounts.Login(ctx, testEmail, testPassword)
	require.ErrorIs(t, err, errMailDown)

	var needs *NeedsActivationError
	require.False(t, errors.As(err, &needs))
}

func TestLoginActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.registerActive(t)

	for _, ident := range []string{testUsername, testEmail} {
		res, err := f.accounts.Login(ctx, ident, testPassword)
		require.NoError(t, err)
		require.Equal(t, id, res.Profile.ID)
		require.Equal(t, testUsername, res.Profile.Username)
		require.Equal(t, testEmail, res.Profile.Email)

		sub, err := f.codec.Verify(jwtx.DomainAccess, res.Tokens.AccessToken)
		require.NoError(t, err)
		require.Equal(t, id, sub)

		sub, err = f.codec.Verify(jwtx.DomainRefresh, res.Tokens.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, id, sub)
	}
}

func TestCurrentAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.registerActive(t)

	p, err := f.accounts.CurrentAccount(ctx, id)
	require.NoError(t, err)
	require.Equal(t, testUsername, p.Username)

	_, err = f.accounts.CurrentAccount(ctx, "01J9ZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// failingHasher fails Hash a set number of times before delegating.
type failingHasher struct {
	*cryptox.Argon2Hasher
	failures int
	verified []string
}

func (h *failingHasher) Hash(password string) (string, error) {
	if h.failures > 0 {
		h.failures--
		return "", errors.New("entropy source unavailable")
	}
	return h.Argon2Hasher.Hash(password)
}

func (h *failingHasher) Verify(password, encodedHash string) error {
	h.verified = append(h.verified, encodedHash)
	return h.Argon2Hasher.Verify(password, encodedHash)
}

func TestLoginUnknownIdentifierHashesAfterHasherFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hasher := &failingHasher{Argon2Hasher: f.hasher, failures: 1}
	f.accounts.Hasher = hasher

	_, err := f.accounts.Login(ctx, "nobody", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, []string{fallbackDummyHash}, hasher.verified)

	_, err = f.accounts.Login(ctx, "nobody", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, hasher.verified, 2)
	require.NotEqual(t, fallbackDummyHash, hasher.verified[1], "dummy hash is retried once hashing recovers")
	require.Equal(t, hasher.verified[1], f.accounts.dummy())
}

func TestFallbackDummyHashIsWellFormed(t *testing.T) {
	err := cryptox.NewArgon2Hasher("pepper").Verify(testPassword, fallbackDummyHash)
	require.ErrorIs(t, err, cryptox.ErrPasswordMismatch)
}
