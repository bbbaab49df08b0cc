package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/idx"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult carries the session tokens for the cookie binder and the
// profile returned to the client.
type LoginResult struct {
	Profile domain.PublicProfile
	Tokens  domain.TokenPair
}

type AccountService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenCodec
	Mailer Mailer
	Policy PasswordPolicy

	dummyMu   sync.Mutex
	dummyHash string
}

// Register creates an inactive account and mails its activation link. The
// caller is not logged in.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) error {
	log := slogx.FromContext(ctx)

	if err := s.Policy.Check(in.Password); err != nil {
		return err
	}

	usernameTaken, emailTaken, err := s.Store.Accounts().FindTaken(ctx, in.Username, in.Email)
	if err != nil {
		return fmt.Errorf("check uniqueness: %w", err)
	}
	if usernameTaken || emailTaken {
		return &ConflictError{UsernameTaken: usernameTaken, EmailTaken: emailTaken}
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Active:       false,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		// Lost the race against a concurrent registration.
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			return s.conflictAfterCreate(ctx, in, conflict)
		}
		return fmt.Errorf("create account: %w", err)
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)

	if err := s.sendActivation(ctx, account); err != nil {
		// The account stays; logging in again re-sends the link.
		return err
	}
	return nil
}

// conflictAfterCreate reports a unique violation with the same precision
// as the pre-check.
func (s *AccountService) conflictAfterCreate(ctx context.Context, in RegisterInput, c *store.ConflictError) error {
	usernameTaken, emailTaken, err := s.Store.Accounts().FindTaken(ctx, in.Username, in.Email)
	if err != nil || (!usernameTaken && !emailTaken) {
		return &ConflictError{UsernameTaken: c.Username, EmailTaken: c.Email}
	}
	return &ConflictError{UsernameTaken: usernameTaken, EmailTaken: emailTaken}
}

// Login checks credentials. An unknown identifier and a wrong password are
// both ErrInvalidCredentials. A correct password on an inactive account
// re-sends the activation link and returns *NeedsActivationError.
func (s *AccountService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing time as a real check.
			_ = s.Hasher.Verify(password, s.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if err := s.Hasher.Verify(password, account.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable",
				slog.String("account_id", account.ID),
				slog.Any("error", err),
			)
		}
		return nil, ErrInvalidCredentials
	}

	if !account.Active {
		if err := s.sendActivation(ctx, account); err != nil {
			return nil, err
		}
		return nil, &NeedsActivationError{Email: account.Email}
	}

	access, err := s.Tokens.Issue(jwtx.DomainAccess, account.ID, domain.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Tokens.Issue(jwtx.DomainRefresh, account.ID, domain.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	log.Info("login succeeded", slog.String("account_id", account.ID))

	return &LoginResult{
		Profile: account.Profile(),
		Tokens: domain.TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

// CurrentAccount returns the profile of an authenticated account.
func (s *AccountService) CurrentAccount(ctx context.Context, accountID string) (domain.PublicProfile, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicProfile{}, ErrAccountNotFound
		}
		return domain.PublicProfile{}, fmt.Errorf("lookup account: %w", err)
	}
	return account.Profile(), nil
}

func (s *AccountService) sendActivation(ctx context.Context, account domain.Account) error {
	token, err := s.Tokens.Issue(jwtx.DomainActivation, account.ID, domain.ActivationTokenTTL)
	if err != nil {
		return fmt.Errorf("issue activation token: %w", err)
	}
	if err := s.Mailer.SendActivation(ctx, account.Email, token); err != nil {
		return fmt.Errorf("send activation email: %w", err)
	}

	slogx.FromContext(ctx).Info("activation link sent",
		slog.String("account_id", account.ID),
		slog.String("token_fp", cryptox.FingerprintToken(token)),
	)
	return nil
}

// fallbackDummyHash is a well-formed argon2id hash that matches no
// password. It stands in while the hasher cannot produce a dummy.
const fallbackDummyHash = "$argon2id$v=19$m=19456,t=2,p=1$aW5zdGFtZWRpYS1kdW1teQ$dW5rbm93bi1hY2NvdW50LXBsYWNlaG9sZGVyLWhhc2g"

// dummy returns a hash of a random password. It is computed on first use
// and retried on later calls until hashing succeeds.
func (s *AccountService) dummy() string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash
	}
	h, err := s.Hasher.Hash(cryptox.MustGenerateToken(cryptox.TokenSize128))
	if err != nil {
		return fallbackDummyHash
	}
	s.dummyHash = h
	return h
}
