// Package storetest holds behaviour checks shared by every store driver.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/idx"
	"github.com/stretchr/testify/require"
)

// NewAccount returns an inactive account with a fresh id.
func NewAccount(username, email string) domain.Account {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RunAccounts exercises the store.Accounts contract. newStore must return
// an empty, migrated store.
func RunAccounts(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("create and lookup", func(t *testing.T) {
		ctx := context.Background()
		st := newStore(t)
		accounts := st.Accounts()

		bio := "hello"
		a := NewAccount("alice", "alice@x.com")
		a.Bio = &bio
		require.NoError(t, accounts.CreateAccount(ctx, a))

		byID, err := accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a.Username, byID.Username)
		require.Equal(t, a.Email, byID.Email)
		require.Equal(t, a.PasswordHash, byID.PasswordHash)
		require.False(t, byID.Active)
		require.Nil(t, byID.AvatarURL)
		require.NotNil(t, byID.Bio)
		require.Equal(t, "hello", *byID.Bio)
		require.WithinDuration(t, a.CreatedAt, byID.CreatedAt, time.Second)

		byEmail, err := accounts.GetAccountByEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Equal(t, a.ID, byEmail.ID)

		for _, ident := range []string{"alice", "alice@x.com"} {
			got, err := accounts.GetAccountByIdentifier(ctx, ident)
			require.NoError(t, err, ident)
			require.Equal(t, a.ID, got.ID, ident)
		}
	})

	t.Run("missing rows", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()

		_, err := accounts.GetAccountByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = accounts.GetAccountByEmail(ctx, "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = accounts.GetAccountByIdentifier(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
		err = accounts.UpdatePasswordHash(ctx, idx.New().String(), "hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("find taken", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()
		require.NoError(t, accounts.CreateAccount(ctx, NewAccount("alice", "alice@x.com")))

		tests := []struct {
			username, email string
			wantUser        bool
			wantEmail       bool
		}{
			{"bob", "bob@x.com", false, false},
			{"alice", "bob@x.com", true, false},
			{"bob", "alice@x.com", false, true},
			{"alice", "alice@x.com", true, true},
		}
		for _, tt := range tests {
			u, e, err := accounts.FindTaken(ctx, tt.username, tt.email)
			require.NoError(t, err)
			require.Equal(t, tt.wantUser, u, "%s/%s", tt.username, tt.email)
			require.Equal(t, tt.wantEmail, e, "%s/%s", tt.username, tt.email)
		}
	})

	t.Run("unique violations", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()
		require.NoError(t, accounts.CreateAccount(ctx, NewAccount("alice", "alice@x.com")))

		err := accounts.CreateAccount(ctx, NewAccount("alice", "other@x.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
		var conflict *store.ConflictError
		require.True(t, errors.As(err, &conflict))
		require.True(t, conflict.Username)
		require.False(t, conflict.Email)

		err = accounts.CreateAccount(ctx, NewAccount("other", "alice@x.com"))
		require.True(t, errors.As(err, &conflict))
		require.False(t, conflict.Username)
		require.True(t, conflict.Email)
	})

	t.Run("activation is one-way", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()
		a := NewAccount("alice", "alice@x.com")
		require.NoError(t, accounts.CreateAccount(ctx, a))

		changed, err := accounts.ActivateAccount(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, changed)

		changed, err = accounts.ActivateAccount(ctx, a.ID)
		require.NoError(t, err)
		require.False(t, changed)

		got, err := accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, got.Active)
	})

	t.Run("concurrent activation flips once", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()
		a := NewAccount("alice", "alice@x.com")
		require.NoError(t, accounts.CreateAccount(ctx, a))

		const workers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				changed, err := accounts.ActivateAccount(ctx, a.ID)
				if err == nil && changed {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		require.Equal(t, 1, wins)
	})

	t.Run("update password hash", func(t *testing.T) {
		ctx := context.Background()
		accounts := newStore(t).Accounts()
		a := NewAccount("alice", "alice@x.com")
		require.NoError(t, accounts.CreateAccount(ctx, a))

		require.NoError(t, accounts.UpdatePasswordHash(ctx, a.ID, "new-hash"))

		got, err := accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.PasswordHash)
		require.False(t, got.UpdatedAt.Before(a.UpdatedAt))
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(context.Background()))
	})
}
