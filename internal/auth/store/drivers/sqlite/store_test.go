package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestAccounts(t *testing.T) {
	storetest.RunAccounts(t, newMemoryStore)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.db")

	st, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Close())

	st, err = sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
}
