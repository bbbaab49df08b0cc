package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway Postgres and returns its DSN.
func setupPostgresContainer(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "instamedia",
			"POSTGRES_PASSWORD": "instamedia",
			"POSTGRES_DB":       "auth",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://instamedia:instamedia@%s:%s/auth?sslmode=disable", host, mappedPort.Port())
}

func TestAccounts(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	// One container, one schema per subtest.
	storetest.RunAccounts(t, func(t *testing.T) store.Store {
		st, err := postgres.NewStore(ctx, dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		require.NoError(t, st.ApplyMigrations())
		require.NoError(t, postgres.Truncate(ctx, st))
		return st
	})
}
