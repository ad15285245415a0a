package integration_tests

import (
	"context"
	"os"
	"testing"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/database"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// getTestPool establishes a connection pool to the test database.
// It reads the DSN from the TEST_DATABASE_URL environment variable and skips
// the calling test when it is not set.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set; skipping integration test")
	}

	if testPool == nil {
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err, "Failed to connect to test database")

		// Ensure the items table exists before any test runs
		require.NoError(t, database.Initialize(ctx, pool), "Failed to initialize test schema")
		testPool = pool
	}
	return testPool
}

// setupItemService wires the real repository over the test database and
// clears the items table for test isolation.
func setupItemService(t *testing.T) services.ItemService {
	t.Helper()

	pool := getTestPool(t)
	cleanupItems(context.Background(), t, pool)
	return services.NewItemService(postgres.NewItemRepo(pool))
}

// cleanupItems empties the items table.
func cleanupItems(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `DELETE FROM items;`)
	require.NoError(t, err, "Failed to clean items table")
}
