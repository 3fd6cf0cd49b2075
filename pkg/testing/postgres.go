package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/trainingtracker/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetDBPool connects to the training_db on POSTGRES_HOST (localhost by
// default), applies the schema and empties the profile tree so every test
// starts from scratch.
func GetDBPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: [%s]", host)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     "5432",
		DBName:     "training_db",
		DBPassword: os.Getenv("TRAINING_DB_PASSWORD"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Close()
		cancel()
	})

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE profile RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)

	return ctx, pool
}
