// Package dbtest opens the PostgreSQL database named by DB_DSN for repository
// integration tests. Tests skip when DB_DSN is unset.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"alexandria-backend/internal/infrastructure/database"
	"alexandria-backend/internal/infrastructure/database/migrations"
)

// lockKey serializes test packages that share the database
const lockKey = 424242

// Postgres migrates the DB_DSN database, empties every catalog table and
// returns a pool. The database stays locked for t until cleanup.
func Postgres(t testing.TB) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_DSN is not set")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect %s: %v", dsn, err)
	}
	t.Cleanup(pool.Close)

	lock, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire lock connection: %v", err)
	}
	if _, err := lock.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		lock.Release()
		t.Fatalf("advisory lock: %v", err)
	}
	t.Cleanup(func() {
		_, _ = lock.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
		lock.Release()
	})

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open %s: %v", dsn, err)
	}
	defer db.Close()

	if _, err := database.Migrate(ctx, db, database.DialectPostgres, migrations.Postgres()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if _, err := pool.Exec(ctx, `TRUNCATE book_details, books, publishers RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return pool
}
