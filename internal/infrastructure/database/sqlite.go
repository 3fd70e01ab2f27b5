package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"alexandria-backend/internal/infrastructure/database/migrations"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// SQLiteDSN turns a file path (or ":memory:") into a go-sqlite3 DSN with
// foreign keys enforced.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// OpenSQLite opens the embedded store and applies its schema.
// A single connection is used so that ":memory:" databases survive for the
// lifetime of the handle and writers never contend.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	version, err := Migrate(ctx, db, DialectSQLite, migrations.SQLite())
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("path", path).Int64("schema_version", version).Msg("[DATABASE] SQLite store ready")
	return db, nil
}
