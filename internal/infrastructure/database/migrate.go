package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

// goose dialect names
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// goose keeps the dialect and base FS in package state
var gooseMu sync.Mutex

// gooseLogger routes goose output through zerolog
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	log.Info().Msgf("[MIGRATE] "+strings.TrimSpace(format), v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf("[MIGRATE] "+strings.TrimSpace(format), v...)
}

func withGoose(dialect string, fsys fs.FS, fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("unsupported migration dialect %q: %w", dialect, err)
	}
	return fn()
}

// Migrate applies every pending goose migration at the root of fsys and
// returns the resulting schema version
func Migrate(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS) (int64, error) {
	var version int64
	err := withGoose(dialect, fsys, func() error {
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}

		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// Rollback reverts the most recent migration and returns the version left in place
func Rollback(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS) (int64, error) {
	var version int64
	err := withGoose(dialect, fsys, func() error {
		if err := goose.DownContext(ctx, db, "."); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}

		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// SchemaVersion reports the latest applied migration version
func SchemaVersion(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	var version int64
	err := withGoose(dialect, nil, func() error {
		v, err := goose.GetDBVersionContext(ctx, db)
		version = v
		return err
	})
	return version, err
}
