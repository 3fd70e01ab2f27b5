package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"alexandria-backend/internal/config"
	"alexandria-backend/internal/infrastructure/database"
	"alexandria-backend/internal/infrastructure/database/migrations"
	"alexandria-backend/pkg/logger"
)

// migrate runs goose against the configured store: up, down or status
func main() {
	command := flag.String("command", "up", "Migration command: up, down, status")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, dialect, fsys, err := open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := run(ctx, *command, db, dialect, fsys); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("Migration failed")
	}
}

func open(ctx context.Context, cfg *config.Config) (*sql.DB, string, fs.FS, error) {
	if cfg.Storage.Driver == config.DriverSQLite {
		// OpenSQLite migrates up on open
		db, err := database.OpenSQLite(ctx, cfg.Storage.SQLitePath)
		return db, database.DialectSQLite, migrations.SQLite(), err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, "", nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", nil, err
	}
	return db, database.DialectPostgres, migrations.Postgres(), nil
}

func run(ctx context.Context, command string, db *sql.DB, dialect string, fsys fs.FS) error {
	var (
		version int64
		err     error
	)

	switch command {
	case "up":
		version, err = database.Migrate(ctx, db, dialect, fsys)
	case "down":
		version, err = database.Rollback(ctx, db, dialect, fsys)
	case "status":
		version, err = database.SchemaVersion(ctx, db, dialect)
	default:
		return fmt.Errorf("unknown command %q, use up, down or status", command)
	}
	if err != nil {
		return err
	}

	log.Info().Str("command", command).Int64("schema_version", version).Msg("Migrations complete")
	return nil
}
