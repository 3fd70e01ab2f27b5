package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alexandria-backend/internal/config"
	"alexandria-backend/internal/infrastructure/database"
)

func TestRun_SQLiteCommands(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}}

	db, dialect, fsys, err := open(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, database.DialectSQLite, dialect)

	require.NoError(t, run(ctx, "status", db, dialect, fsys))

	require.NoError(t, run(ctx, "down", db, dialect, fsys))
	version, err := database.SchemaVersion(ctx, db, dialect)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, run(ctx, "up", db, dialect, fsys))
	version, err = database.SchemaVersion(ctx, db, dialect)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	assert.ErrorContains(t, run(ctx, "redo", db, dialect, fsys), "unknown command")
}
