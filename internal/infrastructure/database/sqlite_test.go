package database

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN(":memory:"))
	assert.Equal(t, "file:data/alexandria.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("data/alexandria.db"))
	assert.Equal(t, "file:x.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:x.db?mode=rwc"))
}

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"publishers", "books", "book_details"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func openBareSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", SQLiteDSN(":memory:"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

var shelfMigrations = fstest.MapFS{
	"00002_labels.sql": {Data: []byte(`-- +goose Up
CREATE TABLE labels (id INTEGER PRIMARY KEY, shelf_id INTEGER REFERENCES shelves (id));

-- +goose Down
DROP TABLE labels;
`)},
	"00001_shelves.sql": {Data: []byte(`-- +goose Up
CREATE TABLE shelves (id INTEGER PRIMARY KEY, name TEXT);

-- +goose Down
DROP TABLE shelves;
`)},
	"README.md": {Data: []byte(`not a migration`)},
}

func TestOpenSQLite_RecordsSchemaVersion(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	version, err := SchemaVersion(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestMigrate_AppliesOnceInOrder(t *testing.T) {
	ctx := context.Background()
	db := openBareSQLite(t)

	version, err := Migrate(ctx, db, DialectSQLite, shelfMigrations)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	version, err = Migrate(ctx, db, DialectSQLite, shelfMigrations)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = db.ExecContext(ctx, `INSERT INTO shelves (id, name) VALUES (1, 'fiction')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO labels (id, shelf_id) VALUES (1, 1)`)
	assert.NoError(t, err)
}

func TestMigrate_StopsAtFailingMigration(t *testing.T) {
	ctx := context.Background()
	db := openBareSQLite(t)

	fsys := fstest.MapFS{
		"00001_shelves.sql": shelfMigrations["00001_shelves.sql"],
		"00002_broken.sql":  {Data: []byte("-- +goose Up\nCREATE TABLE oops (id INTEGER PRIMARY KEY,);\n")},
	}

	_, err := Migrate(ctx, db, DialectSQLite, fsys)
	require.Error(t, err)

	version, err := SchemaVersion(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.True(t, tableExists(t, db, "shelves"))
	assert.False(t, tableExists(t, db, "oops"))
}

func TestRollback_RevertsLatest(t *testing.T) {
	ctx := context.Background()
	db := openBareSQLite(t)

	_, err := Migrate(ctx, db, DialectSQLite, shelfMigrations)
	require.NoError(t, err)

	version, err := Rollback(ctx, db, DialectSQLite, shelfMigrations)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.False(t, tableExists(t, db, "labels"))
	assert.True(t, tableExists(t, db, "shelves"))
}

func TestMigrate_UnknownDialect(t *testing.T) {
	_, err := Migrate(context.Background(), openBareSQLite(t), "oracle", shelfMigrations)
	assert.ErrorContains(t, err, "unsupported migration dialect")
}
