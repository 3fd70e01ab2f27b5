// Package migrations embeds the schema for both storage drivers.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL goose migrations, applied by cmd/migrate.
func Postgres() fs.FS {
	sub, _ := fs.Sub(files, "postgres")
	return sub
}

// SQLite returns the SQLite goose migrations, applied when the embedded store opens.
func SQLite() fs.FS {
	sub, _ := fs.Sub(files, "sqlite")
	return sub
}
