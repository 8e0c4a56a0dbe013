package postgres

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations returns the user store schema migrations for pg.Migrate.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// The embedded tree always contains the migrations directory.
		panic(err)
	}
	return sub
}
