// Package migrations embeds the goose schema migrations for every supported
// storage driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Driver names as used by database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// goose dialect and embedded directory per driver.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	DriverPostgres: {dialect: "pgx", dir: "postgres"},
	DriverSQLite:   {dialect: "sqlite3", dir: "sqlite"},
}

// Up applies all pending migrations for driver to db. goose keeps package
// level state, so Up must not run concurrently with itself.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect(d.dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("migrate %s: %w", driver, err)
	}
	return nil
}
