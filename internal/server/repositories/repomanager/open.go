package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/server/migrations"
)

// Storage drivers accepted by Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open connects to the configured store, verifies the connection and brings
// the schema up to date.
//
// SQLite is limited to a single connection: writers would otherwise contend
// for the database lock, and ":memory:" databases are per connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		m          RepositoryManager
		driverName string
	)

	switch driver {
	case DriverPostgres:
		m, driverName = &PostgresRepositoryManager{}, migrations.DriverPostgres
	case DriverSQLite:
		m, driverName = &SQLiteRepositoryManager{}, migrations.DriverSQLite
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, m, nil
}
