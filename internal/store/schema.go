package store

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// schemaTable records which loan-table migrations have been applied.
const schemaTable = "loanwatch_schema_migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// upgradeSchema creates or upgrades the customers and transactions tables on
// r.db and returns the resulting schema version.
func (r *SQLiteRepository) upgradeSchema() (uint, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{MigrationsTable: schemaTable})
	if err != nil {
		return 0, fmt.Errorf("preparing %s: %w", schemaTable, err)
	}

	// Not closed: closing m would close r.db through the driver.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return 0, fmt.Errorf("preparing migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty; fix %s by hand", version, schemaTable)
	}
	return version, src.Close()
}
