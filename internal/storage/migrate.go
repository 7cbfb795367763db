package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator returns a migrate instance for the embedded migrations.
// Closing it also closes db.
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

// MigrationVersion returns the applied version, or 0 before the first migration.
func MigrationVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("migration version %d is dirty", version)
	}
	return version, nil
}

// RunMigrations applies every pending migration using its own connection to dsn.
func RunMigrations(dsn string) (pre uint, post uint, err error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return 0, 0, fmt.Errorf("open migration database: %w", err)
	}

	m, err := NewMigrator(db)
	if err != nil {
		db.Close()
		return 0, 0, err
	}
	defer m.Close()

	pre, err = MigrationVersion(m)
	if err != nil {
		return 0, 0, fmt.Errorf("pre-migration version: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return pre, 0, fmt.Errorf("run migrations: %w", err)
	}

	post, err = MigrationVersion(m)
	if err != nil {
		return pre, 0, fmt.Errorf("post-migration version: %w", err)
	}
	return pre, post, nil
}
