package migrations

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

// Up applies every pending migration for the driver ("sqlite" or "postgres").
// It uses its own connection because closing the migrator closes the database.
func Up(driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer db.Close()

	var instance database.Driver
	switch driver {
	case "sqlite":
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
	case "postgres":
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return errors.Errorf("no migrations for driver %s", driver)
	}
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	src, err := iofs.New(migrationsFS, driver)
	if err != nil {
		return errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, instance)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}
