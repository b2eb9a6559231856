package repositories

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/repositories/migrations"
)

// ApplyMigrations brings the schema up to date using the embedded migration files.
func ApplyMigrations(db *sqlx.DB) error {
	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return err
	}

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, _ := instance.Version()
	logger.Log.Infow("migrations applied", "version", version, "dirty", dirty)
	return nil
}
