package migrator

import (
	"errors"
	"fmt"

	ports "prreview-service/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type Migrator struct {
	m   *migrate.Migrate
	log ports.Logger
}

func NewMigrator(migrationsPath, dsn string, log ports.Logger) (*Migrator, error) {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

// Up applies pending migrations; an up-to-date schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("migrations: no change")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	mg.log.Info("migrations applied")
	return nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
