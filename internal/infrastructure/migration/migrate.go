package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"bomkeeper/internal/app/server/config"
)

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine - реальная реализация для продакшена
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up применяет миграции схемы sheet_rows
func (mg *Migration) Up() (err error) {
	m, err := mg.engine("file://"+mg.cfg.DB.Migrations, mg.cfg.DB.DatabaseURI)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source error: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database error: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
