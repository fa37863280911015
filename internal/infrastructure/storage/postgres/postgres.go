package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bomkeeper/internal/app/server/config"
	"bomkeeper/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
