package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/domain/sheet"
)

type SheetRepository struct {
	storage *Storage
	pool    *pgxpool.Pool
	log     *slog.Logger
}

func NewSheetRepository(storage *Storage, log *slog.Logger) *SheetRepository {
	return &SheetRepository{
		storage: storage,
		pool:    storage.Pool(),
		log:     log.With("component", "sheet_repository"),
	}
}

func (r *SheetRepository) List(ctx context.Context, name string) ([]sheet.Row, error) {
	const query = `
		SELECT data
		FROM sheet_rows
		WHERE sheet = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		r.log.Error("failed to list rows", "sheet", name, "error", err)
		return nil, fmt.Errorf("list rows: %w", err)
	}
	defer rows.Close()

	var out []sheet.Row
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var row sheet.Row
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SheetRepository) Insert(ctx context.Context, name string, rows []sheet.Row) (int, error) {
	const query = `INSERT INTO sheet_rows (sheet, data) VALUES ($1, $2::jsonb)`

	batch := &pgx.Batch{}
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encode row: %w", err)
		}
		batch.Queue(query, name, string(data))
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			r.log.Error("failed to insert row", "sheet", name, "error", err)
			return 0, fmt.Errorf("insert row: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rows), nil
}

func (r *SheetRepository) Update(ctx context.Context, name, column, value string, patch sheet.Row) (int, error) {
	const query = `
		UPDATE sheet_rows
		SET data = data || $1::jsonb
		WHERE sheet = $2 AND data->>$3 = $4`

	data, err := json.Marshal(patch)
	if err != nil {
		return 0, fmt.Errorf("encode patch: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, string(data), name, column, value)
	if err != nil {
		r.log.Error("failed to update rows", "sheet", name, "column", column, "error", err)
		return 0, fmt.Errorf("update rows: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *SheetRepository) Delete(ctx context.Context, name, column, value string) (int, error) {
	const query = `
		DELETE FROM sheet_rows
		WHERE sheet = $1 AND data->>$2 = $3`

	tag, err := r.pool.Exec(ctx, query, name, column, value)
	if err != nil {
		r.log.Error("failed to delete rows", "sheet", name, "column", column, "error", err)
		return 0, fmt.Errorf("delete rows: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *SheetRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *SheetRepository) Close() error {
	return r.storage.Close()
}
