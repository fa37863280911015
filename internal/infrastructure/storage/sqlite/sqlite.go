package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/domain/sheet"
)

// SheetRepository хранит строки листов в SQLite, каждая строка - JSON объект
type SheetRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*SheetRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	repo := &SheetRepository{
		db:  db,
		log: log.With("component", "sqlite_sheet_repository"),
	}

	if err := repo.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return repo, nil
}

func (r *SheetRepository) initTables() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS sheet_rows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sheet TEXT NOT NULL,
			data TEXT NOT NULL DEFAULT '{}'
		);

		CREATE INDEX IF NOT EXISTS idx_sheet_rows_sheet ON sheet_rows(sheet, id);
	`)
	return err
}

func (r *SheetRepository) List(ctx context.Context, name string) ([]sheet.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM sheet_rows WHERE sheet = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("list rows: %w", err)
	}
	defer rows.Close()

	var out []sheet.Row
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var row sheet.Row
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SheetRepository) Insert(ctx context.Context, name string, rows []sheet.Row) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sheet_rows (sheet, data) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encode row: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, name, string(data)); err != nil {
			return 0, fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rows), nil
}

func (r *SheetRepository) Update(ctx context.Context, name, column, value string, patch sheet.Row) (int, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return 0, fmt.Errorf("encode patch: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE sheet_rows SET data = json_patch(data, ?)
		WHERE sheet = ? AND json_extract(data, ?) = ?`,
		string(data), name, jsonPath(column), value)
	if err != nil {
		return 0, fmt.Errorf("update rows: %w", err)
	}
	return affected(res)
}

func (r *SheetRepository) Delete(ctx context.Context, name, column, value string) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM sheet_rows
		WHERE sheet = ? AND json_extract(data, ?) = ?`,
		name, jsonPath(column), value)
	if err != nil {
		return 0, fmt.Errorf("delete rows: %w", err)
	}
	return affected(res)
}

func (r *SheetRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SheetRepository) Close() error {
	return r.db.Close()
}

func jsonPath(column string) string {
	return "$." + strconv.Quote(column)
}

func affected(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
