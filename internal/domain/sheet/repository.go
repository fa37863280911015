package sheet

import (
	"context"
)

// Repository хранит строки листов в порядке вставки
type Repository interface {
	List(ctx context.Context, sheet string) ([]Row, error)
	Insert(ctx context.Context, sheet string, rows []Row) (int, error)
	// Update сливает patch со всеми строками, где column == value,
	// и возвращает число измененных строк.
	Update(ctx context.Context, sheet, column, value string, patch Row) (int, error)
	Delete(ctx context.Context, sheet, column, value string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}
