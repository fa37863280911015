package sheet

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, sheet string) ([]Row, error)
	Create(ctx context.Context, sheet string, data any) (int, error)
	Update(ctx context.Context, sheet, column, value string, data map[string]any) (int, error)
	Delete(ctx context.Context, sheet, column, value string) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "sheet_service"),
	}
}

// List returns all rows of the sheet in insertion order.
func (s *Service) List(ctx context.Context, sheet string) ([]Row, error) {
	if err := ValidateSheet(sheet); err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, sheet)
	if err != nil {
		s.log.Error("failed to list rows", "sheet", sheet, "error", err)
		return nil, fmt.Errorf("list rows: %w", err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Create appends one or many rows and returns how many were stored.
func (s *Service) Create(ctx context.Context, sheet string, data any) (int, error) {
	if err := ValidateSheet(sheet); err != nil {
		return 0, err
	}

	rows, err := RowsFrom(data)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Insert(ctx, sheet, rows)
	if err != nil {
		s.log.Error("failed to insert rows", "sheet", sheet, "error", err)
		return 0, fmt.Errorf("insert rows: %w", err)
	}

	s.log.Debug("rows created", "sheet", sheet, "count", n)
	return n, nil
}

// Update merges data into every row where column equals value.
func (s *Service) Update(ctx context.Context, sheet, column, value string, data map[string]any) (int, error) {
	if err := s.validateTarget(sheet, column); err != nil {
		return 0, err
	}

	patch, err := RowFrom(data)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Update(ctx, sheet, column, value, patch)
	if err != nil {
		s.log.Error("failed to update rows", "sheet", sheet, "column", column, "error", err)
		return 0, fmt.Errorf("update rows: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	s.log.Debug("rows updated", "sheet", sheet, "column", column, "value", value, "count", n)
	return n, nil
}

// Delete removes every row where column equals value.
func (s *Service) Delete(ctx context.Context, sheet, column, value string) (int, error) {
	if err := s.validateTarget(sheet, column); err != nil {
		return 0, err
	}

	n, err := s.repo.Delete(ctx, sheet, column, value)
	if err != nil {
		s.log.Error("failed to delete rows", "sheet", sheet, "column", column, "error", err)
		return 0, fmt.Errorf("delete rows: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	s.log.Debug("rows deleted", "sheet", sheet, "column", column, "value", value, "count", n)
	return n, nil
}

func (s *Service) validateTarget(sheet, column string) error {
	if err := ValidateSheet(sheet); err != nil {
		return err
	}
	return ValidateColumn(column)
}
