package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/domain/sheet"
)

func newTestRepo(t *testing.T) *SheetRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "sheet.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSheetRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	n, err := repo.Insert(ctx, "bom", []sheet.Row{
		{"id": "1", "sku": "BOLT-8", "vendors": "Acme,1,A"},
		{"id": "2", "sku": "NUT-4"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.Insert(ctx, "other", []sheet.Row{{"id": "1", "sku": "ELSEWHERE"}})
	require.NoError(t, err)

	rows, err := repo.List(ctx, "bom")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BOLT-8", rows[0]["sku"])
	assert.Equal(t, "NUT-4", rows[1]["sku"])

	t.Run("update merges fields", func(t *testing.T) {
		n, err := repo.Update(ctx, "bom", "id", "2", sheet.Row{"sku": "NUT-5", "category": "Fasteners"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		rows, err := repo.List(ctx, "bom")
		require.NoError(t, err)
		assert.Equal(t, sheet.Row{"id": "2", "sku": "NUT-5", "category": "Fasteners"}, rows[1])
	})

	t.Run("update without match", func(t *testing.T) {
		n, err := repo.Update(ctx, "bom", "id", "99", sheet.Row{"sku": "X"})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("delete scoped to sheet", func(t *testing.T) {
		n, err := repo.Delete(ctx, "bom", "id", "1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		rows, err := repo.List(ctx, "bom")
		require.NoError(t, err)
		require.Len(t, rows, 1)

		other, err := repo.List(ctx, "other")
		require.NoError(t, err)
		assert.Len(t, other, 1)
	})

	t.Run("empty sheet", func(t *testing.T) {
		rows, err := repo.List(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestSheetRepository_Ping(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Ping(context.Background()))
}
