package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/domain/sheet"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, name string) ([]sheet.Row, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sheet.Row), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, name string, data any) (int, error) {
	args := m.Called(ctx, name, data)
	return args.Int(0), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, name, column, value string, data map[string]any) (int, error) {
	args := m.Called(ctx, name, column, value, data)
	return args.Int(0), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, name, column, value string) (int, error) {
	args := m.Called(ctx, name, column, value)
	return args.Int(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc sheet.Servicer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, "bom").Return([]sheet.Row{{"id": "1", "sku": "BOLT-8"}}, nil)

	resp := newTestAPI(t, svc).Get("/api/v1/bom")
	require.Equal(t, http.StatusOK, resp.Code)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rows))
	assert.Equal(t, []map[string]string{{"id": "1", "sku": "BOLT-8"}}, rows)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, "bom", map[string]any{"id": "4", "sku": "NEW-1"}).Return(1, nil)

	resp := newTestAPI(t, svc).Post("/api/v1/bom", map[string]any{
		"data": map[string]any{"id": "4", "sku": "NEW-1"},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"created":1`)
	svc.AssertExpectations(t)
}

func TestHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		result     int
		err        error
		wantStatus int
	}{
		{name: "updated", result: 1, wantStatus: http.StatusOK},
		{name: "not found", err: sheet.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad column", err: sheet.ErrInvalidColumn, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Update", mock.Anything, "bom", "id", "7", map[string]any{"sku": "X"}).Return(tt.result, tt.err)

			resp := newTestAPI(t, svc).Patch("/api/v1/bom/id/7", map[string]any{
				"data": map[string]any{"sku": "X"},
			})
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.err == nil {
				assert.Contains(t, resp.Body.String(), `"updated":1`)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "bom", "id", "3").Return(1, nil)

		resp := newTestAPI(t, svc).Delete("/api/v1/bom/id/3")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"deleted":1`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "bom", "id", "3").Return(0, sheet.ErrNotFound)

		resp := newTestAPI(t, svc).Delete("/api/v1/bom/id/3")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
