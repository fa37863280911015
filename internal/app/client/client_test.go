package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/app/client/config"
	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/domain/form"
	"bomkeeper/internal/domain/intent"
	"bomkeeper/internal/domain/view"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListRecords(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]map[string]any)
	return rows, args.Error(1)
}

func (m *MockRemote) CreateRecord(ctx context.Context, rec bom.WireRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRemote) UpdateRecord(ctx context.Context, id string, rec bom.WireRecord) error {
	return m.Called(ctx, id, rec).Error(0)
}

func (m *MockRemote) DeleteRecord(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Env:            "local",
		SheetURL:       "http://sheet.test/api/v1/bom",
		RequestTimeout: time.Second,
		PageSize:       12,
	}
}

func sheetRows() []map[string]any {
	return []map[string]any{
		{"id": "1", "itemCode": "IC-1", "sku": "BOLT-8", "productDescription": "Hex bolt", "category": "Fasteners", "approxPrice": "10", "vendors": "Acme,555,Main St"},
		{"id": "2", "itemCode": "IC-2", "sku": "WASH-2", "productDescription": "Washer", "category": "Fasteners", "approxPrice": "5", "vendors": ""},
		{"id": 3.0, "itemCode": "IC-3", "sku": "CAP-1", "productDescription": "Capacitor", "category": "Electronics", "approxPrice": "2.5", "vendors": "Globex,,"},
	}
}

type statusLog struct {
	mu   sync.Mutex
	seen []Status
}

func (l *statusLog) record(st Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = append(l.seen, st)
}

func (l *statusLog) last() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.seen) == 0 {
		return Status{}
	}
	return l.seen[len(l.seen)-1]
}

func (l *statusLog) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.seen))
	for _, st := range l.seen {
		out = append(out, st.Message)
	}
	return out
}

func newTestApp(t *testing.T, remote Remote, confirm bom.Confirmer) (*App, *statusLog) {
	t.Helper()
	statuses := &statusLog{}
	app, err := newApp(testConfig(), slog.Default(), remote, confirm, statuses.record)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app, statuses
}

func validDraft() bom.Draft {
	return bom.Draft{
		Product: bom.Product{ItemCode: "IC-9", SKU: "NEW-1", ProductDescription: "New part", ApproxPrice: "7"},
		Vendors: []bom.Vendor{{Name: "Initech", Phone: "1", Address: "A"}},
	}
}

func TestApp_LoadAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()

		app, statuses := newTestApp(t, remote, bom.Always)

		records, err := app.LoadAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "3", records[2].ID)
		assert.Equal(t, []bom.Vendor{{Name: "Acme", Phone: "555", Address: "Main St"}}, records[0].Vendors)
		assert.Empty(t, records[1].Vendors)
		assert.Equal(t, StatusSuccess, statuses.last().Kind)
		assert.Equal(t, "Loaded 3 records successfully", statuses.last().Message)
		remote.AssertExpectations(t)
	})

	t.Run("http failure keeps collection", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()
		remote.On("ListRecords", mock.Anything).Return(nil, &HTTPError{Status: 503, Body: "down"}).Once()

		app, statuses := newTestApp(t, remote, bom.Always)
		_, err := app.LoadAll(context.Background())
		require.NoError(t, err)

		_, err = app.LoadAll(context.Background())
		require.Error(t, err)

		assert.Len(t, app.Records(), 3)
		assert.Equal(t, StatusError, statuses.last().Kind)
		assert.Equal(t, "Error loading BOM data: HTTP error! status: 503", statuses.last().Message)
	})

	t.Run("network failure", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListRecords", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		app, statuses := newTestApp(t, remote, bom.Always)
		_, err := app.LoadAll(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Error loading BOM data: connection refused", statuses.last().Message)
	})
}

func TestApp_Create(t *testing.T) {
	t.Run("validation blocks remote call", func(t *testing.T) {
		tests := []struct {
			name    string
			draft   func() bom.Draft
			wantErr error
			wantMsg string
		}{
			{
				name:    "missing sku",
				draft:   func() bom.Draft { d := validDraft(); d.SKU = ""; return d },
				wantErr: bom.ErrMissingProductFields,
				wantMsg: bom.MsgMissingProductFields,
			},
			{
				name:    "no vendors",
				draft:   func() bom.Draft { d := validDraft(); d.Vendors = nil; return d },
				wantErr: bom.ErrNoVendors,
				wantMsg: bom.MsgNoVendors,
			},
			{
				name:    "duplicate sku",
				draft:   func() bom.Draft { d := validDraft(); d.SKU = "BOLT-8"; return d },
				wantErr: bom.ErrDuplicateSKU,
				wantMsg: bom.MsgDuplicateSKU,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				remote := new(MockRemote)
				remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()

				app, statuses := newTestApp(t, remote, bom.Always)
				_, err := app.LoadAll(context.Background())
				require.NoError(t, err)

				_, err = app.Create(context.Background(), tt.draft())
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusError, statuses.last().Kind)
				assert.Equal(t, tt.wantMsg, statuses.last().Message)
				remote.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("declined confirmation", func(t *testing.T) {
		remote := new(MockRemote)
		app, _ := newTestApp(t, remote, bom.Never)

		_, err := app.Create(context.Background(), validDraft())
		assert.ErrorIs(t, err, bom.ErrNotConfirmed)
		remote.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
	})

	t.Run("assigns next id and reloads", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil)
		remote.On("CreateRecord", mock.Anything, mock.MatchedBy(func(w bom.WireRecord) bool {
			return w.ID == "4" && w.SKU == "NEW-1" && w.Vendors == "Initech,1,A"
		})).Return(nil).Once()

		var prompts []string
		confirm := bom.ConfirmFunc(func(p string) bool {
			prompts = append(prompts, p)
			return true
		})

		app, statuses := newTestApp(t, remote, confirm)
		_, err := app.LoadAll(context.Background())
		require.NoError(t, err)

		rec, err := app.Create(context.Background(), validDraft())
		require.NoError(t, err)
		assert.Equal(t, "4", rec.ID)
		assert.Equal(t, []string{"Are you sure you want to save this new record?"}, prompts)
		assert.Contains(t, statuses.messages(), "New record saved successfully with ID: 4")

		app.Settle()
		remote.AssertNumberOfCalls(t, "ListRecords", 2)
	})

	t.Run("remote failure", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("CreateRecord", mock.Anything, mock.Anything).
			Return(&HTTPError{Status: 400, Body: "bad"}).Once()

		app, statuses := newTestApp(t, remote, bom.Always)

		_, err := app.Create(context.Background(), validDraft())
		require.Error(t, err)
		assert.Equal(t, "Error saving data: HTTP error! status: 400, details: bad", statuses.last().Message)

		app.Settle()
		remote.AssertNotCalled(t, "ListRecords", mock.Anything)
	})
}

func TestApp_Save(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil)
	remote.On("UpdateRecord", mock.Anything, "1", mock.MatchedBy(func(w bom.WireRecord) bool {
		return w.ID == "" && w.SKU == "BOLT-8" && w.ProductDescription == "Hex bolt M8"
	})).Return(nil).Once()

	var prompts []string
	confirm := bom.ConfirmFunc(func(p string) bool {
		prompts = append(prompts, p)
		return true
	})

	app, statuses := newTestApp(t, remote, confirm)
	_, err := app.LoadAll(context.Background())
	require.NoError(t, err)

	ed := form.NewEditor(confirm)
	require.NoError(t, app.BeginEdit(ed, "1"))
	assert.Equal(t, "Editing record. Update and save changes.", statuses.last().Message)
	assert.Equal(t, StatusInfo, statuses.last().Kind)

	ed.Product.ProductDescription = "Hex bolt M8"

	rec, err := app.Save(context.Background(), ed)
	require.NoError(t, err)
	assert.Equal(t, "1", rec.ID)
	assert.Equal(t, []string{"Are you sure you want to update record 1?"}, prompts)
	assert.Empty(t, ed.EditingID())
	assert.Equal(t, 0, ed.Vendors.Len())

	app.Settle()
	remote.AssertExpectations(t)
}

func TestApp_BeginEditUnknown(t *testing.T) {
	app, _ := newTestApp(t, new(MockRemote), bom.Always)
	err := app.BeginEdit(form.NewEditor(bom.Always), "42")
	assert.ErrorIs(t, err, bom.ErrNotFound)
}

func TestApp_CancelEdit(t *testing.T) {
	app, statuses := newTestApp(t, new(MockRemote), bom.Always)
	ed := form.NewEditor(bom.Always)
	ed.Product.EditingID = "1"

	app.CancelEdit(ed)
	assert.Empty(t, ed.EditingID())
	assert.Equal(t, "Edit cancelled", statuses.last().Message)
}

func TestApp_Delete(t *testing.T) {
	t.Run("optimistic removal", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()
		remote.On("DeleteRecord", mock.Anything, "2").Return(nil).Once()

		app, statuses := newTestApp(t, remote, bom.Always)
		app.config.DeleteReloadDelay = time.Hour

		_, err := app.LoadAll(context.Background())
		require.NoError(t, err)

		require.NoError(t, app.Delete(context.Background(), "2"))
		_, ok := app.Record("2")
		assert.False(t, ok)
		assert.Len(t, app.Records(), 2)
		assert.Equal(t, "Record 2 deleted successfully!", statuses.last().Message)
	})

	t.Run("declined", func(t *testing.T) {
		remote := new(MockRemote)
		app, _ := newTestApp(t, remote, bom.Never)

		err := app.Delete(context.Background(), "2")
		assert.ErrorIs(t, err, bom.ErrNotConfirmed)
		remote.AssertNotCalled(t, "DeleteRecord", mock.Anything, mock.Anything)
	})

	t.Run("categorized failures", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want string
		}{
			{name: "400", err: &HTTPError{Status: http.StatusBadRequest}, want: "Error deleting record. The server rejected the request. Please check if the record exists."},
			{name: "404", err: &HTTPError{Status: http.StatusNotFound}, want: "Error deleting record. Record not found. It may have been already deleted."},
			{name: "500", err: &HTTPError{Status: http.StatusInternalServerError}, want: "Error deleting record. Server error. Please try again later."},
			{name: "other status", err: &HTTPError{Status: http.StatusBadGateway}, want: "Error deleting record. Please check console for details."},
			{name: "network", err: errors.New("dial tcp: refused"), want: "Error deleting record. Please check console for details."},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				remote := new(MockRemote)
				remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()
				remote.On("DeleteRecord", mock.Anything, "1").Return(tt.err).Once()

				app, statuses := newTestApp(t, remote, bom.Always)
				_, err := app.LoadAll(context.Background())
				require.NoError(t, err)

				err = app.Delete(context.Background(), "1")
				require.Error(t, err)
				assert.Equal(t, tt.want, statuses.last().Message)
				assert.Len(t, app.Records(), 3)

				app.Settle()
				remote.AssertNumberOfCalls(t, "ListRecords", 1)
			})
		}
	})
}

func TestApp_ViewAndStats(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()

	app, _ := newTestApp(t, remote, bom.Always)
	_, err := app.LoadAll(context.Background())
	require.NoError(t, err)

	page := app.View(view.Query{Category: "Fasteners", Sort: view.SortState{Field: bom.FieldSKU, Direction: view.Desc}, Page: 1, PageSize: 10})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "WASH-2", page.Items[0].SKU)

	stats := app.Stats()
	assert.Equal(t, 3, stats.Records)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, "17.5", stats.TotalPrice.String())

	assert.Equal(t, []string{"BOLT-8", "WASH-2", "CAP-1"}, app.SKUs())
	assert.Equal(t, []string{"Fasteners", "Electronics"}, app.Categories())
}

func TestApp_GenerateIntent(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListRecords", mock.Anything).Return(sheetRows(), nil).Once()

	app, statuses := newTestApp(t, remote, bom.Always)
	_, err := app.LoadAll(context.Background())
	require.NoError(t, err)

	t.Run("empty selection", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := app.GenerateIntent(form.NewSelection(), &buf)
		assert.ErrorIs(t, err, intent.ErrNoSelection)
		assert.Equal(t, intent.MsgNoSelection, statuses.last().Message)
		assert.Zero(t, buf.Len())
	})

	t.Run("renders document", func(t *testing.T) {
		sel := form.NewSelection()
		rec, ok := app.Record("1")
		require.True(t, ok)
		sel.Select(rec)
		sel.SetQuantity("1", 3)

		var buf bytes.Buffer
		items, err := app.GenerateIntent(sel, &buf)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Acme", items[0].VendorName)
		assert.Contains(t, buf.String(), "₹30.00")
	})
}

func TestApp_CloseCancelsPendingReload(t *testing.T) {
	remote := new(MockRemote)
	remote.On("DeleteRecord", mock.Anything, "1").Return(nil).Once()

	app, _ := newTestApp(t, remote, bom.Always)
	app.config.DeleteReloadDelay = time.Hour

	require.NoError(t, app.Delete(context.Background(), "1"))
	app.Close()

	remote.AssertNotCalled(t, "ListRecords", mock.Anything)
}
