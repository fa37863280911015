package bom

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Product: Product{
			ItemCode:           "IC-1",
			SKU:                "SKU-1",
			ProductDescription: "Hex bolt M8",
		},
		Vendors: []Vendor{{Name: "Acme"}},
	}
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(d *Draft)
		wantErr     error
		expectedMsg string
	}{
		{
			name:   "valid draft",
			mutate: func(d *Draft) {},
		},
		{
			name:        "missing description",
			mutate:      func(d *Draft) { d.ProductDescription = "" },
			wantErr:     ErrMissingProductFields,
			expectedMsg: MsgMissingProductFields,
		},
		{
			name:        "missing item code",
			mutate:      func(d *Draft) { d.ItemCode = "" },
			wantErr:     ErrMissingProductFields,
			expectedMsg: MsgMissingProductFields,
		},
		{
			name:        "no vendors",
			mutate:      func(d *Draft) { d.Vendors = nil },
			wantErr:     ErrNoVendors,
			expectedMsg: MsgNoVendors,
		},
		{
			name:        "empty vendor list",
			mutate:      func(d *Draft) { d.Vendors = []Vendor{} },
			wantErr:     ErrNoVendors,
			expectedMsg: MsgNoVendors,
		},
		{
			name: "product fields reported before vendors",
			mutate: func(d *Draft) {
				d.SKU = ""
				d.Vendors = nil
			},
			wantErr:     ErrMissingProductFields,
			expectedMsg: MsgMissingProductFields,
		},
		{
			name: "optional fields may be empty",
			mutate: func(d *Draft) {
				d.Category = ""
				d.ApproxPrice = ""
				d.OrderLink = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}

func TestCheckSKU(t *testing.T) {
	records := []Record{
		{ID: "1", Product: Product{SKU: "A"}},
		{ID: "2", Product: Product{SKU: "B"}},
	}

	assert.NoError(t, CheckSKU(records, "C", ""))
	assert.NoError(t, CheckSKU(records, "A", "1"))

	err := CheckSKU(records, "B", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSKU)
	assert.Equal(t, MsgDuplicateSKU, err.Error())
}

func TestCheckVendor(t *testing.T) {
	list := []Vendor{{Name: "Acme"}}

	assert.NoError(t, CheckVendor(list, Vendor{Name: "Globex"}))
	assert.ErrorIs(t, CheckVendor(list, Vendor{Name: "   "}), ErrEmptyVendorName)
	assert.ErrorIs(t, CheckVendor(list, Vendor{Name: "ACME"}), ErrDuplicateVendorName)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{name: "empty collection", ids: nil, expected: "1"},
		{name: "non numeric counts as zero", ids: []string{"3", "7", "x"}, expected: "8"},
		{name: "only non numeric", ids: []string{"abc"}, expected: "1"},
		{name: "numeric prefix", ids: []string{"12abc", "4"}, expected: "13"},
		{name: "lexicographic order does not matter", ids: []string{"9", "10"}, expected: "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Record, len(tt.ids))
			for i, id := range tt.ids {
				records[i] = Record{ID: id}
			}
			assert.Equal(t, tt.expected, NextID(records))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "10", expected: "10"},
		{in: "5.5", expected: "5.5"},
		{in: "abc", expected: "0"},
		{in: "", expected: "0"},
		{in: " 12.75 INR", expected: "12.75"},
		{in: ".5", expected: "0.5"},
		{in: "-3", expected: "-3"},
		{in: "1e2", expected: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePrice(tt.in)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}
