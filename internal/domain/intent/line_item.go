package intent

import (
	"errors"

	"github.com/shopspring/decimal"

	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/domain/form"
)

const (
	MsgNoSelection = "Please select at least one product."

	placeholder = "-"
	noVendor    = "No Vendor"
)

var ErrNoSelection = errors.New("no products selected")

// LineItem is one row of a purchase intent. It is never persisted.
type LineItem struct {
	SNo                int             `json:"sno"`
	PartNumber         string          `json:"partNumber"`
	SKU                string          `json:"sku"`
	ProductDescription string          `json:"productDescription"`
	Quantity           int             `json:"quantity"`
	VendorName         string          `json:"vendorName"`
	Price              decimal.Decimal `json:"price"`
	Total              decimal.Decimal `json:"total"`
}

// Build turns picks into numbered line items using the current records.
// Picks whose record no longer exists are skipped.
func Build(records []bom.Record, picks []form.Pick) ([]LineItem, error) {
	if len(picks) == 0 {
		return nil, &bom.ValidationError{Err: ErrNoSelection, Message: MsgNoSelection}
	}

	byID := make(map[string]bom.Record, len(records))
	for _, r := range records {
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = r
		}
	}

	items := make([]LineItem, 0, len(picks))
	for _, p := range picks {
		r, ok := byID[p.ID]
		if !ok {
			continue
		}

		qty := max(p.Quantity, 1)
		price := bom.ParsePrice(r.ApproxPrice)
		vendor := p.Vendor
		if vendor == "" {
			vendor = r.FirstVendorName()
		}
		if vendor == "" {
			vendor = noVendor
		}

		items = append(items, LineItem{
			SNo:                len(items) + 1,
			PartNumber:         orPlaceholder(r.ItemCode),
			SKU:                orPlaceholder(r.SKU),
			ProductDescription: orPlaceholder(r.ProductDescription),
			Quantity:           qty,
			VendorName:         vendor,
			Price:              price,
			Total:              price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return items, nil
}

// GrandTotal sums the line totals.
func GrandTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
