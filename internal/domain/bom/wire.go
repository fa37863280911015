package bom

import (
	"fmt"
	"strconv"
)

// WireRecord is the flat row shape stored in the spreadsheet.
// ID is omitted from update payloads.
type WireRecord struct {
	ID                 string `json:"id,omitempty"`
	ItemCode           string `json:"itemCode"`
	SKU                string `json:"sku"`
	ProductDescription string `json:"productDescription"`
	Category           string `json:"category"`
	ApproxPrice        string `json:"approxPrice"`
	OrderLink          string `json:"orderLink"`
	Vendors            string `json:"vendors"`
}

// ToWire flattens a draft into a row, encoding its vendors with codec.
func ToWire(id string, d Draft, codec VendorCodec) WireRecord {
	return WireRecord{
		ID:                 id,
		ItemCode:           d.ItemCode,
		SKU:                d.SKU,
		ProductDescription: d.ProductDescription,
		Category:           d.Category,
		ApproxPrice:        d.ApproxPrice,
		OrderLink:          d.OrderLink,
		Vendors:            codec.Encode(d.Vendors),
	}
}

// FromWire coerces an untyped row returned by the remote service into a Record.
// Non-string scalars are stringified; missing fields become empty strings.
func FromWire(row map[string]any, codec VendorCodec) Record {
	return Record{
		ID: stringOf(row[FieldID]),
		Product: Product{
			ItemCode:           stringOf(row[FieldItemCode]),
			SKU:                stringOf(row[FieldSKU]),
			ProductDescription: stringOf(row[FieldProductDescription]),
			Category:           stringOf(row[FieldCategory]),
			ApproxPrice:        stringOf(row[FieldApproxPrice]),
			OrderLink:          stringOf(row[FieldOrderLink]),
		},
		Vendors: codec.Decode(row[FieldVendors]),
	}
}

func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
