package bom

import "strings"

// Field names as they appear on the wire and in sort/search options.
const (
	FieldID                 = "id"
	FieldItemCode           = "itemCode"
	FieldSKU                = "sku"
	FieldProductDescription = "productDescription"
	FieldCategory           = "category"
	FieldApproxPrice        = "approxPrice"
	FieldOrderLink          = "orderLink"
	FieldVendors            = "vendors"
)

// Fields lists every record field in table order.
var Fields = []string{
	FieldID,
	FieldItemCode,
	FieldSKU,
	FieldProductDescription,
	FieldCategory,
	FieldApproxPrice,
	FieldOrderLink,
	FieldVendors,
}

// Product holds the scalar fields of a catalog entry.
type Product struct {
	ItemCode           string `json:"itemCode" validate:"required"`
	SKU                string `json:"sku" validate:"required"`
	ProductDescription string `json:"productDescription" validate:"required"`
	Category           string `json:"category"`
	ApproxPrice        string `json:"approxPrice"`
	OrderLink          string `json:"orderLink"`
}

// Vendor is a supplier attached to a single record.
// ID only identifies the vendor inside an edited list and is never persisted.
type Vendor struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Record is a BOM catalog entry with its decoded vendor list.
type Record struct {
	ID string `json:"id"`
	Product
	Vendors []Vendor `json:"vendors"`
}

// Draft is the unsaved combination of product fields and vendors.
type Draft struct {
	Product
	Vendors []Vendor `validate:"required,min=1"`
}

// Value returns the stringified value of the named field.
// Vendors are rendered in their delimited wire form.
func (r Record) Value(field string) string {
	switch field {
	case FieldID:
		return r.ID
	case FieldItemCode:
		return r.ItemCode
	case FieldSKU:
		return r.SKU
	case FieldProductDescription:
		return r.ProductDescription
	case FieldCategory:
		return r.Category
	case FieldApproxPrice:
		return r.ApproxPrice
	case FieldOrderLink:
		return r.OrderLink
	case FieldVendors:
		return encodeVendors(r.Vendors)
	default:
		return ""
	}
}

// Draft returns an editable copy of the record contents.
func (r Record) Draft() Draft {
	vendors := make([]Vendor, len(r.Vendors))
	copy(vendors, r.Vendors)
	return Draft{Product: r.Product, Vendors: vendors}
}

// FirstVendorName returns the name of the first vendor or an empty string.
func (r Record) FirstVendorName() string {
	if len(r.Vendors) == 0 {
		return ""
	}
	return r.Vendors[0].Name
}

// CanonicalField maps a case-insensitive field name to its canonical spelling.
func CanonicalField(name string) (string, bool) {
	for _, f := range Fields {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return "", false
}
