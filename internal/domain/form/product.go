package form

import "bomkeeper/internal/domain/bom"

// ProductDraft is the product being created or edited.
// An empty EditingID means a new record.
type ProductDraft struct {
	bom.Product
	EditingID string
}

func (d *ProductDraft) Reset() {
	*d = ProductDraft{}
}

func (d *ProductDraft) Creating() bool {
	return d.EditingID == ""
}

// FillFromSKU copies the scalar fields of the first record carrying sku.
// The draft keeps no link to the record. It reports whether a record matched.
func (d *ProductDraft) FillFromSKU(records []bom.Record, sku string) bool {
	for _, r := range records {
		if r.SKU == sku {
			d.Product = r.Product
			return true
		}
	}
	return false
}
