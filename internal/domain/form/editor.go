package form

import "bomkeeper/internal/domain/bom"

// Editor pairs the product draft with its vendor list and tracks whether
// the pair edits an existing record.
type Editor struct {
	Product ProductDraft
	Vendors *VendorList
}

func NewEditor(confirm bom.Confirmer) *Editor {
	return &Editor{Vendors: NewVendorList(confirm)}
}

// BeginEdit copies rec into both drafts and remembers its id.
func (e *Editor) BeginEdit(rec bom.Record) {
	e.Product = ProductDraft{Product: rec.Product, EditingID: rec.ID}
	e.Vendors.Replace(rec.Vendors)
}

// Cancel discards both drafts and the remembered id.
func (e *Editor) Cancel() {
	e.Product.Reset()
	e.Vendors.Reset()
}

func (e *Editor) EditingID() string {
	return e.Product.EditingID
}

// Draft combines the two drafts for saving.
func (e *Editor) Draft() bom.Draft {
	return bom.Draft{Product: e.Product.Product, Vendors: e.Vendors.Items()}
}
