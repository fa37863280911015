package form

import (
	"fmt"

	"github.com/google/uuid"

	"bomkeeper/internal/domain/bom"
)

const MsgRemoveVendor = "Are you sure you want to remove this vendor?"

// VendorField names an editable vendor attribute.
type VendorField string

const (
	VendorName    VendorField = "name"
	VendorPhone   VendorField = "phone"
	VendorAddress VendorField = "address"
)

// VendorList is the vendor draft attached to the current product draft.
type VendorList struct {
	vendors []bom.Vendor
	confirm bom.Confirmer
}

func NewVendorList(confirm bom.Confirmer) *VendorList {
	return &VendorList{confirm: confirm}
}

// Add appends v after rejecting an empty or already used name.
// The stored vendor gets a fresh list-local id.
func (l *VendorList) Add(v bom.Vendor) (bom.Vendor, error) {
	if err := bom.CheckVendor(l.vendors, v); err != nil {
		return bom.Vendor{}, err
	}
	v.ID = uuid.NewString()
	l.vendors = append(l.vendors, v)
	return v, nil
}

// Edit changes one field of the vendor with the given id in place.
func (l *VendorList) Edit(id string, field VendorField, value string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("vendor %s: %w", id, bom.ErrNotFound)
	}

	switch field {
	case VendorName:
		l.vendors[i].Name = value
	case VendorPhone:
		l.vendors[i].Phone = value
	case VendorAddress:
		l.vendors[i].Address = value
	default:
		return fmt.Errorf("unknown vendor field %q", field)
	}
	return nil
}

// Remove deletes the vendor after the user confirms.
func (l *VendorList) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("vendor %s: %w", id, bom.ErrNotFound)
	}
	if !l.confirm.Confirm(MsgRemoveVendor) {
		return bom.ErrNotConfirmed
	}
	l.vendors = append(l.vendors[:i], l.vendors[i+1:]...)
	return nil
}

// Replace loads vendors from a saved record, assigning list-local ids.
func (l *VendorList) Replace(vendors []bom.Vendor) {
	l.vendors = make([]bom.Vendor, len(vendors))
	for i, v := range vendors {
		v.ID = uuid.NewString()
		l.vendors[i] = v
	}
}

func (l *VendorList) Reset() {
	l.vendors = nil
}

func (l *VendorList) Len() int {
	return len(l.vendors)
}

// Items returns a copy of the current vendors.
func (l *VendorList) Items() []bom.Vendor {
	out := make([]bom.Vendor, len(l.vendors))
	copy(out, l.vendors)
	return out
}

func (l *VendorList) index(id string) int {
	for i, v := range l.vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}
