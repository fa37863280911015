package bom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingProductFields = "Please fill in all product information fields"
	MsgNoVendors            = "Please add at least one vendor"
	MsgDuplicateSKU         = "SKU already exists. Please use a unique SKU."
	MsgEmptyVendorName      = "Please enter vendor name"
	MsgDuplicateVendorName  = "Vendor with this name already exists!"
)

var validate = validator.New()

// Validate checks the required product fields first and the vendor count second.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate draft: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.StructField() != "Vendors" {
			return invalid(ErrMissingProductFields, MsgMissingProductFields)
		}
	}
	return invalid(ErrNoVendors, MsgNoVendors)
}

// CheckSKU rejects a sku already used by a record other than exceptID.
func CheckSKU(records []Record, sku, exceptID string) error {
	for _, r := range records {
		if r.SKU == sku && r.ID != exceptID {
			return invalid(ErrDuplicateSKU, MsgDuplicateSKU)
		}
	}
	return nil
}

// CheckVendor validates a vendor about to join list.
// Names are compared case-insensitively.
func CheckVendor(list []Vendor, v Vendor) error {
	if strings.TrimSpace(v.Name) == "" {
		return invalid(ErrEmptyVendorName, MsgEmptyVendorName)
	}
	for _, existing := range list {
		if strings.EqualFold(existing.Name, v.Name) {
			return invalid(ErrDuplicateVendorName, MsgDuplicateVendorName)
		}
	}
	return nil
}
