package bom

import (
	"strings"

	"golang.org/x/exp/slog"
)

const (
	vendorSeparator = "|"
	fieldSeparator  = ","
)

// VendorCodec converts vendor lists to and from the single text column
// they occupy in the spreadsheet.
type VendorCodec interface {
	Decode(raw any) []Vendor
	Encode(vendors []Vendor) string
}

// DelimitedCodec stores vendors as "name,phone,address" joined by "|".
// Separators inside field values are not escaped, so such values do not
// survive a round trip.
type DelimitedCodec struct {
	log *slog.Logger
}

func NewDelimitedCodec(log *slog.Logger) *DelimitedCodec {
	return &DelimitedCodec{
		log: log.With("component", "vendor_codec"),
	}
}

// Decode accepts the raw vendors value of a wire record. Strings are split,
// structured lists pass through, anything unusable becomes an empty list.
func (c *DelimitedCodec) Decode(raw any) []Vendor {
	switch v := raw.(type) {
	case nil:
		return []Vendor{}
	case string:
		return decodeVendors(v)
	case []Vendor:
		return v
	case []any:
		vendors := make([]Vendor, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				c.log.Warn("failed to parse vendors", "index", i, "error", "vendor entry is not an object")
				return []Vendor{}
			}
			vendors = append(vendors, Vendor{
				Name:    stringOf(obj["name"]),
				Phone:   stringOf(obj["phone"]),
				Address: stringOf(obj["address"]),
			})
		}
		return vendors
	default:
		c.log.Warn("failed to parse vendors", "type", typeName(raw))
		return []Vendor{}
	}
}

func (c *DelimitedCodec) Encode(vendors []Vendor) string {
	return encodeVendors(vendors)
}

func decodeVendors(s string) []Vendor {
	if s == "" {
		return []Vendor{}
	}

	segments := strings.Split(s, vendorSeparator)
	vendors := make([]Vendor, 0, len(segments))
	for _, segment := range segments {
		// Only the first three fields are positional; extra commas are dropped.
		parts := strings.Split(segment, fieldSeparator)
		var v Vendor
		if len(parts) > 0 {
			v.Name = parts[0]
		}
		if len(parts) > 1 {
			v.Phone = parts[1]
		}
		if len(parts) > 2 {
			v.Address = parts[2]
		}
		vendors = append(vendors, v)
	}
	return vendors
}

func encodeVendors(vendors []Vendor) string {
	if len(vendors) == 0 {
		return ""
	}

	parts := make([]string, len(vendors))
	for i, v := range vendors {
		parts[i] = strings.Join([]string{v.Name, v.Phone, v.Address}, fieldSeparator)
	}
	return strings.Join(parts, vendorSeparator)
}
