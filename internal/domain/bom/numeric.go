package bom

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	intPrefix   = regexp.MustCompile(`^[-+]?\d+`)
	floatPrefix = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
)

// ParsePrice reads the leading decimal number of s, ignoring trailing text.
// Values without a numeric prefix are zero.
func ParsePrice(s string) decimal.Decimal {
	num := floatPrefix.FindString(strings.TrimLeft(s, " \t\r\n"))
	if num == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// parseID reads the leading integer of an id, or 0 when there is none.
func parseID(s string) int {
	n, err := strconv.Atoi(intPrefix.FindString(strings.TrimLeft(s, " \t\r\n")))
	if err != nil {
		return 0
	}
	return n
}

// NextID returns the id for a new record: the largest numeric id plus one,
// or "1" for an empty collection. Ids without a number count as 0.
func NextID(records []Record) string {
	if len(records) == 0 {
		return "1"
	}

	maxID := 0
	for i, r := range records {
		n := parseID(r.ID)
		if i == 0 || n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
