// Package view derives the visible table from a record snapshot.
// Every function is pure and returns new slices.
package view

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bomkeeper/internal/domain/bom"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState is the current sort column. An empty Field keeps insertion order.
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle returns the state after the user picks field: the same field flips
// from ascending to descending, anything else starts ascending.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field && s.Direction == Asc {
		return SortState{Field: field, Direction: Desc}
	}
	return SortState{Field: field, Direction: Asc}
}

// Sort orders records by the stringified field value. The sort is stable.
func Sort(records []bom.Record, s SortState) []bom.Record {
	out := clone(records)
	if s.Field == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value(s.Field), out[j].Value(s.Field)
		if s.Direction == Desc {
			return a > b
		}
		return a < b
	})
	return out
}

// Search keeps records where any field contains term, ignoring case.
func Search(records []bom.Record, term string) []bom.Record {
	if term == "" {
		return clone(records)
	}

	needle := strings.ToLower(term)
	out := make([]bom.Record, 0, len(records))
	for _, r := range records {
		for _, f := range bom.Fields {
			if strings.Contains(strings.ToLower(r.Value(f)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// FilterByCategory keeps records with exactly the given category.
// An empty category disables the filter.
func FilterByCategory(records []bom.Record, category string) []bom.Record {
	if category == "" {
		return clone(records)
	}

	out := make([]bom.Record, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// SearchProducts is the narrower match used when picking products for an
// intent: only sku, item code and description are compared.
func SearchProducts(records []bom.Record, term string) []bom.Record {
	if term == "" {
		return clone(records)
	}

	needle := strings.ToLower(term)
	out := make([]bom.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SKU), needle) ||
			strings.Contains(strings.ToLower(r.ItemCode), needle) ||
			strings.Contains(strings.ToLower(r.ProductDescription), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Page is one window of a filtered list.
type Page struct {
	Items  []bom.Record `json:"items"`
	Number int          `json:"page"`
	Size   int          `json:"pageSize"`
	Total  int          `json:"total"`
	Pages  int          `json:"pages"`
}

// Paginate slices out page number page (1-based). Pages outside the range
// yield an empty window; callers reset to page 1 when filters change.
// A non-positive pageSize puts everything on one page.
func Paginate(records []bom.Record, page, pageSize int) Page {
	total := len(records)
	if pageSize <= 0 {
		pageSize = total
	}

	p := Page{
		Items:  []bom.Record{},
		Number: page,
		Size:   pageSize,
		Total:  total,
	}
	if pageSize > 0 {
		p.Pages = (total + pageSize - 1) / pageSize
	}
	if page < 1 || pageSize == 0 {
		return p
	}

	start := (page - 1) * pageSize
	if start >= total {
		return p
	}
	end := min(start+pageSize, total)
	p.Items = clone(records[start:end])
	return p
}

// Stats summarizes the whole collection.
type Stats struct {
	Records    int             `json:"records"`
	Categories int             `json:"categories"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Aggregate counts records and distinct categories and sums approxPrice.
// An empty category is counted as a category of its own. Prices that do
// not parse count as zero.
func Aggregate(records []bom.Record) Stats {
	total := decimal.Zero
	categories := make(map[string]struct{})
	for _, r := range records {
		total = total.Add(bom.ParsePrice(r.ApproxPrice))
		categories[r.Category] = struct{}{}
	}
	return Stats{
		Records:    len(records),
		Categories: len(categories),
		TotalPrice: total,
	}
}

// Categories lists distinct non-empty categories in first-seen order.
func Categories(records []bom.Record) []string {
	return distinct(records, func(r bom.Record) string { return r.Category })
}

// SKUs lists distinct non-empty SKUs in first-seen order.
func SKUs(records []bom.Record) []string {
	return distinct(records, func(r bom.Record) string { return r.SKU })
}

// Query bundles the table controls.
type Query struct {
	Search   string
	Category string
	Sort     SortState
	Page     int
	PageSize int
}

// Apply runs the table pipeline: sort, search, category filter, paginate.
func Apply(records []bom.Record, q Query) Page {
	out := Sort(records, q.Sort)
	out = Search(out, q.Search)
	out = FilterByCategory(out, q.Category)
	return Paginate(out, q.Page, q.PageSize)
}

func distinct(records []bom.Record, key func(bom.Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func clone(records []bom.Record) []bom.Record {
	out := make([]bom.Record, len(records))
	copy(out, records)
	return out
}
