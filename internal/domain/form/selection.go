package form

import (
	"sort"
	"strconv"

	"bomkeeper/internal/domain/bom"
)

// Choice is the intent state of one product.
type Choice struct {
	Selected bool
	Quantity int
	Vendor   string
}

// Pick is a selected product ready to become a line item.
type Pick struct {
	ID       string
	Quantity int
	Vendor   string
}

// Selection maps product ids to their intent choice.
type Selection struct {
	choices map[string]Choice
	order   []string
}

func NewSelection() *Selection {
	return &Selection{choices: make(map[string]Choice)}
}

// Select marks r as selected with quantity 1 and its first vendor.
func (s *Selection) Select(r bom.Record) {
	s.set(r.ID, Choice{Selected: true, Quantity: 1, Vendor: r.FirstVendorName()})
}

// Deselect keeps the entry but drops its quantity and vendor.
func (s *Selection) Deselect(id string) {
	if _, ok := s.choices[id]; !ok {
		return
	}
	s.choices[id] = Choice{}
}

// SetQuantity stores qty for a selected product, raising values below 1 to 1.
func (s *Selection) SetQuantity(id string, qty int) bool {
	c, ok := s.choices[id]
	if !ok || !c.Selected {
		return false
	}
	c.Quantity = max(qty, 1)
	s.choices[id] = c
	return true
}

func (s *Selection) SetVendor(id, vendor string) bool {
	c, ok := s.choices[id]
	if !ok || !c.Selected {
		return false
	}
	c.Vendor = vendor
	s.choices[id] = c
	return true
}

// SelectPage selects every record on the page. Quantities and vendors
// already chosen are kept.
func (s *Selection) SelectPage(records []bom.Record) {
	for _, r := range records {
		c := s.choices[r.ID]
		c.Selected = true
		if c.Quantity == 0 {
			c.Quantity = 1
		}
		if c.Vendor == "" {
			c.Vendor = r.FirstVendorName()
		}
		s.set(r.ID, c)
	}
}

// DeselectPage forgets every record on the page.
func (s *Selection) DeselectPage(records []bom.Record) {
	for _, r := range records {
		if _, ok := s.choices[r.ID]; !ok {
			continue
		}
		delete(s.choices, r.ID)
		for i, id := range s.order {
			if id == r.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Selection) Clear() {
	s.choices = make(map[string]Choice)
	s.order = nil
}

func (s *Selection) Choice(id string) (Choice, bool) {
	c, ok := s.choices[id]
	return c, ok
}

// Count returns the number of selected products.
func (s *Selection) Count() int {
	n := 0
	for _, c := range s.choices {
		if c.Selected {
			n++
		}
	}
	return n
}

// Picks returns the selected products. Integer-like ids come first in
// ascending numeric order, the rest follow in selection order.
func (s *Selection) Picks() []Pick {
	ids := make([]string, 0, len(s.order))
	for _, id := range s.order {
		if s.choices[id].Selected {
			ids = append(ids, id)
		}
	}

	sort.SliceStable(ids, func(i, j int) bool {
		a, aNum := indexKey(ids[i])
		b, bNum := indexKey(ids[j])
		if aNum && bNum {
			return a < b
		}
		return aNum && !bNum
	})

	picks := make([]Pick, len(ids))
	for i, id := range ids {
		c := s.choices[id]
		picks[i] = Pick{ID: id, Quantity: max(c.Quantity, 1), Vendor: c.Vendor}
	}
	return picks
}

func (s *Selection) set(id string, c Choice) {
	if _, ok := s.choices[id]; !ok {
		s.order = append(s.order, id)
	}
	s.choices[id] = c
}

// indexKey reports whether id is a canonical non-negative integer.
func indexKey(id string) (uint64, bool) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil || strconv.FormatUint(n, 10) != id {
		return 0, false
	}
	return n, true
}
