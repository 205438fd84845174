package flow

import "github.com/grindlemire/go-flowgrid/internal/geom"

// Cursor is the solver position carried from one section into the next.
// Scroll coordinates exclude the current section's leading inset.
type Cursor struct {
	ItemScroll float64 // Scroll-axis origin of the current row
	ItemFixed  float64 // Fixed-axis position of the next item in the row
	NextRow    float64 // Scroll-axis origin of the row after the current one
}

// Entry is the computed geometry of one section.
type Entry struct {
	// Bounds is the union of HeaderBounds, ItemBounds and FooterBounds.
	Bounds       geom.Rect
	Insets       geom.Insets
	HeaderBounds geom.Rect
	FooterBounds geom.Rect
	ItemBounds   []geom.Rect

	// Exit is the cursor after the section, consumed by the next section.
	Exit Cursor
}

// Valid reports whether the entry has non-zero bounds. Sections that were
// never laid out, or that have nothing visible, are not valid.
func (e *Entry) Valid() bool {
	return !e.Bounds.IsZeroSize()
}

// Store is the ordered list of section entries.
type Store struct {
	entries []Entry
}

// Len returns the number of sections in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns a pointer to the entry for section. It panics when section is
// out of range.
func (s *Store) At(section int) *Entry {
	return &s.entries[section]
}

// Entry returns a copy of the entry for section, or false if out of range.
func (s *Store) Entry(section int) (Entry, bool) {
	if section < 0 || section >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[section], true
}

// ItemBounds returns the frame of one item, or false if out of range.
func (s *Store) ItemBounds(section, item int) (geom.Rect, bool) {
	if section < 0 || section >= len(s.entries) {
		return geom.Rect{}, false
	}
	items := s.entries[section].ItemBounds
	if item < 0 || item >= len(items) {
		return geom.Rect{}, false
	}
	return items[item], true
}

// Resize grows or shrinks the store to n sections. Entries below n keep
// their geometry; entries at or past n are discarded.
func (s *Store) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(s.entries) {
		clear(s.entries[n:])
		s.entries = s.entries[:n]
		return
	}
	s.entries = append(s.entries, make([]Entry, n-len(s.entries))...)
}

// Reset discards every entry.
func (s *Store) Reset() {
	s.Resize(0)
}

// SectionsIntersecting returns the span of sections whose valid bounds
// intersect r. The span runs from the first to the last matching section;
// it does not assume bounds are sorted along the scroll axis.
func (s *Store) SectionsIntersecting(r geom.Rect) (first, last int, ok bool) {
	first, last = -1, -1
	for i := range s.entries {
		e := &s.entries[i]
		if !e.Valid() || !e.Bounds.Intersects(r) {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	return first, last, first != -1
}
