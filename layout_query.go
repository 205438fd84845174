package flowgrid

import (
	"fmt"

	"github.com/grindlemire/go-flowgrid/internal/flow"
)

// AttributesForItem returns the placement of the item at p. It reports
// false when p is past the current data or no host is attached.
// It panics on a negative index path.
func (l *Layout) AttributesForItem(p IndexPath) (Attributes, bool) {
	defer l.guard.enter()()

	checkIndexPath(p)
	if !l.prepare() {
		return Attributes{}, false
	}
	return l.item(p)
}

// AttributesForSupplementary returns the placement of a section's header or
// footer. Sticky headers are already offset for the current scroll position.
// It reports false for sections without that element.
func (l *Layout) AttributesForSupplementary(kind ElementKind, section int) (Attributes, bool) {
	defer l.guard.enter()()

	checkSection(section)
	if !l.prepare() {
		return Attributes{}, false
	}
	return l.supplementary(kind, section)
}

// AttributesInRect returns every element whose frame intersects r, grouped
// by section in order: header, items, footer.
func (l *Layout) AttributesInRect(r Rect) []Attributes {
	defer l.guard.enter()()

	if !l.prepare() {
		return nil
	}
	first, last, ok := l.store.SectionsIntersecting(r)
	if !ok {
		return nil
	}

	var out []Attributes
	for section := first; section <= last; section++ {
		e := l.store.At(section)
		if !e.Valid() {
			continue
		}
		out = l.appendSupplementaryInRect(out, KindHeader, section, r)
		for item, frame := range e.ItemBounds {
			if !frame.Intersects(r) {
				continue
			}
			if a, ok := l.item(IndexPath{Section: section, Item: item}); ok {
				out = append(out, a)
			}
		}
		out = l.appendSupplementaryInRect(out, KindFooter, section, r)
	}
	return out
}

func (l *Layout) appendSupplementaryInRect(out []Attributes, kind ElementKind, section int, r Rect) []Attributes {
	if len(l.store.At(section).ItemBounds) == 0 && !l.showHeaderWhenEmpty {
		return out
	}
	a, ok := l.supplementary(kind, section)
	if !ok || l.direction.RectLength(a.Frame) <= 0 || !a.Frame.Intersects(r) {
		return out
	}
	return append(out, a)
}

// ContentSize returns the size of all laid-out content. The scroll-axis
// length runs to the trailing edge of the last visible section plus its
// trailing inset; the fixed-axis length is the container's.
func (l *Layout) ContentSize() Size {
	defer l.guard.enter()()

	if !l.prepare() {
		return Size{}
	}

	fixedLen := l.direction.Fixed().SizeLength(containerSize(l.host))
	var scrollLen float64
	for section := l.store.Len() - 1; section >= 0; section-- {
		e := l.store.At(section)
		if !e.Valid() {
			continue
		}
		scrollLen = l.direction.RectMax(e.Bounds) + l.direction.TrailingInset(e.Insets)
		break
	}
	return l.direction.Rect(0, 0, scrollLen, fixedLen).Size()
}

// SectionCount returns the number of sections in the last layout pass.
func (l *Layout) SectionCount() int {
	defer l.guard.enter()()

	if !l.prepare() {
		return 0
	}
	return l.store.Len()
}

// SectionBounds returns the union of a section's header, items and footer.
// It reports false for sections that are out of range or have nothing
// visible.
func (l *Layout) SectionBounds(section int) (Rect, bool) {
	defer l.guard.enter()()

	checkSection(section)
	if !l.prepare() {
		return Rect{}, false
	}
	e, ok := l.store.Entry(section)
	if !ok || !e.Valid() {
		return Rect{}, false
	}
	return e.Bounds, true
}

func (l *Layout) item(p IndexPath) (Attributes, bool) {
	key := flow.ItemKey{Section: p.Section, Item: p.Item}
	if a, ok := l.cache.Item(key); ok {
		return a, true
	}

	frame, ok := l.store.ItemBounds(p.Section, p.Item)
	if !ok {
		return Attributes{}, false
	}
	a := Attributes{
		Category:  CategoryCell,
		IndexPath: p,
		Frame:     frame,
		ZIndex:    cellZIndex(p),
	}
	l.cache.PutItem(key, a)
	return a, true
}

func (l *Layout) supplementary(kind ElementKind, section int) (Attributes, bool) {
	key := flow.SupplementaryKey{Kind: string(kind), Section: section}
	if a, ok := l.cache.Supplementary(key); ok {
		return a, true
	}

	e, ok := l.store.Entry(section)
	if !ok {
		return Attributes{}, false
	}

	var frame Rect
	switch kind {
	case KindHeader:
		frame = e.HeaderBounds
	case KindFooter:
		frame = e.FooterBounds
	default:
		return Attributes{}, false
	}
	if frame.IsZeroSize() {
		return Attributes{}, false
	}

	if kind == KindHeader && l.stickyHeaders {
		frame = flow.StickyHeader(&l.store, section, frame, l.direction, l.stickyTarget())
	}

	a := Attributes{
		Category:  CategorySupplementary,
		Kind:      kind,
		IndexPath: IndexPath{Section: section},
		Frame:     frame,
		ZIndex:    supplementaryZIndex(section),
	}
	l.cache.PutSupplementary(key, a)
	return a, true
}

// stickyTarget is where a sticky header's leading edge wants to be.
func (l *Layout) stickyTarget() float64 {
	return l.direction.PointCoord(l.host.ScrollOffset()) + l.topContentInset + l.stickyHeaderOffset
}

func checkIndexPath(p IndexPath) {
	if p.Section < 0 || p.Item < 0 {
		panic(fmt.Sprintf("flowgrid: negative index path %v", p))
	}
}

func checkSection(section int) {
	if section < 0 {
		panic(fmt.Sprintf("flowgrid: negative section %d", section))
	}
}
