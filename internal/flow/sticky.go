package flow

import "github.com/grindlemire/go-flowgrid/internal/geom"

// StickyHeader returns header moved along dir so that its leading edge sits
// at target, clamped between the section's own leading bound and the point
// where it would start to overlap the next laid-out section. The last
// section has no upper bound.
func StickyHeader(store *Store, section int, header geom.Rect, dir geom.Direction, target float64) geom.Rect {
	lower := dir.RectMin(store.At(section).Bounds)
	offset := max(lower, target)

	for next := section + 1; next < store.Len(); next++ {
		e := store.At(next)
		if !e.Valid() {
			continue
		}
		upper := dir.RectMin(e.Bounds) - dir.RectLength(header)
		offset = min(offset, upper)
		break
	}
	return dir.WithMin(header, offset)
}
