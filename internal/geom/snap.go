package geom

import "math"

// snapSlop absorbs float noise from values that were already on the pixel
// grid, e.g. 31/3 scaled back up by 3.
const snapSlop = 1e-9

// Snap aligns r to the physical pixel grid for the given scale. The origin
// is floored and the extent is ceiled, so a snapped rectangle is never
// narrower or shorter than the input. A non-positive scale is treated as 1.
func Snap(r Rect, scale float64) Rect {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return Rect{
		X:      math.Floor(r.X*scale+snapSlop) / scale,
		Y:      math.Floor(r.Y*scale+snapSlop) / scale,
		Width:  math.Ceil(r.Width*scale-snapSlop) / scale,
		Height: math.Ceil(r.Height*scale-snapSlop) / scale,
	}
}
