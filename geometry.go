// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package flowgrid

import "github.com/grindlemire/go-flowgrid/internal/geom"

// Rect represents a rectangle in points.
type Rect = geom.Rect

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an x/y coordinate.
type Point = geom.Point

// Insets represents spacing on four sides (top, left, bottom, right).
type Insets = geom.Insets

// Direction is the axis along which content grows.
type Direction = geom.Direction

const (
	Vertical   = geom.Vertical
	Horizontal = geom.Horizontal
)

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// InsetsAll creates Insets with the same value on all sides.
func InsetsAll(n float64) Insets {
	return geom.InsetsAll(n)
}

// InsetsTLBR creates Insets from top, left, bottom, right values.
func InsetsTLBR(top, left, bottom, right float64) Insets {
	return geom.InsetsTLBR(top, left, bottom, right)
}

// Snap aligns r to the physical pixel grid for scale.
func Snap(r Rect, scale float64) Rect {
	return geom.Snap(r, scale)
}
