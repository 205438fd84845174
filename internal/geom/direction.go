package geom

// Direction is the axis along which content grows.
type Direction uint8

const (
	Vertical   Direction = iota // Content grows downward; rows span the width
	Horizontal                  // Content grows rightward; columns span the height
)

// String returns "vertical" or "horizontal".
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Valid reports whether d is Vertical or Horizontal.
func (d Direction) Valid() bool {
	return d == Vertical || d == Horizontal
}

// Fixed returns the axis orthogonal to d.
func (d Direction) Fixed() Direction {
	switch d {
	case Vertical:
		return Horizontal
	case Horizontal:
		return Vertical
	}
	panic(unknown(d))
}

// RectMin returns the leading coordinate of r along d.
func (d Direction) RectMin(r Rect) float64 {
	switch d {
	case Vertical:
		return r.Y
	case Horizontal:
		return r.X
	}
	panic(unknown(d))
}

// RectMax returns the trailing coordinate of r along d.
func (d Direction) RectMax(r Rect) float64 {
	switch d {
	case Vertical:
		return r.Bottom()
	case Horizontal:
		return r.Right()
	}
	panic(unknown(d))
}

// RectLength returns the extent of r along d.
func (d Direction) RectLength(r Rect) float64 {
	switch d {
	case Vertical:
		return r.Height
	case Horizontal:
		return r.Width
	}
	panic(unknown(d))
}

// SizeLength returns the extent of s along d.
func (d Direction) SizeLength(s Size) float64 {
	switch d {
	case Vertical:
		return s.Height
	case Horizontal:
		return s.Width
	}
	panic(unknown(d))
}

// PointCoord returns the coordinate of p along d.
func (d Direction) PointCoord(p Point) float64 {
	switch d {
	case Vertical:
		return p.Y
	case Horizontal:
		return p.X
	}
	panic(unknown(d))
}

// LeadingInset returns the inset at the start of d (top or left).
func (d Direction) LeadingInset(in Insets) float64 {
	switch d {
	case Vertical:
		return in.Top
	case Horizontal:
		return in.Left
	}
	panic(unknown(d))
}

// TrailingInset returns the inset at the end of d (bottom or right).
func (d Direction) TrailingInset(in Insets) float64 {
	switch d {
	case Vertical:
		return in.Bottom
	case Horizontal:
		return in.Right
	}
	panic(unknown(d))
}

// Rect builds a rectangle from coordinates expressed along d (the scroll
// axis) and along d.Fixed().
func (d Direction) Rect(scrollOrigin, fixedOrigin, scrollLength, fixedLength float64) Rect {
	switch d {
	case Vertical:
		return Rect{X: fixedOrigin, Y: scrollOrigin, Width: fixedLength, Height: scrollLength}
	case Horizontal:
		return Rect{X: scrollOrigin, Y: fixedOrigin, Width: scrollLength, Height: fixedLength}
	}
	panic(unknown(d))
}

// WithMin returns r moved so its leading coordinate along d is v.
func (d Direction) WithMin(r Rect, v float64) Rect {
	switch d {
	case Vertical:
		r.Y = v
	case Horizontal:
		r.X = v
	default:
		panic(unknown(d))
	}
	return r
}

func unknown(d Direction) string {
	return "geom: unknown direction " + d.String()
}
