package geom

// Insets represents distances inward from the four sides of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetsAll creates Insets with the same value on all sides.
func InsetsAll(n float64) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetsTLBR creates Insets in top, left, bottom, right order.
func InsetsTLBR(t, l, b, r float64) Insets {
	return Insets{Top: t, Left: l, Bottom: b, Right: r}
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

// IsZero returns true if all inset values are zero.
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Left == 0 && in.Bottom == 0 && in.Right == 0
}
