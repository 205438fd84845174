// Package geom holds the float geometry used by the flow layout engine.
//
// Every type is a small value type. [Direction] maps a rectangle, size,
// point or inset onto the scroll axis and the fixed axis so the solver can
// be written once for vertical and horizontal scrolling.
package geom
