// Package flow implements the incremental section-geometry solver behind
// flowgrid.Layout.
//
// A [Store] holds one [Entry] per section. Each entry records the section's
// computed rectangles and the [Cursor] the solver held when it finished the
// section, so a pass that starts at section k only needs entry k-1.
// A [Tracker] remembers the lowest section that must be recomputed, and a
// [Cache] memoizes per-element attributes between passes.
package flow
