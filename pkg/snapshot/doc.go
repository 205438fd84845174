// Package snapshot rasterizes computed layout attributes to an image.
//
// Cells and supplementary elements are drawn as filled, outlined boxes in
// z-order, optionally labelled with their index path, so layout geometry
// can be inspected or diffed as a PNG.
package snapshot
