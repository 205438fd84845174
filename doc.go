// Package flowgrid computes the geometry of a sectioned flow layout.
//
// A layout is a list of sections, each with an optional header, a run of
// items that wrap into rows along the fixed axis, and an optional footer.
// Content grows along the scroll axis. Geometry is recomputed incrementally:
// a mutation marks the lowest affected section dirty, and the next query
// re-solves only from that section to the end.
//
// Users import this single package for the public API: the Host and
// Delegate collaborator contracts, the Layout query surface, mutation
// notifications, geometry types, and StaticHost for in-memory hosts.
package flowgrid
