// Package fixture loads declarative layout fixtures.
//
// A fixture describes a viewport, layout options and a list of sections in
// TOML or YAML. It builds into a flowgrid.StaticHost and a configured
// flowgrid.Layout, which the flowgrid CLI uses to dump, query and render
// layouts without writing Go code.
//
// A minimal TOML fixture:
//
//	direction = "vertical"
//	sticky_headers = true
//
//	[viewport]
//	width = 320.0
//	height = 480.0
//	scale = 2.0
//
//	[[sections]]
//	header = { width = 320.0, height = 32.0 }
//	line_spacing = 4.0
//	items = [{ width = 100.0, height = 100.0, count = 9 }]
package fixture
