// Package main provides the CLI tool for inspecting flow layouts.
//
// Usage:
//
//	flowgrid dump [path...]          Print section geometry for fixtures
//	flowgrid query -rect ... path    List elements intersecting a rectangle
//	flowgrid render [path...]        Rasterize fixtures to PNG
//	flowgrid help                    Show help
//
// Examples:
//
//	flowgrid dump ./fixtures/...
//	flowgrid query -rect 0,0,320,200 gallery.toml
//	flowgrid render -o out -scale 2 -labels ./fixtures
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `flowgrid - sectioned flow layout inspector

Usage:
  flowgrid <command> [options] [path...]

Commands:
  dump        Print section bounds and content size for fixtures
  query       List elements intersecting a rectangle, or one item
  render      Rasterize fixtures to PNG
  version     Print version information
  help        Show this help message

Paths may be .toml, .yaml or .yml fixtures, directories, or dir/... for a
recursive search.

Options:
  dump   -v                      Also list every element
  query  -rect x,y,w,h           Rectangle to query (default: whole content)
         -item section.item      Query a single item instead
         -scroll x,y             Scroll the viewport before querying
  render -o dir                  Output directory (default: .)
         -scale n                Pixels per point (default: 1)
         -labels                 Draw index paths inside boxes
         -j n                    Fixtures rendered in parallel (default: 4)

Environment:
  FLOWGRID_DEBUG=path            Append debug logs to path

Examples:
  flowgrid dump ./fixtures/...
  flowgrid query -rect 0,0,320,200 gallery.toml
  flowgrid query -scroll 0,300 -item 1.0 gallery.toml
  flowgrid render -o out -scale 2 -labels ./fixtures
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "dump":
		if err := runDump(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "query":
		if err := runQuery(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := runRender(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flowgrid version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
