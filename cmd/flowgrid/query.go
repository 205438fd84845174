package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

// runQuery implements the query subcommand.
func runQuery(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	rectFlag := fs.String("rect", "", "Rectangle x,y,w,h to query")
	itemFlag := fs.String("item", "", "Single item as section.item")
	scrollFlag := fs.String("scroll", "", "Scroll offset x,y applied before querying")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("query takes exactly one fixture, got %d", fs.NArg())
	}
	if *rectFlag != "" && *itemFlag != "" {
		return fmt.Errorf("-rect and -item are mutually exclusive")
	}

	logger, closeLog, err := openDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	ld, err := loadLayout(fs.Arg(0), logger)
	if err != nil {
		return err
	}
	l := ld.layout

	if *scrollFlag != "" {
		v, err := parseFloats(*scrollFlag, 2)
		if err != nil {
			return fmt.Errorf("invalid -scroll: %w", err)
		}
		ld.host.ScrollTo(l, flowgrid.Point{X: v[0], Y: v[1]})
	}

	if *itemFlag != "" {
		p, err := parseIndexPath(*itemFlag)
		if err != nil {
			return fmt.Errorf("invalid -item: %w", err)
		}
		a, ok := l.AttributesForItem(p)
		if !ok {
			return fmt.Errorf("item %v not found", p)
		}
		return printTable(w, attributeHeaders, attributeRows([]flowgrid.Attributes{a}))
	}

	size := l.ContentSize()
	rect := flowgrid.NewRect(0, 0, size.Width, size.Height)
	if *rectFlag != "" {
		v, err := parseFloats(*rectFlag, 4)
		if err != nil {
			return fmt.Errorf("invalid -rect: %w", err)
		}
		rect = flowgrid.NewRect(v[0], v[1], v[2], v[3])
	}

	attrs := l.AttributesInRect(rect)
	if len(attrs) == 0 {
		fmt.Fprintf(w, "no elements in %s\n", formatRect(rect))
		return nil
	}
	return printTable(w, attributeHeaders, attributeRows(attrs))
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseIndexPath parses "section.item".
func parseIndexPath(s string) (flowgrid.IndexPath, error) {
	sec, item, ok := strings.Cut(s, ".")
	if !ok {
		return flowgrid.IndexPath{}, fmt.Errorf("want section.item, got %q", s)
	}
	section, err := strconv.Atoi(sec)
	if err != nil {
		return flowgrid.IndexPath{}, err
	}
	index, err := strconv.Atoi(item)
	if err != nil {
		return flowgrid.IndexPath{}, err
	}
	if section < 0 || index < 0 {
		return flowgrid.IndexPath{}, fmt.Errorf("negative index path %q", s)
	}
	return flowgrid.IndexPath{Section: section, Item: index}, nil
}
