package main

import (
	"flag"
	"fmt"
	"io"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

// runDump implements the dump subcommand.
// It prints per-section geometry and the content size of each fixture.
func runDump(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "List every element")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFixtures(paths)
	if err != nil {
		return err
	}

	logger, closeLog, err := openDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	for i, path := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		ld, err := loadLayout(path, logger)
		if err != nil {
			return err
		}
		if err := dumpLayout(w, ld, *verbose); err != nil {
			return err
		}
	}
	return nil
}

func dumpLayout(w io.Writer, ld *loaded, verbose bool) error {
	l := ld.layout
	size := l.ContentSize()
	printTitle(w, fmt.Sprintf("%s: %s, %d sections, content %s",
		ld.fixture.Name, l.Direction(), l.SectionCount(), formatSize(size)))

	var rows [][]string
	for section := range l.SectionCount() {
		bounds, ok := l.SectionBounds(section)
		row := []string{fmt.Sprint(section), "-", fmt.Sprint(ld.host.NumberOfItems(section)), "-", "-"}
		if ok {
			row[1] = formatRect(bounds)
		}
		if a, ok := l.AttributesForSupplementary(flowgrid.KindHeader, section); ok {
			row[3] = formatRect(a.Frame)
		}
		if a, ok := l.AttributesForSupplementary(flowgrid.KindFooter, section); ok {
			row[4] = formatRect(a.Frame)
		}
		rows = append(rows, row)
	}
	if err := printTable(w, []string{"section", "bounds", "items", "header", "footer"}, rows); err != nil {
		return err
	}

	if !verbose {
		return nil
	}
	attrs := l.AttributesInRect(flowgrid.NewRect(0, 0, size.Width, size.Height))
	return printTable(w, attributeHeaders, attributeRows(attrs))
}
