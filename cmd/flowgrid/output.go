package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printTable writes rows as a bordered table on a terminal and as
// tab-aligned plain text otherwise, so output stays greppable in pipes.
func printTable(w io.Writer, headers []string, rows [][]string) error {
	if isTerminal(w) {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 0:
					return dimStyle
				default:
					return cellStyle
				}
			}).
			Headers(headers...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// printTitle writes a heading, bold on a terminal.
func printTitle(w io.Writer, title string) {
	if isTerminal(w) {
		title = titleStyle.Render(title)
	}
	fmt.Fprintln(w, title)
}

func formatNum(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func formatRect(r flowgrid.Rect) string {
	return fmt.Sprintf("(%s, %s, %s, %s)", formatNum(r.X), formatNum(r.Y), formatNum(r.Width), formatNum(r.Height))
}

func formatSize(s flowgrid.Size) string {
	return formatNum(s.Width) + "x" + formatNum(s.Height)
}

func elementName(a flowgrid.Attributes) string {
	if a.Category == flowgrid.CategorySupplementary {
		return string(a.Kind)
	}
	return "item"
}

// attributeRows formats attributes for printTable with attributeHeaders.
func attributeRows(attrs []flowgrid.Attributes) [][]string {
	rows := make([][]string, len(attrs))
	for i, a := range attrs {
		rows[i] = []string{
			a.IndexPath.String(),
			elementName(a),
			formatRect(a.Frame),
			fmt.Sprint(a.ZIndex),
		}
	}
	return rows
}

var attributeHeaders = []string{"path", "kind", "frame", "z"}
