package flowgrid

import (
	"fmt"

	"github.com/grindlemire/go-flowgrid/internal/flow"
)

// Category distinguishes cells from headers and footers.
type Category uint8

const (
	CategoryCell Category = iota
	CategorySupplementary
)

// String returns "cell" or "supplementary".
func (c Category) String() string {
	switch c {
	case CategoryCell:
		return "cell"
	case CategorySupplementary:
		return "supplementary"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// ElementKind names a supplementary element.
type ElementKind string

const (
	KindHeader ElementKind = "header"
	KindFooter ElementKind = "footer"
)

// IndexPath addresses an item within a section. Supplementary elements use
// Item 0.
type IndexPath struct {
	Section, Item int
}

// String returns "section.item".
func (p IndexPath) String() string {
	return fmt.Sprintf("%d.%d", p.Section, p.Item)
}

// Attributes is the computed placement of one element.
type Attributes struct {
	Category  Category
	Kind      ElementKind // Empty for cells
	IndexPath IndexPath
	Frame     Rect
	ZIndex    int
}

// Z-ordering: every section gets a band of sectionZBand values, cells are
// stacked by item index and supplementary elements sit on top of the band.
const (
	sectionZBand       = 1000
	supplementaryZSlot = sectionZBand - 1
)

func cellZIndex(p IndexPath) int {
	return p.Section*sectionZBand + p.Item
}

func supplementaryZIndex(section int) int {
	return section*sectionZBand + supplementaryZSlot
}

type attributesCache = flow.Cache[Attributes]
