package flowgrid

import "github.com/grindlemire/go-flowgrid/internal/flow"

// Host is the rendering surface a Layout is attached to. It reports the
// viewport and the data counts. The Layout holds the host without owning it.
type Host interface {
	// ViewportBounds is the visible rectangle in content coordinates.
	ViewportBounds() Rect
	// ContentInsets are subtracted from the viewport to get the container.
	ContentInsets() Insets
	// ScrollOffset is the current scroll position in content coordinates.
	ScrollOffset() Point
	// PixelScale is the number of physical pixels per point.
	PixelScale() float64

	NumberOfSections() int
	NumberOfItems(section int) int

	// LayoutDelegate returns the sizing delegate, or nil when none is set.
	LayoutDelegate() Delegate
}

// Delegate reports item sizes. A delegate may also implement any of
// HeaderSizer, FooterSizer, SectionInsetter, LineSpacer and InteritemSpacer;
// values it does not report are zero.
type Delegate interface {
	ItemSize(section, item int) Size
}

// HeaderSizer reports the size of a section's header. A zero length along
// the scroll axis means the section has no header.
type HeaderSizer interface {
	HeaderSize(section int) Size
}

// FooterSizer reports the size of a section's footer.
type FooterSizer interface {
	FooterSize(section int) Size
}

// SectionInsetter reports the insets around a section's items.
type SectionInsetter interface {
	SectionInsets(section int) Insets
}

// LineSpacer reports the minimum spacing between rows of a section.
type LineSpacer interface {
	LineSpacing(section int) float64
}

// InteritemSpacer reports the minimum spacing between items in a row.
type InteritemSpacer interface {
	InteritemSpacing(section int) float64
}

// hostSource adapts a Host and its delegate to the solver's input contract.
type hostSource struct {
	host     Host
	delegate Delegate

	header    HeaderSizer
	footer    FooterSizer
	insets    SectionInsetter
	line      LineSpacer
	interitem InteritemSpacer
}

var _ flow.Source = (*hostSource)(nil)

func newHostSource(host Host, delegate Delegate) *hostSource {
	src := &hostSource{host: host, delegate: delegate}
	src.header, _ = delegate.(HeaderSizer)
	src.footer, _ = delegate.(FooterSizer)
	src.insets, _ = delegate.(SectionInsetter)
	src.line, _ = delegate.(LineSpacer)
	src.interitem, _ = delegate.(InteritemSpacer)
	return src
}

func (s *hostSource) Sections() int {
	return s.host.NumberOfSections()
}

func (s *hostSource) Items(section int) int {
	return s.host.NumberOfItems(section)
}

func (s *hostSource) Container() Size {
	return containerSize(s.host)
}

func (s *hostSource) PixelScale() float64 {
	return s.host.PixelScale()
}

func (s *hostSource) HeaderSize(section int) Size {
	if s.header == nil {
		return Size{}
	}
	return s.header.HeaderSize(section)
}

func (s *hostSource) FooterSize(section int) Size {
	if s.footer == nil {
		return Size{}
	}
	return s.footer.FooterSize(section)
}

func (s *hostSource) Insets(section int) Insets {
	if s.insets == nil {
		return Insets{}
	}
	return s.insets.SectionInsets(section)
}

func (s *hostSource) LineSpacing(section int) float64 {
	if s.line == nil {
		return 0
	}
	return s.line.LineSpacing(section)
}

func (s *hostSource) InteritemSpacing(section int) float64 {
	if s.interitem == nil {
		return 0
	}
	return s.interitem.InteritemSpacing(section)
}

func (s *hostSource) ItemSize(section, item int) Size {
	return s.delegate.ItemSize(section, item)
}

// containerSize is the viewport size less the host's content insets.
func containerSize(h Host) Size {
	return h.ViewportBounds().Inset(h.ContentInsets()).Size()
}
