package flowgrid

// StaticSection is one section of a StaticHost.
type StaticSection struct {
	Header           Size
	Footer           Size
	Insets           Insets
	LineSpacing      float64
	InteritemSpacing float64
	Items            []Size
}

// StaticHost is an in-memory Host whose data is a plain slice of sections.
// It is its own Delegate and counts delegate calls per section, which makes
// it useful for tests, fixtures and tooling.
type StaticHost struct {
	Bounds   Rect
	Insets   Insets
	Scale    float64
	Sections []StaticSection

	detached bool
	calls    map[int]int
}

// Ensure StaticHost implements Host and every optional sizing interface.
var (
	_ Host            = (*StaticHost)(nil)
	_ Delegate        = (*StaticHost)(nil)
	_ HeaderSizer     = (*StaticHost)(nil)
	_ FooterSizer     = (*StaticHost)(nil)
	_ SectionInsetter = (*StaticHost)(nil)
	_ LineSpacer      = (*StaticHost)(nil)
	_ InteritemSpacer = (*StaticHost)(nil)
)

// NewStaticHost creates a host with a viewport of the given size at the
// origin and a pixel scale of 1.
func NewStaticHost(width, height float64, sections ...StaticSection) *StaticHost {
	return &StaticHost{
		Bounds:   NewRect(0, 0, width, height),
		Scale:    1,
		Sections: sections,
	}
}

// ViewportBounds returns Bounds.
func (h *StaticHost) ViewportBounds() Rect { return h.Bounds }

// ContentInsets returns Insets.
func (h *StaticHost) ContentInsets() Insets { return h.Insets }

// ScrollOffset returns the origin of Bounds.
func (h *StaticHost) ScrollOffset() Point { return h.Bounds.Origin() }

// PixelScale returns Scale.
func (h *StaticHost) PixelScale() float64 { return h.Scale }

// NumberOfSections returns len(Sections).
func (h *StaticHost) NumberOfSections() int { return len(h.Sections) }

// NumberOfItems returns the item count of section.
func (h *StaticHost) NumberOfItems(section int) int {
	return len(h.section(section).Items)
}

// LayoutDelegate returns h, or nil after DetachDelegate.
func (h *StaticHost) LayoutDelegate() Delegate {
	if h.detached {
		return nil
	}
	return h
}

func (h *StaticHost) ItemSize(section, item int) Size {
	return h.section(section).Items[item]
}

func (h *StaticHost) HeaderSize(section int) Size {
	return h.section(section).Header
}

func (h *StaticHost) FooterSize(section int) Size {
	return h.section(section).Footer
}

func (h *StaticHost) SectionInsets(section int) Insets {
	return h.section(section).Insets
}

func (h *StaticHost) LineSpacing(section int) float64 {
	return h.section(section).LineSpacing
}

func (h *StaticHost) InteritemSpacing(section int) float64 {
	return h.section(section).InteritemSpacing
}

// section returns the section and records a delegate call against it.
func (h *StaticHost) section(section int) *StaticSection {
	if h.calls == nil {
		h.calls = make(map[int]int)
	}
	h.calls[section]++
	return &h.Sections[section]
}

// Calls returns how many times section was queried since the last ResetCalls.
func (h *StaticHost) Calls(section int) int {
	return h.calls[section]
}

// TotalCalls returns the number of per-section queries across all sections.
func (h *StaticHost) TotalCalls() int {
	n := 0
	for _, c := range h.calls {
		n += c
	}
	return n
}

// ResetCalls zeroes the call counters.
func (h *StaticHost) ResetCalls() {
	clear(h.calls)
}

// DetachDelegate makes LayoutDelegate return nil, as a host being torn down
// would.
func (h *StaticHost) DetachDelegate() {
	h.detached = true
}

// ReattachDelegate undoes DetachDelegate.
func (h *StaticHost) ReattachDelegate() {
	h.detached = false
}

// ScrollTo moves the viewport origin to offset and tells l about it.
func (h *StaticHost) ScrollTo(l *Layout, offset Point) {
	b := h.Bounds
	b.X, b.Y = offset.X, offset.Y
	h.setBounds(l, b)
}

// Resize changes the viewport size and tells l about it.
func (h *StaticHost) Resize(l *Layout, width, height float64) {
	b := h.Bounds
	b.Width, b.Height = width, height
	h.setBounds(l, b)
}

func (h *StaticHost) setBounds(l *Layout, b Rect) {
	if l.ShouldInvalidateForBoundsChange(b) {
		l.InvalidateForBoundsChange(b)
	}
	h.Bounds = b
}
