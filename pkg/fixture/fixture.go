package fixture

import (
	"fmt"
	"math"
	"strings"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

// Fixture is a decoded layout description.
type Fixture struct {
	Name string `toml:"name" yaml:"name"`

	Direction           string  `toml:"direction" yaml:"direction"`
	StickyHeaders       bool    `toml:"sticky_headers" yaml:"sticky_headers"`
	StickyHeaderOffset  float64 `toml:"sticky_header_offset" yaml:"sticky_header_offset"`
	TopContentInset     float64 `toml:"top_content_inset" yaml:"top_content_inset"`
	StretchToEdge       bool    `toml:"stretch_to_edge" yaml:"stretch_to_edge"`
	ShowHeaderWhenEmpty bool    `toml:"show_header_when_empty" yaml:"show_header_when_empty"`

	Viewport Viewport  `toml:"viewport" yaml:"viewport"`
	Sections []Section `toml:"sections" yaml:"sections"`
}

// Viewport describes the host's visible area.
type Viewport struct {
	Width   float64 `toml:"width" yaml:"width"`
	Height  float64 `toml:"height" yaml:"height"`
	Scale   float64 `toml:"scale" yaml:"scale"`
	ScrollX float64 `toml:"scroll_x" yaml:"scroll_x"`
	ScrollY float64 `toml:"scroll_y" yaml:"scroll_y"`
	Insets  Insets  `toml:"insets" yaml:"insets"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Insets is spacing on four sides.
type Insets struct {
	Top    float64 `toml:"top" yaml:"top"`
	Left   float64 `toml:"left" yaml:"left"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Right  float64 `toml:"right" yaml:"right"`
}

// Section describes one section.
type Section struct {
	Header           Size    `toml:"header" yaml:"header"`
	Footer           Size    `toml:"footer" yaml:"footer"`
	Insets           Insets  `toml:"insets" yaml:"insets"`
	LineSpacing      float64 `toml:"line_spacing" yaml:"line_spacing"`
	InteritemSpacing float64 `toml:"interitem_spacing" yaml:"interitem_spacing"`
	Items            []Item  `toml:"items" yaml:"items"`
}

// Item is a run of Count identically sized items. A zero Count means one.
type Item struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Count  int     `toml:"count" yaml:"count"`
}

func (it Item) count() int {
	if it.Count == 0 {
		return 1
	}
	return it.Count
}

// ParseDirection converts "vertical" or "horizontal" (any case) to a
// Direction. The empty string is Vertical.
func ParseDirection(s string) (flowgrid.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return flowgrid.Vertical, nil
	case "horizontal":
		return flowgrid.Horizontal, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Validate checks that every value can be turned into a layout.
func (f *Fixture) Validate() error {
	if _, err := ParseDirection(f.Direction); err != nil {
		return err
	}

	if f.Viewport.Width <= 0 || f.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size, got %vx%v", f.Viewport.Width, f.Viewport.Height)
	}
	if err := nonNegative("viewport scale", f.Viewport.Scale); err != nil {
		return err
	}
	if err := validInsets("viewport insets", f.Viewport.Insets); err != nil {
		return err
	}

	for i, s := range f.Sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

func (s *Section) validate() error {
	if err := validSize("header", s.Header); err != nil {
		return err
	}
	if err := validSize("footer", s.Footer); err != nil {
		return err
	}
	if err := validInsets("insets", s.Insets); err != nil {
		return err
	}
	if err := nonNegative("line_spacing", s.LineSpacing); err != nil {
		return err
	}
	if err := nonNegative("interitem_spacing", s.InteritemSpacing); err != nil {
		return err
	}
	for i, it := range s.Items {
		if it.Count < 0 {
			return fmt.Errorf("item %d: count must not be negative, got %d", i, it.Count)
		}
		if err := validSize(fmt.Sprintf("item %d", i), Size{Width: it.Width, Height: it.Height}); err != nil {
			return err
		}
	}
	return nil
}

func validSize(name string, s Size) error {
	if err := nonNegative(name+" width", s.Width); err != nil {
		return err
	}
	return nonNegative(name+" height", s.Height)
}

func validInsets(name string, in Insets) error {
	for _, v := range []float64{in.Top, in.Left, in.Bottom, in.Right} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s must be a finite non-negative number, got %v", name, v)
	}
	return nil
}

// Options returns the layout options the fixture sets.
func (f *Fixture) Options() ([]flowgrid.Option, error) {
	dir, err := ParseDirection(f.Direction)
	if err != nil {
		return nil, err
	}
	return []flowgrid.Option{
		flowgrid.WithDirection(dir),
		flowgrid.WithStickyHeaders(f.StickyHeaders),
		flowgrid.WithStickyHeaderOffset(f.StickyHeaderOffset),
		flowgrid.WithTopContentInset(f.TopContentInset),
		flowgrid.WithStretchToEdge(f.StretchToEdge),
		flowgrid.WithShowHeaderWhenEmpty(f.ShowHeaderWhenEmpty),
	}, nil
}

// Host builds an in-memory host with item runs expanded.
func (f *Fixture) Host() *flowgrid.StaticHost {
	sections := make([]flowgrid.StaticSection, len(f.Sections))
	for i, s := range f.Sections {
		sections[i] = flowgrid.StaticSection{
			Header:           s.Header.toSize(),
			Footer:           s.Footer.toSize(),
			Insets:           s.Insets.toInsets(),
			LineSpacing:      s.LineSpacing,
			InteritemSpacing: s.InteritemSpacing,
			Items:            s.expandItems(),
		}
	}

	host := flowgrid.NewStaticHost(f.Viewport.Width, f.Viewport.Height, sections...)
	host.Bounds.X, host.Bounds.Y = f.Viewport.ScrollX, f.Viewport.ScrollY
	host.Insets = f.Viewport.Insets.toInsets()
	if f.Viewport.Scale > 0 {
		host.Scale = f.Viewport.Scale
	}
	return host
}

// Build validates the fixture and returns a layout attached to a new host.
func (f *Fixture) Build(extra ...flowgrid.Option) (*flowgrid.Layout, *flowgrid.StaticHost, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid fixture: %w", err)
	}
	opts, err := f.Options()
	if err != nil {
		return nil, nil, err
	}

	l, err := flowgrid.NewLayout(append(opts, extra...)...)
	if err != nil {
		return nil, nil, err
	}
	host := f.Host()
	l.Attach(host)
	return l, host, nil
}

func (s *Section) expandItems() []flowgrid.Size {
	var n int
	for _, it := range s.Items {
		n += it.count()
	}
	out := make([]flowgrid.Size, 0, n)
	for _, it := range s.Items {
		for range it.count() {
			out = append(out, flowgrid.Size{Width: it.Width, Height: it.Height})
		}
	}
	return out
}

func (s Size) toSize() flowgrid.Size {
	return flowgrid.Size{Width: s.Width, Height: s.Height}
}

func (in Insets) toInsets() flowgrid.Insets {
	return flowgrid.InsetsTLBR(in.Top, in.Left, in.Bottom, in.Right)
}
