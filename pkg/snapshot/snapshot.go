package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

// MaxDimension is the largest width or height, in pixels, Render produces.
const MaxDimension = 16384

// Palette holds the colors used for each element category.
type Palette struct {
	Background    color.Color
	Cell          color.Color
	Supplementary color.Color
	Outline       color.Color
	Label         color.Color
}

// DefaultPalette is used unless WithPalette is given.
var DefaultPalette = Palette{
	Background:    color.White,
	Cell:          color.RGBA{R: 140, G: 190, B: 240, A: 255},
	Supplementary: color.RGBA{R: 250, G: 200, B: 120, A: 255},
	Outline:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
	Label:         color.Black,
}

// Renderer draws attributes. A Renderer holds a font face and must not be
// shared between goroutines.
type Renderer struct {
	scale   float64
	labels  bool
	palette Palette
	face    font.Face
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithScale sets the number of pixels per point. Default is 1.
func WithScale(scale float64) Option {
	return func(r *Renderer) error {
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			return fmt.Errorf("scale must be positive, got %v", scale)
		}
		r.scale = scale
		return nil
	}
}

// WithLabels draws each element's index path inside its box.
func WithLabels(enabled bool) Option {
	return func(r *Renderer) error {
		r.labels = enabled
		return nil
	}
}

// WithPalette replaces the default colors.
func WithPalette(p Palette) Option {
	return func(r *Renderer) error {
		r.palette = p
		return nil
	}
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{scale: 1, palette: DefaultPalette}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid snapshot option: %w", err)
		}
	}

	if r.labels {
		face, err := labelFace(10 * r.scale)
		if err != nil {
			return nil, err
		}
		r.face = face
	}
	return r, nil
}

func labelFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating label face: %w", err)
	}
	return face, nil
}

// Close releases the label font face.
func (r *Renderer) Close() error {
	if r.face == nil {
		return nil
	}
	err := r.face.Close()
	r.face = nil
	return err
}

// Render draws attrs onto a canvas covering content. attrs is not modified.
func (r *Renderer) Render(attrs []flowgrid.Attributes, content flowgrid.Size) (image.Image, error) {
	dc, err := r.draw(attrs, content)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders attrs and writes the result to path.
func (r *Renderer) SavePNG(path string, attrs []flowgrid.Attributes, content flowgrid.Size) error {
	dc, err := r.draw(attrs, content)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (r *Renderer) draw(attrs []flowgrid.Attributes, content flowgrid.Size) (*gg.Context, error) {
	width := int(math.Ceil(content.Width * r.scale))
	height := int(math.Ceil(content.Height * r.scale))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("nothing to render: content size is %vx%v", content.Width, content.Height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("snapshot of %dx%d pixels exceeds the %d pixel limit", width, height, MaxDimension)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(r.palette.Background)
	dc.Clear()
	if r.face != nil {
		dc.SetFontFace(r.face)
	}

	for _, a := range sortByZIndex(attrs) {
		r.drawElement(dc, a)
	}
	return dc, nil
}

// sortByZIndex returns a copy of attrs in paint order.
func sortByZIndex(attrs []flowgrid.Attributes) []flowgrid.Attributes {
	sorted := make([]flowgrid.Attributes, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex < sorted[j].ZIndex
	})
	return sorted
}

func (r *Renderer) drawElement(dc *gg.Context, a flowgrid.Attributes) {
	f := a.Frame
	x, y := f.X*r.scale, f.Y*r.scale
	w, h := f.Width*r.scale, f.Height*r.scale
	if w <= 0 || h <= 0 {
		return
	}

	fill := r.palette.Cell
	if a.Category == flowgrid.CategorySupplementary {
		fill = r.palette.Supplementary
	}
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(fill)
	dc.Fill()

	// Inset by half the line width so the outline stays inside the frame.
	dc.SetLineWidth(1)
	dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
	dc.SetColor(r.palette.Outline)
	dc.Stroke()

	if r.face == nil {
		return
	}
	label := labelFor(a)
	lw, lh := dc.MeasureString(label)
	if lw > w-4 || lh > h-2 {
		return
	}
	dc.SetColor(r.palette.Label)
	dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
}

func labelFor(a flowgrid.Attributes) string {
	if a.Category == flowgrid.CategorySupplementary {
		return string(a.Kind) + " " + strconv.Itoa(a.IndexPath.Section)
	}
	return a.IndexPath.String()
}

// Capture returns every element of l together with its content size, ready
// to pass to Render.
func Capture(l *flowgrid.Layout) ([]flowgrid.Attributes, flowgrid.Size) {
	size := l.ContentSize()
	return l.AttributesInRect(flowgrid.NewRect(0, 0, size.Width, size.Height)), size
}
