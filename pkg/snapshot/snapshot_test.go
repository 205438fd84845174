package snapshot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

func twoSectionLayout(t *testing.T) *flowgrid.Layout {
	t.Helper()
	squares := []flowgrid.Size{{Width: 50, Height: 50}, {Width: 50, Height: 50}, {Width: 50, Height: 50}}
	host := flowgrid.NewStaticHost(120, 600,
		flowgrid.StaticSection{Header: flowgrid.Size{Width: 120, Height: 30}, Items: squares},
		flowgrid.StaticSection{Header: flowgrid.Size{Width: 120, Height: 30}, Items: squares[:1]},
	)
	l, err := flowgrid.NewLayout()
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}
	l.Attach(host)
	return l
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestCapture(t *testing.T) {
	attrs, size := Capture(twoSectionLayout(t))
	if size != (flowgrid.Size{Width: 120, Height: 210}) {
		t.Errorf("Capture() size = %+v, want 120x210", size)
	}
	if len(attrs) != 6 {
		t.Errorf("Capture() returned %d elements, want 6", len(attrs))
	}
}

func TestRender_Pixels(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	defer r.Close()

	attrs, size := Capture(twoSectionLayout(t))
	img, err := r.Render(attrs, size)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 210 {
		t.Fatalf("image size = %dx%d, want 120x210", b.Dx(), b.Dy())
	}

	type tc struct {
		x, y int
		want color.Color
	}

	tests := map[string]tc{
		"header":        {x: 60, y: 15, want: DefaultPalette.Supplementary},
		"first item":    {x: 25, y: 55, want: DefaultPalette.Cell},
		"third item":    {x: 25, y: 105, want: DefaultPalette.Cell},
		"empty slot":    {x: 110, y: 105, want: DefaultPalette.Background},
		"second header": {x: 60, y: 145, want: DefaultPalette.Supplementary},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got, want := rgba(img.At(tt.x, tt.y)), rgba(tt.want); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestRender_Scale(t *testing.T) {
	r, err := NewRenderer(WithScale(2), WithLabels(true))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	defer r.Close()

	attrs, size := Capture(twoSectionLayout(t))
	img, err := r.Render(attrs, size)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 420 {
		t.Errorf("image size = %dx%d, want 240x420", b.Dx(), b.Dy())
	}
}

func TestRender_Errors(t *testing.T) {
	r, _ := NewRenderer()

	if _, err := r.Render(nil, flowgrid.Size{}); err == nil {
		t.Error("Render() of empty content error = nil")
	}
	if _, err := r.Render(nil, flowgrid.Size{Width: 10, Height: MaxDimension + 1}); err == nil {
		t.Error("Render() of oversized content error = nil")
	}
}

func TestNewRenderer_InvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		if _, err := NewRenderer(WithScale(scale)); err == nil {
			t.Errorf("NewRenderer(WithScale(%v)) error = nil", scale)
		}
	}
}

func TestSortByZIndex(t *testing.T) {
	attrs := []flowgrid.Attributes{
		{ZIndex: 999, Kind: flowgrid.KindHeader},
		{ZIndex: 1},
		{ZIndex: 0},
		{ZIndex: 999, Kind: flowgrid.KindFooter},
	}
	sorted := sortByZIndex(attrs)

	want := []int{0, 1, 999, 999}
	for i, a := range sorted {
		if a.ZIndex != want[i] {
			t.Errorf("sorted[%d].ZIndex = %d, want %d", i, a.ZIndex, want[i])
		}
	}
	if sorted[2].Kind != flowgrid.KindHeader {
		t.Error("sort is not stable")
	}
	if attrs[0].ZIndex != 999 {
		t.Error("sortByZIndex modified its input")
	}
}

func TestSavePNG(t *testing.T) {
	r, _ := NewRenderer()
	attrs, size := Capture(twoSectionLayout(t))

	path := filepath.Join(t.TempDir(), "layout.png")
	if err := r.SavePNG(path, attrs, size); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG() wrote an empty file")
	}
}

func TestLabelFor(t *testing.T) {
	tests := map[string]struct {
		attrs flowgrid.Attributes
		want  string
	}{
		"cell":   {attrs: flowgrid.Attributes{IndexPath: flowgrid.IndexPath{Section: 1, Item: 4}}, want: "1.4"},
		"header": {attrs: flowgrid.Attributes{Category: flowgrid.CategorySupplementary, Kind: flowgrid.KindHeader, IndexPath: flowgrid.IndexPath{Section: 3}}, want: "header 3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := labelFor(tt.attrs); got != tt.want {
				t.Errorf("labelFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
