package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	flowgrid "github.com/grindlemire/go-flowgrid"
)

func TestLoad_Testdata(t *testing.T) {
	type tc struct {
		path      string
		name      string
		direction flowgrid.Direction
		items     []int
		scale     float64
	}

	tests := map[string]tc{
		"toml": {
			path:      "testdata/gallery.toml",
			name:      "gallery",
			direction: flowgrid.Vertical,
			items:     []int{7, 3, 0},
			scale:     2,
		},
		"yaml": {
			path:      "testdata/feed.yaml",
			name:      "feed",
			direction: flowgrid.Vertical,
			items:     []int{3, 0, 4},
			scale:     3,
		},
		"yml without name": {
			path:      "testdata/carousel.yml",
			name:      "carousel",
			direction: flowgrid.Horizontal,
			items:     []int{6},
			scale:     1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Load(tt.path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if f.Name != tt.name {
				t.Errorf("Name = %q, want %q", f.Name, tt.name)
			}

			l, host, err := f.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if l.Direction() != tt.direction {
				t.Errorf("Direction() = %v, want %v", l.Direction(), tt.direction)
			}
			if host.PixelScale() != tt.scale {
				t.Errorf("PixelScale() = %v, want %v", host.PixelScale(), tt.scale)
			}
			if host.NumberOfSections() != len(tt.items) {
				t.Fatalf("NumberOfSections() = %d, want %d", host.NumberOfSections(), len(tt.items))
			}
			for i, want := range tt.items {
				if got := host.NumberOfItems(i); got != want {
					t.Errorf("NumberOfItems(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestBuild_Gallery(t *testing.T) {
	f, err := Load("testdata/gallery.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	l, _, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !l.StickyHeaders() || !l.StretchToEdge() {
		t.Error("fixture options were not applied")
	}

	header, ok := l.AttributesForSupplementary(flowgrid.KindHeader, 0)
	if want := flowgrid.NewRect(8, 8, 304, 32); !ok || header.Frame != want {
		t.Errorf("header 0 = %+v, %v, want %+v", header.Frame, ok, want)
	}
	item, ok := l.AttributesForItem(flowgrid.IndexPath{Section: 0, Item: 1})
	if want := flowgrid.NewRect(110, 40, 98, 98); !ok || item.Frame != want {
		t.Errorf("item 0.1 = %+v, %v, want %+v", item.Frame, ok, want)
	}
	if _, ok := l.SectionBounds(2); ok {
		t.Error("empty section 2 has bounds")
	}
}

func TestBuild_FeedViewportInsets(t *testing.T) {
	f, err := Load("testdata/feed.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	l, host, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if host.ContentInsets().Top != 44 {
		t.Errorf("ContentInsets().Top = %v, want 44", host.ContentInsets().Top)
	}
	if _, ok := l.AttributesForSupplementary(flowgrid.KindHeader, 1); !ok {
		t.Error("header of empty section 1 missing with show_header_when_empty")
	}
	if got := l.ContentSize().Width; got != 375 {
		t.Errorf("ContentSize().Width = %v, want 375", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	type tc struct {
		data    string
		format  Format
		wantErr string
	}

	tests := map[string]tc{
		"toml unknown key": {
			data:    "colour = \"red\"\n[viewport]\nwidth = 1.0\nheight = 1.0\n",
			format:  FormatTOML,
			wantErr: "unknown keys: colour",
		},
		"toml syntax": {
			data:    "direction = \n",
			format:  FormatTOML,
			wantErr: "decoding toml",
		},
		"yaml unknown key": {
			data:    "viewport: {width: 1, height: 1, depth: 3}\n",
			format:  FormatYAML,
			wantErr: "decoding yaml",
		},
		"yaml empty": {
			data:    "",
			format:  FormatYAML,
			wantErr: "empty document",
		},
		"unknown format": {
			data:    "",
			format:  Format(9),
			wantErr: "unknown fixture format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Fixture {
		return &Fixture{
			Viewport: Viewport{Width: 100, Height: 100},
			Sections: []Section{{Items: []Item{{Width: 10, Height: 10, Count: 2}}}},
		}
	}

	type tc struct {
		mutate  func(f *Fixture)
		wantErr string
	}

	tests := map[string]tc{
		"valid":              {mutate: func(*Fixture) {}},
		"bad direction":      {mutate: func(f *Fixture) { f.Direction = "diagonal" }, wantErr: "unknown direction"},
		"zero viewport":      {mutate: func(f *Fixture) { f.Viewport.Width = 0 }, wantErr: "positive size"},
		"negative scale":     {mutate: func(f *Fixture) { f.Viewport.Scale = -1 }, wantErr: "viewport scale"},
		"negative count":     {mutate: func(f *Fixture) { f.Sections[0].Items[0].Count = -1 }, wantErr: "section 0: item 0: count"},
		"negative height":    {mutate: func(f *Fixture) { f.Sections[0].Header.Height = -5 }, wantErr: "header height"},
		"negative spacing":   {mutate: func(f *Fixture) { f.Sections[0].LineSpacing = -1 }, wantErr: "line_spacing"},
		"uppercase accepted": {mutate: func(f *Fixture) { f.Direction = "Horizontal" }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := valid()
			tt.mutate(f)
			err := f.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestHost_ExpandsItemRuns(t *testing.T) {
	f := &Fixture{
		Viewport: Viewport{Width: 100, Height: 100, ScrollY: 40},
		Sections: []Section{{Items: []Item{
			{Width: 10, Height: 10},
			{Width: 20, Height: 20, Count: 3},
		}}},
	}

	host := f.Host()
	items := host.Sections[0].Items
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}
	if items[0].Width != 10 || items[3].Width != 20 {
		t.Errorf("items = %+v, want one 10pt item then three 20pt items", items)
	}
	if host.ScrollOffset().Y != 40 {
		t.Errorf("ScrollOffset().Y = %v, want 40", host.ScrollOffset().Y)
	}
	if host.PixelScale() != 1 {
		t.Errorf("PixelScale() = %v, want 1", host.PixelScale())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "layout.json")
	os.WriteFile(jsonPath, []byte("{}"), 0644)
	if _, err := Load(jsonPath); err == nil || !strings.Contains(err.Error(), "unsupported fixture extension") {
		t.Errorf("Load(.json) error = %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	os.WriteFile(invalid, []byte("[viewport]\nwidth = 0.0\nheight = 10.0\n"), 0644)
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid.toml") {
		t.Errorf("Load(invalid) error = %v, want path in message", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]struct {
		path string
		want Format
	}{
		"toml":      {path: "a.toml", want: FormatTOML},
		"yaml":      {path: "dir/b.yaml", want: FormatYAML},
		"yml upper": {path: "C.YML", want: FormatYAML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if err != nil || got != tt.want {
				t.Errorf("FormatForPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
			}
		})
	}
}
