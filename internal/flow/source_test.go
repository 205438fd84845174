package flow

import "github.com/grindlemire/go-flowgrid/internal/geom"

// fakeSection is one section of a fakeSource.
type fakeSection struct {
	header, footer  geom.Size
	insets          geom.Insets
	line, interitem float64
	items           []geom.Size
}

// fakeSource is an in-memory Source that counts per-section queries.
type fakeSource struct {
	container geom.Size
	scale     float64
	sections  []fakeSection
	queried   map[int]int
}

func newFakeSource(width, height float64, sections ...fakeSection) *fakeSource {
	return &fakeSource{
		container: geom.Size{Width: width, Height: height},
		scale:     1,
		sections:  sections,
		queried:   make(map[int]int),
	}
}

func (f *fakeSource) touch(section int) *fakeSection {
	f.queried[section]++
	return &f.sections[section]
}

func (f *fakeSource) Sections() int                  { return len(f.sections) }
func (f *fakeSource) Items(section int) int          { return len(f.touch(section).items) }
func (f *fakeSource) Container() geom.Size           { return f.container }
func (f *fakeSource) PixelScale() float64            { return f.scale }
func (f *fakeSource) HeaderSize(s int) geom.Size     { return f.touch(s).header }
func (f *fakeSource) FooterSize(s int) geom.Size     { return f.touch(s).footer }
func (f *fakeSource) Insets(s int) geom.Insets       { return f.touch(s).insets }
func (f *fakeSource) LineSpacing(s int) float64      { return f.touch(s).line }
func (f *fakeSource) InteritemSpacing(s int) float64 { return f.touch(s).interitem }
func (f *fakeSource) ItemSize(s, i int) geom.Size    { return f.touch(s).items[i] }

// sizes returns n copies of (w, h).
func sizes(n int, w, h float64) []geom.Size {
	out := make([]geom.Size, n)
	for i := range out {
		out[i] = geom.Size{Width: w, Height: h}
	}
	return out
}

var _ Source = (*fakeSource)(nil)
