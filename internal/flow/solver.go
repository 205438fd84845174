package flow

import "github.com/grindlemire/go-flowgrid/internal/geom"

// Tolerance is the slack, in points, allowed before an item wraps to a new
// row, and the distance within which stretch-to-edge snaps an item to the
// fixed-axis boundary.
const Tolerance = 1.0

// Config is the part of the layout configuration the solver reads.
type Config struct {
	Direction           geom.Direction
	StretchToEdge       bool
	ShowHeaderWhenEmpty bool
}

// Source supplies the raw sizing inputs for a pass. Values a host does not
// report are zero.
type Source interface {
	Sections() int
	Items(section int) int

	// Container is the viewport size after content insets.
	Container() geom.Size
	// PixelScale is the number of physical pixels per point.
	PixelScale() float64

	HeaderSize(section int) geom.Size
	FooterSize(section int) geom.Size
	Insets(section int) geom.Insets
	LineSpacing(section int) float64
	InteritemSpacing(section int) float64
	ItemSize(section, item int) geom.Size
}

// Solve recomputes every section from floor to the end of src, writing the
// results into store. Sections below floor are neither touched nor queried.
// It returns the number of sections recomputed.
//
// The caller owns the tracker: it must clear cached attributes before Solve
// and settle the floor after Solve returns.
func Solve(store *Store, floor int, src Source, cfg Config) int {
	count := src.Sections()
	if count < 0 {
		count = 0
	}

	// Sections past the old store were never laid out, so the pass has to
	// begin no later than the first of them.
	start := min(max(floor, 0), store.Len(), count)
	store.Resize(count)

	var cur Cursor
	if start > 0 {
		cur = store.At(start - 1).Exit
	}

	env := passEnv{
		container: src.Container(),
		scale:     src.PixelScale(),
	}
	for section := start; section < count; section++ {
		cur = layoutSection(store.At(section), section, cur, src, cfg, env)
	}
	return count - start
}

// passEnv holds the inputs that are fixed for a whole pass.
type passEnv struct {
	container geom.Size
	scale     float64
}

// layoutSection computes one section's geometry from the incoming cursor and
// returns the cursor for the next section.
func layoutSection(e *Entry, section int, in Cursor, src Source, cfg Config, env passEnv) Cursor {
	dir := cfg.Direction
	fixed := dir.Fixed()

	itemCount := max(src.Items(section), 0)
	hidden := itemCount == 0 && !cfg.ShowHeaderWhenEmpty

	headerSize := src.HeaderSize(section)
	footerSize := src.FooterSize(section)
	insets := src.Insets(section)
	lineSpacing := src.LineSpacing(section)
	interitemSpacing := src.InteritemSpacing(section)

	leadScroll := dir.LeadingInset(insets)
	trailScroll := dir.TrailingInset(insets)
	leadFixed := fixed.LeadingInset(insets)
	trailFixed := fixed.TrailingInset(insets)

	containerFixed := fixed.SizeLength(env.container)
	paddedFixed := containerFixed - leadFixed - trailFixed
	boundary := containerFixed - trailFixed

	var headerLen, footerLen float64
	if !hidden {
		headerLen = dir.SizeLength(headerSize)
		footerLen = dir.SizeLength(footerSize)
	}
	headerExists := headerLen > 0
	footerExists := footerLen > 0

	cur := in
	sectionStart := cur.NextRow + leadScroll

	cur.ItemScroll += headerLen
	cur.NextRow += headerLen
	cur.ItemFixed += leadFixed

	e.ItemBounds = resizeRects(e.ItemBounds, itemCount)

	var union geom.Rect
	grown := false
	grow := func(r geom.Rect) {
		if grown {
			union = union.Union(r)
			return
		}
		union, grown = r, true
	}

	for item := range itemCount {
		size := src.ItemSize(section, item)
		fixedLen := min(fixed.SizeLength(size), paddedFixed)

		if cur.ItemFixed+fixedLen > boundary+Tolerance || (item == 0 && headerExists) {
			cur.ItemScroll = cur.NextRow
			cur.ItemFixed = leadFixed
			if item > 0 {
				cur.ItemScroll += lineSpacing
			}
		}

		if cfg.StretchToEdge {
			gap := boundary - (cur.ItemFixed + fixedLen)
			if gap > 0 && gap <= Tolerance {
				fixedLen = boundary - cur.ItemFixed
			}
		}

		frame := geom.Snap(dir.Rect(cur.ItemScroll+leadScroll, cur.ItemFixed, dir.SizeLength(size), fixedLen), env.scale)
		e.ItemBounds[item] = frame

		cur.NextRow = max(cur.NextRow, dir.RectMax(frame)-leadScroll)
		cur.ItemFixed += fixedLen + interitemSpacing
		grow(frame)
	}

	e.HeaderBounds = geom.Rect{}
	if headerExists {
		e.HeaderBounds = dir.Rect(sectionStart, leadFixed, headerLen, paddedFixed)
		grow(e.HeaderBounds)
	}

	e.FooterBounds = geom.Rect{}
	if footerExists {
		footerStart := sectionStart
		if grown {
			footerStart = dir.RectMax(union)
		}
		e.FooterBounds = dir.Rect(footerStart, leadFixed, footerLen, paddedFixed)
		grow(e.FooterBounds)
	}

	e.Bounds = union
	e.Insets = insets

	cur.ItemFixed += trailFixed
	if footerExists {
		// A footer closes the last row; the next section cannot continue it.
		cur.ItemScroll = cur.NextRow
		cur.ItemFixed = containerFixed
	}
	if e.Valid() {
		cur.NextRow = max(cur.NextRow, dir.RectMax(e.Bounds)+trailScroll)
	}
	e.Exit = cur
	return cur
}

// resizeRects returns a slice of length n, reusing rects' backing array.
func resizeRects(rects []geom.Rect, n int) []geom.Rect {
	if cap(rects) < n {
		return make([]geom.Rect, n)
	}
	rects = rects[:n]
	clear(rects)
	return rects
}
