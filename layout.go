package flowgrid

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/grindlemire/go-flowgrid/internal/flow"
)

// Layout computes and answers geometry queries for a Host. A Layout must be
// used from a single goroutine. Mutations and queries panic when entered
// while another one is running, whether from a second goroutine or from a
// Delegate calling back in. The configuration getters never enter the
// guard, so a Delegate may read them during a layout pass.
type Layout struct {
	guard ownerGuard

	host   Host
	logger *slog.Logger

	direction           Direction
	stickyHeaders       bool
	stickyHeaderOffset  float64
	topContentInset     float64
	stretchToEdge       bool
	showHeaderWhenEmpty bool

	store   flow.Store
	tracker flow.Tracker
	cache   *attributesCache
}

// NewLayout creates a Layout with the given options. The layout starts
// detached and fully dirty.
func NewLayout(opts ...Option) (*Layout, error) {
	l := &Layout{
		direction: Vertical,
		tracker:   flow.NewTracker(),
		cache:     flow.NewCache[Attributes](),
	}
	l.tracker.MarkDirty(0)

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("invalid layout option: %w", err)
		}
	}
	return l, nil
}

// Attach connects the layout to host. Attaching a different host than the
// current one invalidates every section.
func (l *Layout) Attach(host Host) {
	defer l.guard.enter()()

	if host == nil {
		panic("flowgrid: nil host in Attach")
	}
	if l.host != host {
		l.tracker.MarkDirty(0)
		l.cache.Clear()
	}
	l.host = host
}

// Detach drops the host. Until another host is attached, queries return
// empty results and the dirty floor is kept.
func (l *Layout) Detach() {
	defer l.guard.enter()()
	l.host = nil
}

// Host returns the attached host, or nil.
func (l *Layout) Host() Host {
	return l.host
}

// Direction returns the scroll axis.
func (l *Layout) Direction() Direction {
	return l.direction
}

// SetDirection changes the scroll axis and invalidates every section.
func (l *Layout) SetDirection(d Direction) {
	defer l.guard.enter()()

	if !d.Valid() {
		panic(fmt.Sprintf("flowgrid: unknown direction %d", uint8(d)))
	}
	if l.direction == d {
		return
	}
	l.direction = d
	l.invalidateConfig()
}

// StickyHeaders reports whether headers stick to the viewport edge.
func (l *Layout) StickyHeaders() bool {
	return l.stickyHeaders
}

// SetStickyHeaders turns sticky headers on or off.
func (l *Layout) SetStickyHeaders(enabled bool) {
	defer l.guard.enter()()

	if l.stickyHeaders == enabled {
		return
	}
	l.stickyHeaders = enabled
	l.invalidateConfig()
}

// StickyHeaderOffset returns the sticky header nudge.
func (l *Layout) StickyHeaderOffset() float64 {
	return l.stickyHeaderOffset
}

// SetStickyHeaderOffset changes the sticky header nudge. Section geometry is
// unaffected, so only cached headers and footers are dropped.
func (l *Layout) SetStickyHeaderOffset(offset float64) {
	defer l.guard.enter()()

	mustBeFinite("sticky header offset", offset)
	if l.stickyHeaderOffset == offset {
		return
	}
	l.stickyHeaderOffset = offset
	l.cache.ClearSupplementary()
}

// TopContentInset returns the inset used when positioning sticky headers.
func (l *Layout) TopContentInset() float64 {
	return l.topContentInset
}

// SetTopContentInset changes the inset used when positioning sticky headers.
func (l *Layout) SetTopContentInset(inset float64) {
	defer l.guard.enter()()

	mustBeFinite("top content inset", inset)
	if l.topContentInset == inset {
		return
	}
	l.topContentInset = inset
	l.invalidateConfig()
}

// StretchToEdge reports whether near-edge items are stretched.
func (l *Layout) StretchToEdge() bool {
	return l.stretchToEdge
}

// SetStretchToEdge turns edge stretching on or off.
func (l *Layout) SetStretchToEdge(enabled bool) {
	defer l.guard.enter()()

	if l.stretchToEdge == enabled {
		return
	}
	l.stretchToEdge = enabled
	l.invalidateConfig()
}

// ShowHeaderWhenEmpty reports whether empty sections keep their headers.
func (l *Layout) ShowHeaderWhenEmpty() bool {
	return l.showHeaderWhenEmpty
}

// SetShowHeaderWhenEmpty changes whether empty sections keep their headers.
func (l *Layout) SetShowHeaderWhenEmpty(enabled bool) {
	defer l.guard.enter()()

	if l.showHeaderWhenEmpty == enabled {
		return
	}
	l.showHeaderWhenEmpty = enabled
	l.invalidateConfig()
}

func (l *Layout) invalidateConfig() {
	l.tracker.MarkDirty(0)
	l.cache.ClearSupplementary()
}

func (l *Layout) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

func (l *Layout) solverConfig() flow.Config {
	return flow.Config{
		Direction:           l.direction,
		StretchToEdge:       l.stretchToEdge,
		ShowHeaderWhenEmpty: l.showHeaderWhenEmpty,
	}
}

// prepare runs a solver pass if any section is dirty. It reports whether
// the store can be read, which is false while no host is attached.
func (l *Layout) prepare() bool {
	if l.host == nil {
		return false
	}
	if l.tracker.IsClean() {
		return true
	}

	delegate := l.host.LayoutDelegate()
	if delegate == nil {
		l.log().Warn("flowgrid: skipping layout pass, host has no delegate",
			"floor", l.tracker.Floor())
		return false
	}

	floor := l.tracker.Floor()
	l.cache.Clear()

	l.log().Debug("flowgrid: layout pass", "from", floor, "direction", l.direction)
	n := flow.Solve(&l.store, floor, newHostSource(l.host, delegate), l.solverConfig())
	l.tracker.Settle()
	l.log().Debug("flowgrid: layout pass done", "recomputed", n, "sections", l.store.Len())
	return true
}

func mustBeFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("flowgrid: %s must be finite, got %v", name, v))
	}
}
