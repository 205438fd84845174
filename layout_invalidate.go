package flowgrid

// InvalidationContext describes what changed since the last layout pass.
type InvalidationContext struct {
	// Everything drops all geometry.
	Everything bool
	// DataSourceCounts means section or item counts changed. It invalidates
	// from section 0 unless a notification has already set a lower bound.
	DataSourceCounts bool
	// ItemIndexPaths lists items whose geometry changed.
	ItemIndexPaths []IndexPath
	// Supplementary drops cached headers and footers.
	Supplementary bool
	// AllAttributes drops all geometry.
	AllAttributes bool
}

// Invalidate applies ctx. Sections are only marked dirty here; the work
// happens on the next query.
func (l *Layout) Invalidate(ctx InvalidationContext) {
	defer l.guard.enter()()
	l.invalidate(ctx)
}

func (l *Layout) invalidate(ctx InvalidationContext) {
	for _, p := range ctx.ItemIndexPaths {
		checkIndexPath(p)
	}

	switch {
	case ctx.Everything, ctx.AllAttributes, len(ctx.ItemIndexPaths) > 0:
		l.tracker.MarkDirty(0)
	case ctx.DataSourceCounts && l.tracker.IsClean():
		l.tracker.MarkDirty(0)
	}
	if ctx.Supplementary {
		l.cache.ClearSupplementary()
	}
}

// ItemsChanged records that the items at paths were reloaded, inserted or
// deleted. Sections before the lowest affected section keep their geometry.
func (l *Layout) ItemsChanged(paths ...IndexPath) {
	defer l.guard.enter()()

	for _, p := range paths {
		checkIndexPath(p)
		l.tracker.MarkDirty(p.Section)
	}
}

// SectionsChanged records that sections were reloaded, inserted or deleted.
func (l *Layout) SectionsChanged(sections ...int) {
	defer l.guard.enter()()

	for _, s := range sections {
		checkSection(s)
		l.tracker.MarkDirty(s)
	}
}

// ItemMoved records that an item moved from one index path to another.
func (l *Layout) ItemMoved(from, to IndexPath) {
	defer l.guard.enter()()

	checkIndexPath(from)
	checkIndexPath(to)
	l.tracker.MarkDirty(from.Section)
	l.tracker.MarkDirty(to.Section)
}

// SectionMoved records that a section moved.
func (l *Layout) SectionMoved(from, to int) {
	defer l.guard.enter()()

	checkSection(from)
	checkSection(to)
	l.tracker.MarkDirty(from)
	l.tracker.MarkDirty(to)
}

// InvalidateAll drops all geometry.
func (l *Layout) InvalidateAll() {
	defer l.guard.enter()()
	l.invalidate(InvalidationContext{Everything: true})
}

// InvalidateFromDataCountChange records that counts changed without saying
// where.
func (l *Layout) InvalidateFromDataCountChange() {
	defer l.guard.enter()()
	l.invalidate(InvalidationContext{DataSourceCounts: true})
}

// ShouldInvalidateForBoundsChange reports whether moving the viewport to
// newBounds requires InvalidateForBoundsChange. A size change always does.
// Scrolling along the scroll axis does only when headers are sticky;
// scrolling along the fixed axis never does. The host must call it before
// committing newBounds, since the old bounds are read from the host.
func (l *Layout) ShouldInvalidateForBoundsChange(newBounds Rect) bool {
	defer l.guard.enter()()

	if l.host == nil {
		return false
	}
	old := l.host.ViewportBounds()
	if newBounds.Size() != old.Size() {
		return true
	}
	if l.direction.RectMin(newBounds) != l.direction.RectMin(old) {
		return l.stickyHeaders
	}
	return false
}

// InvalidateForBoundsChange records that the viewport is moving to
// newBounds. Headers and footers are always dropped from the cache; a size
// change also invalidates every section.
func (l *Layout) InvalidateForBoundsChange(newBounds Rect) {
	defer l.guard.enter()()

	if l.host == nil || newBounds.Size() != l.host.ViewportBounds().Size() {
		l.tracker.MarkDirty(0)
	}
	l.cache.ClearSupplementary()
}
