package flow

// Clean is the floor value meaning no section needs recomputation.
const Clean = -1

// MergeFloor combines two invalidation floors. Negative values mean "nothing
// invalid"; otherwise the lower section wins.
func MergeFloor(a, b int) int {
	switch {
	case a < 0 && b < 0:
		return Clean
	case a < 0:
		return b
	case b < 0:
		return a
	}
	return min(a, b)
}

// Tracker holds the lowest section index whose geometry is stale.
type Tracker struct {
	floor int
}

// NewTracker returns a clean tracker.
func NewTracker() Tracker {
	return Tracker{floor: Clean}
}

// MarkDirty lowers the floor to section if it is below the current floor.
// Marking never touches cached attributes; those are dropped when a pass runs.
func (t *Tracker) MarkDirty(section int) {
	t.floor = MergeFloor(t.floor, section)
}

// IsClean reports whether every section is valid.
func (t *Tracker) IsClean() bool {
	return t.floor == Clean
}

// Floor returns the lowest stale section, or Clean.
func (t *Tracker) Floor() int {
	return t.floor
}

// Settle marks every section valid. Call it only after a pass has run
// through the last section.
func (t *Tracker) Settle() {
	t.floor = Clean
}
