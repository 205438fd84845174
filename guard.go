package flowgrid

import "sync/atomic"

// ownerGuard detects a Layout method starting while another is running,
// either on a second goroutine or re-entered from a Delegate callback.
// Mutations and queries enter it; the unexported bodies and the plain
// configuration getters never do.
type ownerGuard struct {
	busy atomic.Bool
}

// enter marks the guard busy and returns the function that releases it.
//
//	defer l.guard.enter()()
func (g *ownerGuard) enter() func() {
	if !g.busy.CompareAndSwap(false, true) {
		panic("flowgrid: re-entrant or concurrent use of Layout")
	}
	return g.exit
}

func (g *ownerGuard) exit() {
	g.busy.Store(false)
}
