package reconcile

import "sync"

// Guard protects screen state from the stale-update-after-unmount race:
// a fetch started by a screen must not mutate state once that screen has
// been replaced or torn down.
//
// A screen acquires a Ticket when it starts a fetch and routes the response
// through Ticket.Apply; tearing the screen down calls Invalidate, after
// which every outstanding ticket silently no-ops.
type Guard struct {
	mu  sync.Mutex
	gen uint64
}

// Ticket marks one in-flight operation against the guard's current
// generation.
type Ticket struct {
	g   *Guard
	gen uint64
}

// Acquire returns a ticket bound to the current generation.
func (g *Guard) Acquire() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Ticket{g: g, gen: g.gen}
}

// Invalidate retires every outstanding ticket. Called when the owning
// screen unmounts or is replaced.
func (g *Guard) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
}

// Apply runs fn only if the ticket is still current, reporting whether it
// ran. fn executes under the guard's lock, so applications are serialized
// in the order their responses arrive.
func (t Ticket) Apply(fn func()) bool {
	if t.g == nil {
		return false
	}
	t.g.mu.Lock()
	defer t.g.mu.Unlock()
	if t.gen != t.g.gen {
		return false
	}
	fn()
	return true
}
