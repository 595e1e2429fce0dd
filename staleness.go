package valuation

import (
	"sync"

	"github.com/google/uuid"
)

// Ticket identifies one in-flight fetch and the screen parameter (asset,
// project or portfolio id) it was started for.
type Ticket struct {
	ID    uuid.UUID
	Owner string
}

// StaleGuard discards the results of fetches that completed after the
// screen moved on.
//
// Fetches are not cancelled: a result is simply rejected when its ticket is
// no longer the current one. The zero value is ready to use and safe for
// concurrent use.
type StaleGuard struct {
	mu      sync.Mutex
	current Ticket
}

// Begin starts a fetch for owner and makes it the current one. Every ticket
// issued before is now stale, even one for the same owner.
func (g *StaleGuard) Begin(owner string) Ticket {
	t := Ticket{ID: uuid.New(), Owner: owner}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = t
	return t
}

// Accept reports whether the result of t may still be applied.
func (g *StaleGuard) Accept(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return t.ID != uuid.Nil && t == g.current
}

// Owner returns the owner of the current fetch, empty if none started.
func (g *StaleGuard) Owner() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.Owner
}

// Apply runs apply with the result of t, unless t is stale. It reports
// whether apply was run.
//
// The check and apply happen under the guard lock, so a concurrent Begin
// cannot slip in between.
func (g *StaleGuard) Apply(t Ticket, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.ID == uuid.Nil || t != g.current {
		return false
	}
	apply()
	return true
}
