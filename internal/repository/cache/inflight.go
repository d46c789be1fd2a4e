package cache

import "sync/atomic"

// InFlightGuard marks sessions whose order submission has not resolved yet.
// Entries should live in a TTL cache so a crashed submission cannot lock a
// session forever.
type InFlightGuard struct {
	cch Claimer
	seq atomic.Uint64
}

func NewInFlightGuard(cch Claimer) *InFlightGuard {
	return &InFlightGuard{cch: cch}
}

// Acquire reports false when the session already has a submission in flight.
// The returned release only clears the mark this call placed, so a caller
// that outlived the TTL cannot free a later submission's mark.
func (g *InFlightGuard) Acquire(sessionID string) (release func(), ok bool) {
	token := g.seq.Add(1)
	if !g.cch.PutIfAbsent(sessionID, token) {
		return func() {}, false
	}
	return func() { g.cch.CompareAndDelete(sessionID, token) }, true
}
