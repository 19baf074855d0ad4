package suggest

import "sync/atomic"

// Generation issues increasing request numbers. A response is applied only
// if it carries the number of the most recent request, so results of
// superseded requests are dropped no matter when they arrive.
type Generation struct {
	n atomic.Uint64
}

// Next starts a new request and returns its generation.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current returns the latest issued generation, 0 if none.
func (g *Generation) Current() uint64 {
	return g.n.Load()
}

// IsCurrent reports whether gen is still the latest request.
func (g *Generation) IsCurrent(gen uint64) bool {
	return gen != 0 && gen == g.n.Load()
}
