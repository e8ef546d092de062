package state

import "sync/atomic"

// Clock counts drawing revisions. The canvas compares revisions to skip
// rasterizing an unchanged drawing; reads may come from the render thread.
type Clock struct {
	counter atomic.Uint64
}

// Tick advances the clock and returns the new revision.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the current revision.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
