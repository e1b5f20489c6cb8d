package reduce

import (
	"sync"
	"sync/atomic"
)

// A cell holds the shared running total. The two backends are
// interchangeable: lockedCell serializes adds behind a mutex,
// atomicCell uses a fetch-and-add. Which one a strategy picks only
// changes the synchronization discipline, never the result.
type cell interface {
	add(delta int64)
	load() int64
}

type lockedCell struct {
	mu sync.Mutex
	v  int64
}

func (c *lockedCell) add(delta int64) {
	c.mu.Lock()
	c.v += delta
	c.mu.Unlock()
}

func (c *lockedCell) load() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// atomicCell backs both ordering modes. Go's atomic operations carry
// sequentially consistent semantics, so the relaxed mode executes the
// same fetch-and-add; it stays a separate strategy row because the
// matrix reports each ordering mode on its own.
type atomicCell struct {
	v atomic.Int64
}

func (c *atomicCell) add(delta int64) { c.v.Add(delta) }

func (c *atomicCell) load() int64 { return c.v.Load() }
