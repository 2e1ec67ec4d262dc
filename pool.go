package motion

import "sync"

// PoolPolicy selects how a Pool retains returned instances.
type PoolPolicy uint8

const (
	// PoolEager keeps returned instances on a bounded free list. Nothing
	// is ever reclaimed below the bound; instances beyond it are dropped.
	PoolEager PoolPolicy = iota
	// PoolWeak parks returned instances in a sync.Pool, leaving them
	// eligible for reclamation between GC cycles. No retention guarantee.
	PoolWeak
)

// Pool is a reuse cache for a single type, parameterized by an allocator
// and a reset hook. Take never returns nil: it allocates when the cache is
// empty. Put sanitizes the instance through the reset hook before making
// it available again, so no field leaks across reuses. There is no
// ordering guarantee on which previously returned instance Take hands
// back.
type Pool[T any] struct {
	mu     sync.Mutex
	unsync bool

	policy PoolPolicy
	bound  int
	free   []*T
	weak   sync.Pool

	alloc func() *T
	reset func(*T)
}

// NewPool creates a pool. bound caps the eager free list and is ignored
// under PoolWeak. unsync drops the internal lock for single-goroutine
// callers.
func NewPool[T any](policy PoolPolicy, bound int, unsync bool, alloc func() *T, reset func(*T)) *Pool[T] {
	p := &Pool[T]{
		policy: policy,
		bound:  bound,
		unsync: unsync,
		alloc:  alloc,
		reset:  reset,
	}
	if policy == PoolWeak {
		p.weak.New = func() any { return alloc() }
	} else {
		p.free = make([]*T, 0, bound)
	}
	return p
}

// Take returns a reused instance, or a fresh one when the cache is empty.
func (p *Pool[T]) Take() *T {
	if p.policy == PoolWeak {
		return p.weak.Get().(*T)
	}
	if !p.unsync {
		p.mu.Lock()
	}
	var x *T
	if n := len(p.free); n > 0 {
		x = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	}
	if !p.unsync {
		p.mu.Unlock()
	}
	if x == nil {
		x = p.alloc()
	}
	return x
}

// Put sanitizes x and returns it to the cache. The caller must not use x
// afterwards.
func (p *Pool[T]) Put(x *T) {
	if x == nil {
		return
	}
	p.reset(x)
	if p.policy == PoolWeak {
		p.weak.Put(x)
		return
	}
	if !p.unsync {
		p.mu.Lock()
	}
	if len(p.free) < p.bound {
		p.free = append(p.free, x)
	}
	if !p.unsync {
		p.mu.Unlock()
	}
}
