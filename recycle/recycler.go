package recycle

import (
	"sync"

	rlv "github.com/saggiyogesh/recyclerlistview"
)

// Handle is an opaque reference to a view held by a Recycler.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Factory builds a fresh view instance for a type with no idle views.
type Factory func(t rlv.ViewType) any

// Resetter is optionally implemented by views that need cleanup before reuse.
type Resetter interface {
	Reset()
}

// Stats describes recycler activity.
type Stats struct {
	Created uint64 // views built by the factory
	Reused  uint64 // acquisitions served from an idle list
	Active  int    // views currently checked out
	Idle    int    // views awaiting reuse
}

type entry struct {
	value  any
	t      rlv.ViewType
	active bool
	valid  bool
}

// Recycler pools view instances by view type.
type Recycler struct {
	factory Factory
	entries []entry
	free    []Handle
	idle    map[rlv.ViewType][]Handle
	created uint64
	reused  uint64
	mu      sync.Mutex
	closed  bool
}

// NewRecycler creates a recycler that builds cold views with factory.
func NewRecycler(factory Factory) *Recycler {
	return &Recycler{
		factory: factory,
		entries: make([]entry, 0, 64),
		idle:    make(map[rlv.ViewType][]Handle),
	}
}

// Acquire returns a view for the given type, preferring an idle view of the
// same type over building a new one. Returns handle 0 after Close.
func (r *Recycler) Acquire(t rlv.ViewType) (Handle, any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, nil
	}

	if stack := r.idle[t]; len(stack) > 0 {
		h := stack[len(stack)-1]
		r.idle[t] = stack[:len(stack)-1]
		e := &r.entries[h-1]
		e.active = true
		r.reused++
		return h, e.value
	}

	e := entry{
		value:  r.factory(t),
		t:      t,
		active: true,
		valid:  true,
	}
	r.created++

	if len(r.free) > 0 {
		h := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		r.entries[h-1] = e
		return h, e.value
	}

	r.entries = append(r.entries, e)
	return Handle(len(r.entries)), e.value
}

// Release returns a checked-out view to its type's idle list, resetting it
// first when it implements Resetter. Reports whether the handle was active.
func (r *Recycler) Release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(h)
	if !ok || !e.active {
		return false
	}

	if res, ok := e.value.(Resetter); ok {
		res.Reset()
	}
	e.active = false
	r.idle[e.t] = append(r.idle[e.t], h)
	return true
}

// Discard removes a view entirely instead of idling it, freeing its slot for
// a future acquisition. Reports whether the handle was valid.
func (r *Recycler) Discard(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(h)
	if !ok {
		return false
	}
	if !e.active {
		r.removeIdle(e.t, h)
	}
	e.valid = false
	e.value = nil
	r.free = append(r.free, h)
	return true
}

// Get retrieves a checked-out view by handle.
func (r *Recycler) Get(h Handle) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(h)
	if !ok || !e.active {
		return nil, false
	}
	return e.value, true
}

// Stats returns a snapshot of recycler activity.
func (r *Recycler) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{Created: r.created, Reused: r.reused}
	for _, e := range r.entries {
		if !e.valid {
			continue
		}
		if e.active {
			s.Active++
		} else {
			s.Idle++
		}
	}
	return s
}

// Clear discards all idle views, keeping checked-out views alive.
func (r *Recycler) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for t, stack := range r.idle {
		for _, h := range stack {
			e := &r.entries[h-1]
			e.valid = false
			e.value = nil
			r.free = append(r.free, h)
		}
		delete(r.idle, t)
	}
}

// Close releases everything and stops accepting operations.
func (r *Recycler) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.entries = nil
	r.free = nil
	r.idle = nil
	return nil
}

func (r *Recycler) lookup(h Handle) (*entry, bool) {
	if h == 0 || r.closed || int(h) > len(r.entries) {
		return nil, false
	}
	e := &r.entries[h-1]
	if !e.valid {
		return nil, false
	}
	return e, true
}

func (r *Recycler) removeIdle(t rlv.ViewType, h Handle) {
	stack := r.idle[t]
	for i, cand := range stack {
		if cand == h {
			r.idle[t] = append(stack[:i], stack[i+1:]...)
			return
		}
	}
}
