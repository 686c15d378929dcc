package atom

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// registration ties one Subscribe call to one callback. Subscribing the
// same callback twice creates two independent registrations, each invoked
// once per Set.
type registration struct {
	cb func()
}

// Atom holds a single current value and a set of change listeners.
// Get and Set are synchronous and total. Set replaces the value wholesale
// and then notifies every listener registered at the start of the
// notification pass, in unspecified order. Listeners registered during a
// pass are not notified until the next Set.
type Atom[T any] struct {
	mu    sync.Mutex
	value T
	regs  mapset.Set[*registration]
}

func New[T any](initial T) *Atom[T] {
	return &Atom[T]{
		value: initial,
		regs:  mapset.NewSet[*registration](),
	}
}

// Get returns the value current at call time. No side effects.
func (a *Atom[T]) Get() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Set replaces the current value and notifies listeners. The value is
// fully committed before the first listener runs, so Get inside a listener
// observes the new value.
func (a *Atom[T]) Set(v T) {
	a.mu.Lock()
	a.value = v
	regs := a.regs.ToSlice()
	a.mu.Unlock()

	for _, r := range regs {
		r.cb()
	}
}

// Subscribe registers cb and returns a function that removes exactly that
// registration. Calling the returned function more than once is a no-op.
func (a *Atom[T]) Subscribe(cb func()) (unsubscribe func()) {
	r := &registration{cb: cb}
	a.mu.Lock()
	a.regs.Add(r)
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.regs.Remove(r)
	}
}

// Len reports the current registration count.
func (a *Atom[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.regs.Cardinality()
}
