package future

import (
	"sync"
	"time"
)

// DefaultDelay is the latency used by the demo flows.
const DefaultDelay = time.Second

// Pending is a one-shot asynchronous computation. It resolves exactly once
// and never fails. Owners replace a Pending wholesale; it is never mutated
// in place. Discarding the last reference does not stop the timer, the
// resolution is simply unobserved.
type Pending[T any] struct {
	mu       sync.Mutex
	value    T
	resolved bool
	done     chan struct{}
	waiters  []func()
}

// Produce returns a Pending that resolves to value after delay, measured
// from call time.
func Produce[T any](value T, delay time.Duration) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	time.AfterFunc(delay, func() { p.resolve(value) })
	return p
}

// Resolved returns an already-resolved Pending. Useful in benchmarks and
// tests that don't want timers.
func Resolved[T any](value T) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	p.resolve(value)
	return p
}

func (p *Pending[T]) resolve(value T) {
	p.mu.Lock()
	if p.resolved {
		p.mu.Unlock()
		return
	}
	p.value = value
	p.resolved = true
	waiters := p.waiters
	p.waiters = nil
	p.mu.Unlock()

	close(p.done)
	for _, w := range waiters {
		w()
	}
}

// TryGet polls for the value without blocking.
func (p *Pending[T]) TryGet() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.resolved
}

// Done is closed once the value is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// OnResolve invokes fn once the value is available. If the value is
// already available, fn runs before OnResolve returns.
func (p *Pending[T]) OnResolve(fn func()) {
	p.mu.Lock()
	if !p.resolved {
		p.waiters = append(p.waiters, fn)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	fn()
}
