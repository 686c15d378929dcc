package demo

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/delaneyj/suspenseparty/atom"
	"github.com/delaneyj/suspenseparty/future"
	"github.com/delaneyj/suspenseparty/stage"
	"github.com/delaneyj/suspenseparty/store"
)

// Fallback is the frame committed while a flow's very first value is in
// flight. It never reappears for refreshes made through Refresh.
const Fallback = "loading..."

// Flow is one example wiring of a delayed random number to a display
// component. Refresh produces a replacement through the transition path:
// the previous number stays visible, de-emphasized with ~ markers, until
// the new one resolves.
type Flow struct {
	root *stage.Root

	mu      sync.Mutex
	refresh func()
}

func (f *Flow) Frame() string { return f.root.Frame() }

func (f *Flow) Unmount() { f.root.Unmount() }

// Refresh simulates the page's refresh button.
func (f *Flow) Refresh() {
	f.mu.Lock()
	refresh := f.refresh
	f.mu.Unlock()
	if refresh != nil {
		refresh()
	}
}

// setRefresh is called during render; the captured closure holds the
// latest transition start and setter.
func (f *Flow) setRefresh(fn func()) {
	f.mu.Lock()
	f.refresh = fn
	f.mu.Unlock()
}

func produce(delay time.Duration) *future.Pending[float64] {
	return future.Produce(rand.Float64(), delay)
}

func display(n float64, pending bool) string {
	if pending {
		return fmt.Sprintf("~%.2f~", n)
	}
	return fmt.Sprintf("%.2f", n)
}

// NewStateFlow holds the pending value in plain component state.
func NewStateFlow(st *stage.Stage, delay time.Duration) *Flow {
	f := &Flow{}
	f.root = st.Mount("state", Fallback, func(ctx *stage.Ctx) string {
		pending, setPending := stage.UseStateLazy(ctx, func() *future.Pending[float64] {
			return produce(delay)
		})
		isPending, start := stage.UseTransition(ctx)
		f.setRefresh(func() {
			start(func() { setPending(produce(delay)) })
		})
		return display(stage.Use(ctx, pending), isPending)
	})
	return f
}

// NewNativeStoreFlow holds the pending value in an Atom consumed through
// the native snapshot adapter. The atom lives in a lazy state slot, so its
// lifetime is scoped to this mount.
func NewNativeStoreFlow(st *stage.Stage, delay time.Duration) *Flow {
	f := &Flow{}
	f.root = st.Mount("native-store", Fallback, func(ctx *stage.Ctx) string {
		a, _ := stage.UseStateLazy(ctx, func() *atom.Atom[*future.Pending[float64]] {
			return atom.New(produce(delay))
		})
		isPending, start := stage.UseTransition(ctx)
		f.setRefresh(func() {
			start(func() { a.Set(produce(delay)) })
		})
		return display(stage.Use(ctx, store.UseAtom(ctx, a)), isPending)
	})
	return f
}

// NewShimStoreFlow is NewNativeStoreFlow with the hand-rolled adapter.
func NewShimStoreFlow(st *stage.Stage, delay time.Duration) *Flow {
	f := &Flow{}
	f.root = st.Mount("shim-store", Fallback, func(ctx *stage.Ctx) string {
		a, _ := stage.UseStateLazy(ctx, func() *atom.Atom[*future.Pending[float64]] {
			return atom.New(produce(delay))
		})
		isPending, start := stage.UseTransition(ctx)
		f.setRefresh(func() {
			start(func() { a.Set(produce(delay)) })
		})
		return display(stage.Use(ctx, store.UseAtomShim(ctx, a)), isPending)
	})
	return f
}
