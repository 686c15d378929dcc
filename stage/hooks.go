package stage

// Cleanup undoes whatever an effect set up. Cleanups run before the effect
// re-runs and on unmount.
type Cleanup func()

type stateSlot[T any] struct {
	value T
}

// UseState returns the slot's current value and a setter. The setter
// always schedules a re-render; there is no equality bail-out. Snapshot
// deduplication is UseSyncExternalStore's job, and the shim store adapter
// depends on unconditional re-renders.
func UseState[T any](ctx *Ctx, initial T) (T, func(T)) {
	return UseStateLazy(ctx, func() T { return initial })
}

// UseStateLazy is UseState with an initializer that only runs on the first
// render. Use it when constructing the initial value has side effects,
// like starting a timer.
func UseStateLazy[T any](ctx *Ctx, initial func() T) (T, func(T)) {
	r := ctx.root
	slot := slotFor(ctx, func() *stateSlot[T] {
		return &stateSlot[T]{value: initial()}
	})
	set := func(v T) {
		transition := r.inStart()
		r.stage.post(func() {
			if r.unmounted {
				return
			}
			slot.value = v
			if transition {
				r.transitionRender = true
			}
			r.stage.markDirty(r)
		})
	}
	return slot.value, set
}

type effectSlot struct {
	deps    []any
	cleanup Cleanup
	ran     bool
}

func (s *effectSlot) teardown() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// UseEffect schedules fn to run after the frame it was rendered in
// commits, and again whenever deps change between committed renders.
// Suspended renders never run their effects. fn may return a Cleanup.
func UseEffect(ctx *Ctx, fn func() Cleanup, deps ...any) {
	slot := slotFor(ctx, func() *effectSlot { return &effectSlot{} })
	if slot.ran && depsEqual(slot.deps, deps) {
		return
	}
	// ran and deps are recorded when the effect executes, not here: a
	// suspended render drops its queued effects, and they must be queued
	// again by the render that finally commits.
	ctx.root.pendingEffects = append(ctx.root.pendingEffects, func() {
		slot.ran = true
		slot.deps = deps
		if slot.cleanup != nil {
			slot.cleanup()
		}
		slot.cleanup = fn()
	})
}

func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// UseTransition exposes transition marking. State updates made inside
// start are low-priority: if a render they trigger would suspend on an
// already-revealed value, the previous value stays rendered and isPending
// reports true until the replacement resolves. Only the initial mount of
// a root may show its fallback through this path.
func UseTransition(ctx *Ctx) (isPending bool, start func(func())) {
	r := ctx.root
	start = func(fn func()) {
		r.stage.qmu.Lock()
		r.startDepth++
		r.stage.qmu.Unlock()
		defer func() {
			r.stage.qmu.Lock()
			r.startDepth--
			r.stage.qmu.Unlock()
		}()
		fn()
	}
	return r.transitionRender, start
}
