package stage

import "github.com/delaneyj/suspenseparty/future"

// suspension is the sentinel thrown when a render reads an unresolved
// pending value it cannot paper over. The render driver recovers it,
// commits the root's fallback, and re-renders on resolution.
type suspension struct {
	onResolve func(func())
}

type useSlot[T any] struct {
	value    T
	revealed bool
}

// Use unwraps a pending value. A resolved pending returns its value. An
// unresolved pending suspends the render, showing the root's fallback,
// unless the slot has revealed a value before and the current render is
// transition-flagged: then the previous value is returned, UseTransition
// keeps reporting pending, and a re-render is queued for resolution.
// Replacing a revealed pending outside a transition suspends again; only
// the transition path avoids the fallback.
func Use[T any](ctx *Ctx, p *future.Pending[T]) T {
	slot := slotFor(ctx, func() *useSlot[T] { return &useSlot[T]{} })
	if v, ok := p.TryGet(); ok {
		slot.value = v
		slot.revealed = true
		return v
	}
	r := ctx.root
	if slot.revealed && r.transitionRender {
		r.staleCount++
		p.OnResolve(func() { r.stage.invalidate(r) })
		return slot.value
	}
	panic(&suspension{onResolve: p.OnResolve})
}
