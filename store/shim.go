package store

import (
	"github.com/delaneyj/suspenseparty/atom"
	"github.com/delaneyj/suspenseparty/stage"
)

// UseAtomShim reproduces UseAtom's observable behavior using only the
// generic state and effect hooks. Two behavioral differences are part of
// the exercise and deliberately kept, not fixed:
//
//   - the subscription is registered by an effect, so it only exists after
//     the first committed frame; a change landing between the initial
//     snapshot and that commit is missed until the next notification;
//   - every notification re-renders, even when the freshly read snapshot
//     is reference-equal to the one already rendered.
//
// The subscription is scoped to the atom's identity: it is released on
// unmount and re-acquired if a different atom is passed.
func UseAtomShim[T any](ctx *stage.Ctx, a *atom.Atom[T]) T {
	snapshot, setSnapshot := stage.UseState(ctx, a.Get())
	stage.UseEffect(ctx, func() stage.Cleanup {
		unsubscribe := a.Subscribe(func() {
			setSnapshot(a.Get())
		})
		return stage.Cleanup(unsubscribe)
	}, a)
	return snapshot
}
