package store

import (
	"github.com/delaneyj/suspenseparty/atom"
	"github.com/delaneyj/suspenseparty/stage"
)

// UseAtom is the native snapshot adapter: it forwards the atom's
// subscribe/get contract straight into the stage's external-store
// primitive and adds no logic of its own. It inherits the primitive's
// guarantees: subscription before first commit, tear-free snapshots, and
// re-renders only on reference-unequal snapshots.
func UseAtom[T comparable](ctx *stage.Ctx, a *atom.Atom[T]) T {
	return stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get)
}
