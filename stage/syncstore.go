package stage

type storeSlot[S comparable] struct {
	snapshot S
	unsub    func()
}

func (s *storeSlot[S]) teardown() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// UseSyncExternalStore bridges an external subscribe/get pair into the
// render loop. The store is subscribed exactly once, during the first
// render pass, so no change can slip between the initial snapshot and the
// subscription. Renders return the snapshot taken at notification time,
// never a live get(), so every read within one pass sees the same value.
// A notification only re-renders the root when the fresh snapshot differs
// from the one already rendered. The subscription is released on unmount.
func UseSyncExternalStore[S comparable](ctx *Ctx, subscribe func(func()) func(), get func() S) S {
	r := ctx.root
	slot := slotFor(ctx, func() *storeSlot[S] {
		s := &storeSlot[S]{snapshot: get()}
		s.unsub = subscribe(func() {
			transition := r.inStart()
			r.stage.post(func() {
				if r.unmounted {
					return
				}
				next := get()
				if next == s.snapshot {
					return
				}
				s.snapshot = next
				if transition {
					r.transitionRender = true
				}
				r.stage.markDirty(r)
			})
		})
		return s
	})
	return slot.snapshot
}
