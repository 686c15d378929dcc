package stage

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// RenderFunc renders one text frame of a component.
type RenderFunc func(ctx *Ctx) string

// Ctx carries the hook cursor for one render pass. Hooks must be called in
// the same order on every render of the same root.
type Ctx struct {
	root *Root
	slot int
}

// Root is one mounted component: its hook slots, its committed frame and
// its suspense fallback.
type Root struct {
	stage    *Stage
	id       uint64
	name     string
	fallback string
	fn       RenderFunc

	// drainer-owned
	slots            []any
	pendingEffects   []func()
	staleCount       int
	transitionRender bool
	unmounted        bool

	// guarded by stage.qmu
	frame      string
	startDepth int
	onCommit   func(string)
}

// Mount registers a component under name and renders it immediately. If
// the first render suspends, fallback is committed and the real frame
// follows on resolution. Names are assumed unique per stage.
func (s *Stage) Mount(name, fallback string, fn RenderFunc) *Root {
	r := &Root{
		stage:    s,
		id:       xxhash.Sum64String(name),
		name:     name,
		fallback: fallback,
		fn:       fn,
	}
	s.invalidate(r)
	return r
}

// Frame returns the latest committed frame.
func (r *Root) Frame() string {
	r.stage.qmu.Lock()
	defer r.stage.qmu.Unlock()
	return r.frame
}

// OnCommit registers fn to run after every commit with the new frame.
func (r *Root) OnCommit(fn func(string)) {
	r.stage.qmu.Lock()
	r.onCommit = fn
	r.stage.qmu.Unlock()
}

// Unmount tears the root down: effect cleanups run, store subscriptions
// are released, queued re-renders are dropped.
func (r *Root) Unmount() {
	r.stage.post(func() {
		if r.unmounted {
			return
		}
		r.unmounted = true
		for _, slot := range r.slots {
			if td, ok := slot.(interface{ teardown() }); ok {
				td.teardown()
			}
		}
	})
}

// renderCommit runs on the drainer goroutine.
func (r *Root) renderCommit() {
	if r.unmounted {
		return
	}
	for {
		frame, susp, err := r.tryRender()
		if err != nil {
			r.stage.onError(r.name, err)
			return
		}
		if susp != nil {
			// Suspended. Commit the fallback and resume on resolution.
			// Transition-flagged renders of already-revealed values never
			// reach this branch; see Use.
			r.commit(r.fallback)
			susp.onResolve(func() { r.stage.invalidate(r) })
			return
		}
		if r.transitionRender && r.staleCount == 0 {
			// The transition settled during this pass. Render once more so
			// UseTransition reports not-pending in the committed frame.
			r.transitionRender = false
			continue
		}
		r.commit(frame)
		r.runEffects()
		return
	}
}

func (r *Root) tryRender() (frame string, susp *suspension, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if sp, ok := rec.(*suspension); ok {
				susp = sp
				return
			}
			err = fmt.Errorf("render %s: %v", r.name, rec)
		}
	}()
	r.staleCount = 0
	r.pendingEffects = r.pendingEffects[:0]
	frame = r.fn(&Ctx{root: r})
	return
}

func (r *Root) commit(frame string) {
	r.stage.qmu.Lock()
	r.frame = frame
	cb := r.onCommit
	r.stage.qmu.Unlock()
	if cb != nil {
		cb(frame)
	}
}

func (r *Root) runEffects() {
	effects := r.pendingEffects
	r.pendingEffects = nil
	for _, fx := range effects {
		fx()
	}
}

func (r *Root) inStart() bool {
	r.stage.qmu.Lock()
	defer r.stage.qmu.Unlock()
	return r.startDepth > 0
}

// slotFor returns the hook slot at the current cursor position, creating
// it on the first pass that reaches it. A slot of the wrong type means the
// component called hooks in a different order than before; the resulting
// panic is routed to the stage's error handler.
func slotFor[S any](ctx *Ctx, init func() *S) *S {
	i := ctx.slot
	ctx.slot++
	if i < len(ctx.root.slots) {
		return ctx.root.slots[i].(*S)
	}
	s := init()
	ctx.root.slots = append(ctx.root.slots, s)
	return s
}
