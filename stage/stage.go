package stage

import (
	"sync"
)

// OnErrorFunc receives render-time failures that are not suspensions:
// hook-order violations and panics raised by component functions.
type OnErrorFunc func(root string, err error)

// task is a unit of work executed by whichever goroutine currently drains
// the stage.
type task func()

// Stage is a cooperative render runtime. All state updates and renders
// funnel through a single drain loop: whichever goroutine posts work while
// the stage is idle becomes the drainer and runs renders, effects and
// commit callbacks until no work remains. Re-entrant posts (an effect
// setting state, a store notification arriving mid-drain) are queued and
// picked up by the active drainer before it exits. Hook slots are only
// ever touched by the drainer, so they need no locking of their own.
type Stage struct {
	qmu      sync.Mutex
	tasks    []task
	dirty    map[uint64]*Root
	order    []*Root
	flushing bool
	onError  OnErrorFunc
}

func New(onError OnErrorFunc) *Stage {
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Stage{
		dirty:   map[uint64]*Root{},
		onError: onError,
	}
}

// post queues fn and drains unless a drain is already active.
func (s *Stage) post(fn task) {
	s.qmu.Lock()
	s.tasks = append(s.tasks, fn)
	s.qmu.Unlock()
	s.flush()
}

// markDirty queues a re-render without starting a drain.
func (s *Stage) markDirty(r *Root) {
	s.qmu.Lock()
	if _, ok := s.dirty[r.id]; !ok {
		s.dirty[r.id] = r
		s.order = append(s.order, r)
	}
	s.qmu.Unlock()
}

// invalidate queues a re-render and drains unless a drain is already
// active.
func (s *Stage) invalidate(r *Root) {
	s.markDirty(r)
	s.flush()
}

// flush drains queued tasks, then dirty roots, until both are empty.
// Tasks run before renders so that every state update queued so far is
// applied before the frame that shows it.
func (s *Stage) flush() {
	s.qmu.Lock()
	if s.flushing {
		s.qmu.Unlock()
		return
	}
	s.flushing = true
	for {
		var fn task
		var r *Root
		switch {
		case len(s.tasks) > 0:
			fn = s.tasks[0]
			s.tasks = s.tasks[1:]
		case len(s.order) > 0:
			r = s.order[0]
			s.order = s.order[1:]
			delete(s.dirty, r.id)
		default:
			s.flushing = false
			s.qmu.Unlock()
			return
		}
		s.qmu.Unlock()

		if fn != nil {
			fn()
		} else {
			r.renderCommit()
		}

		s.qmu.Lock()
	}
}
