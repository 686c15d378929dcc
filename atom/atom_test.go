package atom_test

import (
	"testing"

	"github.com/delaneyj/suspenseparty/atom"
	"github.com/stretchr/testify/assert"
)

// the last set value wins, no matter how many came before
func TestAtomLastSetWins(t *testing.T) {
	a := atom.New(0)
	assert.Equal(t, 0, a.Get())

	for i := 1; i <= 10; i++ {
		a.Set(i)
	}
	assert.Equal(t, 10, a.Get())
}

// every listener registered before a set is invoked exactly once per set
func TestAtomNotifiesOncePerSet(t *testing.T) {
	a := atom.New(0)
	calls := 0
	a.Subscribe(func() { calls++ })

	a.Set(1)
	assert.Equal(t, 1, calls)
	a.Set(2)
	assert.Equal(t, 2, calls)
}

// subscribing the same callback twice creates two independent registrations
func TestAtomDuplicateCallbackRegistrations(t *testing.T) {
	a := atom.New(0)
	calls := 0
	cb := func() { calls++ }
	a.Subscribe(cb)
	a.Subscribe(cb)
	assert.Equal(t, 2, a.Len())

	a.Set(1)
	assert.Equal(t, 2, calls)
}

// unsubscribe stops notifications and is a no-op the second time
func TestAtomUnsubscribeIdempotent(t *testing.T) {
	a := atom.New(0)
	calls := 0
	unsubscribe := a.Subscribe(func() { calls++ })

	a.Set(1)
	assert.Equal(t, 1, calls)

	unsubscribe()
	a.Set(2)
	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() { unsubscribe() })
	a.Set(3)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, a.Len())
}

// unsubscribing one of two registrations of the same callback keeps the other
func TestAtomUnsubscribeRemovesExactRegistration(t *testing.T) {
	a := atom.New(0)
	calls := 0
	cb := func() { calls++ }
	unsubscribe := a.Subscribe(cb)
	a.Subscribe(cb)

	unsubscribe()
	a.Set(1)
	assert.Equal(t, 1, calls)
}

// set fully commits before listeners run: get inside a listener sees the new value
func TestAtomSetCommitsBeforeNotify(t *testing.T) {
	a := atom.New(0)
	seen := -1
	a.Subscribe(func() { seen = a.Get() })

	a.Set(42)
	assert.Equal(t, 42, seen)
}

// listeners registered during a notification pass wait for the next set
func TestAtomNoReentrantGrowthDuringNotify(t *testing.T) {
	a := atom.New(0)
	lateCalls := 0
	a.Subscribe(func() {
		a.Subscribe(func() { lateCalls++ })
	})

	a.Set(1)
	assert.Equal(t, 0, lateCalls)

	a.Set(2)
	assert.Equal(t, 1, lateCalls)
}
