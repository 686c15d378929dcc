package stage_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/delaneyj/suspenseparty/atom"
	"github.com/delaneyj/suspenseparty/future"
	"github.com/delaneyj/suspenseparty/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a notification with an unchanged snapshot does not re-render
func TestSyncStoreEqualSnapshotBailsOut(t *testing.T) {
	st := stage.New(nil)
	a := atom.New("x")
	renders := 0
	root := st.Mount("bail", "loading", func(ctx *stage.Ctx) string {
		renders++
		return stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get)
	})
	require.Equal(t, "x", root.Frame())
	base := renders

	a.Set("x")
	assert.Equal(t, base, renders, "reference-equal snapshot must not re-render")

	a.Set("y")
	assert.Equal(t, base+1, renders)
	assert.Equal(t, "y", root.Frame())
}

// the store is subscribed during the first render and released on unmount
func TestSyncStoreSubscriptionLifetime(t *testing.T) {
	st := stage.New(nil)
	a := atom.New(1)
	root := st.Mount("lifetime", "loading", func(ctx *stage.Ctx) string {
		return fmt.Sprint(stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get))
	})
	assert.Equal(t, 1, a.Len())

	root.Unmount()
	assert.Equal(t, 0, a.Len())
}

// a change landing while the root is still suspended is delivered: the
// subscription exists before the first commit, so nothing slips through
func TestSyncStoreNoMissedUpdateWindow(t *testing.T) {
	st := stage.New(nil)
	a := atom.New(future.Produce(1, 50*time.Millisecond))
	root := st.Mount("window", "loading", func(ctx *stage.Ctx) string {
		p := stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get)
		return fmt.Sprint(stage.Use(ctx, p))
	})
	require.Equal(t, "loading", root.Frame())
	require.Equal(t, 1, a.Len(), "subscription must exist while suspended")

	a.Set(future.Resolved(2))
	assert.Equal(t, "2", root.Frame())
}

// two reads of the same store never disagree within a committed frame
func TestSyncStoreTearFreeReads(t *testing.T) {
	st := stage.New(nil)
	a := atom.New(10)
	var frames []string
	root := st.Mount("tear-free", "loading", func(ctx *stage.Ctx) string {
		first := stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get)
		second := stage.UseSyncExternalStore(ctx, a.Subscribe, a.Get)
		return fmt.Sprintf("%d/%d", first, second)
	})
	root.OnCommit(func(frame string) { frames = append(frames, frame) })
	require.Equal(t, "10/10", root.Frame())

	a.Set(11)
	a.Set(12)
	assert.Equal(t, "12/12", root.Frame())
	for _, f := range frames {
		var x, y int
		_, err := fmt.Sscanf(f, "%d/%d", &x, &y)
		require.NoError(t, err)
		assert.Equal(t, x, y, "torn frame %q", f)
	}
}
