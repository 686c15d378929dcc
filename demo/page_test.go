package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/delaneyj/suspenseparty/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the page renders one labeled line per flow
func TestPageRendersAllSections(t *testing.T) {
	st := stage.New(nil)
	p := NewPage(st, 10*time.Millisecond)
	defer p.Unmount()

	out := p.Render()
	assert.Equal(t, "state: loading...\nstore: loading...\nstore (shim): loading...\n", out)

	require.Eventually(t, func() bool {
		return !strings.Contains(p.Render(), Fallback)
	}, time.Second, 5*time.Millisecond)

	lines := strings.Split(strings.TrimSuffix(p.Render(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "state: "))
	assert.True(t, strings.HasPrefix(lines[1], "store: "))
	assert.True(t, strings.HasPrefix(lines[2], "store (shim): "))
}

// RefreshAll de-emphasizes every flow at once
func TestPageRefreshAll(t *testing.T) {
	st := stage.New(nil)
	p := NewPage(st, 10*time.Millisecond)
	defer p.Unmount()

	require.Eventually(t, func() bool {
		return !strings.Contains(p.Render(), Fallback)
	}, time.Second, 5*time.Millisecond)

	p.RefreshAll()
	for _, f := range []*Flow{p.State, p.Native, p.Shim} {
		assert.Regexp(t, `^~\d\.\d\d~$`, f.Frame())
	}

	require.Eventually(t, func() bool {
		return !strings.Contains(p.Render(), "~")
	}, time.Second, 5*time.Millisecond)
	assert.NotContains(t, p.Render(), Fallback)
}
