package demo

import (
	"time"

	"github.com/delaneyj/suspenseparty/demo/templates"
	"github.com/delaneyj/suspenseparty/stage"
)

// Page composes the three parallel flows. Each shows the same display
// contract fed by a different value-supply strategy.
type Page struct {
	State  *Flow
	Native *Flow
	Shim   *Flow
}

func NewPage(st *stage.Stage, delay time.Duration) *Page {
	return &Page{
		State:  NewStateFlow(st, delay),
		Native: NewNativeStoreFlow(st, delay),
		Shim:   NewShimStoreFlow(st, delay),
	}
}

// Render returns the current page as text, one line per flow.
func (p *Page) Render() string {
	return templates.Page([]templates.Section{
		{Label: "state", Frame: p.State.Frame()},
		{Label: "store", Frame: p.Native.Frame()},
		{Label: "store (shim)", Frame: p.Shim.Frame()},
	})
}

// RefreshAll presses every flow's refresh button.
func (p *Page) RefreshAll() {
	p.State.Refresh()
	p.Native.Refresh()
	p.Shim.Refresh()
}

func (p *Page) Unmount() {
	p.State.Unmount()
	p.Native.Unmount()
	p.Shim.Unmount()
}
