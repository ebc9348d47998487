package layout

import "github.com/renn/tilewm/internal/geometry"

// Max is the simplest tiling layout: the current window fills the whole
// screen region and every other window is hidden. Focus cycling is the
// only way to bring another window forward.
type Max struct {
	Base
}

// NewMax returns a Max template. New windows are inserted right after the
// current one so cycling forward visits them next.
func NewMax() *Max {
	return &Max{Base: NewBase("max", PositionAfterCurrent)}
}

// Clone returns an independent Max attached to g.
func (m *Max) Clone(g Group) Layout {
	return &Max{Base: m.Base.clone(g)}
}

// Configure places c over the full screen region when it is the current
// window and hides it otherwise.
func (m *Max) Configure(c Window, r geometry.Rect) {
	if m.Clients.Current() == c {
		c.Place(r)
		return
	}
	c.Hide()
}
