package layout

import "github.com/renn/tilewm/internal/geometry"

// stubWindow records placement calls so tests can assert on geometry and
// visibility without a renderer.
type stubWindow struct {
	name   string
	rect   geometry.Rect
	hidden bool
	placed int
}

func newStubWindow(name string) *stubWindow {
	return &stubWindow{name: name}
}

func (w *stubWindow) Name() string { return w.name }

func (w *stubWindow) Place(r geometry.Rect) {
	w.rect = r
	w.hidden = false
	w.placed++
}

func (w *stubWindow) Hide() { w.hidden = true }

// stubGroup records the focus and re-layout primitives a layout invokes.
type stubGroup struct {
	name       string
	focused    []Window
	warps      []bool
	layoutAlls int
}

func newStubGroup(name string) *stubGroup {
	return &stubGroup{name: name}
}

func (g *stubGroup) Name() string { return g.name }

func (g *stubGroup) Focus(c Window, warp bool) {
	g.focused = append(g.focused, c)
	g.warps = append(g.warps, warp)
}

func (g *stubGroup) LayoutAll() { g.layoutAlls++ }

func (g *stubGroup) ScreenName() string { return "" }

func (g *stubGroup) lastFocused() Window {
	if len(g.focused) == 0 {
		return nil
	}
	return g.focused[len(g.focused)-1]
}

// listOf builds a ClientList from windows in order, cursor on the first.
func listOf(windows ...Window) *ClientList {
	l := NewClientList()
	for _, w := range windows {
		l.Append(w)
	}
	if len(windows) > 0 {
		l.SetCurrentIndex(0)
	}
	return l
}

func names(windows []Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.Name()
	}
	return out
}
