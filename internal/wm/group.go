package wm

import (
	"errors"
	"fmt"

	"github.com/renn/tilewm/internal/geometry"
	"github.com/renn/tilewm/internal/layout"
)

// ErrUnknownLayout indicates a layout name that no group carries.
var ErrUnknownLayout = errors.New("wm: unknown layout")

// ListLayout is satisfied by layouts backed by a single ordered collection.
// Groups use it for window rearrangement and for splicing collections when
// workspaces merge.
type ListLayout interface {
	layout.Layout
	List() *layout.ClientList
}

// Group is a workspace: a named set of panes driven by one of several layout
// instances. Each group clones its own layout instances from the shared
// templates at construction, so collection state is never shared between
// groups.
//
// Group implements layout.Group; layouts call back into it to apply focus
// and to trigger re-layout. All methods run on the event loop goroutine.
type Group struct {
	name     string
	layouts  []layout.Layout
	current  int
	panes    []layout.Window
	floating []layout.Window
	focused  layout.Window
	screen   string
	rect     geometry.Rect
	visible  bool
	warp     bool
}

// NewGroup returns a group carrying an independent clone of every template
// layout. warp controls whether focus changes warp the cursor.
func NewGroup(name string, warp bool, templates []layout.Layout) *Group {
	g := &Group{name: name, warp: warp}
	for _, t := range templates {
		g.layouts = append(g.layouts, t.Clone(g))
	}
	return g
}

// Name implements layout.Group.
func (g *Group) Name() string { return g.name }

// ScreenName implements layout.Group. Empty while the group is hidden.
func (g *Group) ScreenName() string { return g.screen }

// Focus implements layout.Group: it records c as the group's focused window,
// notifies the active layout, and re-lays out so layouts that depend on
// focus (max) update visibility. warp is carried for callers that track
// cursor movement; the group itself only stores focus.
func (g *Group) Focus(c layout.Window, warp bool) {
	if c == nil {
		return
	}
	g.focused = c
	if !g.isFloating(c) {
		g.Layout().Focus(c)
	}
	g.LayoutAll()
}

// LayoutAll implements layout.Group: it re-computes geometry for every tiled
// window and re-asserts floating windows at their own rects. No-op while the
// group is hidden.
func (g *Group) LayoutAll() {
	if !g.visible || g.rect.Empty() {
		return
	}
	layout.Apply(g.Layout(), g.TiledWindows(), g.rect)
	for _, w := range g.floating {
		if p, ok := w.(*Pane); ok {
			p.Place(p.Rect())
		}
	}
}

// Layout returns the group's active layout instance.
func (g *Group) Layout() layout.Layout { return g.layouts[g.current] }

// LayoutName returns the active layout's name.
func (g *Group) LayoutName() string { return g.Layout().Name() }

// LayoutNames lists the names of the group's layouts in cycle order.
func (g *Group) LayoutNames() []string {
	names := make([]string, len(g.layouts))
	for i, l := range g.layouts {
		names[i] = l.Name()
	}
	return names
}

// SetLayout switches the active layout by name.
func (g *Group) SetLayout(name string) error {
	for i, l := range g.layouts {
		if l.Name() == name {
			g.switchLayout(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownLayout, name)
}

// NextLayout cycles to the following layout, wrapping.
func (g *Group) NextLayout() {
	g.switchLayout((g.current + 1) % len(g.layouts))
}

// PreviousLayout cycles to the preceding layout, wrapping.
func (g *Group) PreviousLayout() {
	g.switchLayout((g.current - 1 + len(g.layouts)) % len(g.layouts))
}

func (g *Group) switchLayout(i int) {
	if i == g.current {
		return
	}
	old := g.Layout()
	old.Blur()
	if g.visible {
		old.Hide()
		for _, w := range g.panes {
			w.Hide()
		}
	}
	g.current = i
	next := g.Layout()
	if g.focused != nil && !g.isFloating(g.focused) {
		next.Focus(g.focused)
	}
	if g.visible {
		next.Show(g.rect)
	}
	g.LayoutAll()
}

// AddPane registers p with every layout instance and focuses it.
func (g *Group) AddPane(p *Pane) {
	g.panes = append(g.panes, p)
	for _, l := range g.layouts {
		l.AddClient(p)
	}
	g.Focus(p, g.warp)
}

// RemovePane deregisters p from the group. Focus moves to the window the
// active layout nominates. Unknown panes are a no-op.
func (g *Group) RemovePane(p *Pane) {
	if !g.contains(p) {
		return
	}
	g.panes = removeWindow(g.panes, p)

	var next layout.Window
	if g.isFloating(p) {
		g.floating = removeWindow(g.floating, p)
		next = g.Layout().FocusFirst()
	} else {
		for i, l := range g.layouts {
			n := l.Remove(p)
			if i == g.current {
				next = n
			}
		}
	}
	p.Hide()

	if g.focused == p {
		g.focused = nil
		if next == nil && len(g.floating) > 0 {
			next = g.floating[0]
		}
		if next != nil {
			g.Focus(next, g.warp)
			return
		}
	}
	g.LayoutAll()
}

// Focused returns the group's focused window, nil when the group is empty.
func (g *Group) Focused() layout.Window { return g.focused }

// FocusNext moves focus one window forward in the group's cycle: through
// the tiled windows in layout order, then the floating windows, then back
// around. The layout's nil edge signal is what hands the cycle over to the
// floating set.
func (g *Group) FocusNext() {
	cur := g.focused
	var next layout.Window
	switch {
	case cur == nil:
		next = g.firstWindow()
	case g.isFloating(cur):
		i := indexOfWindow(g.floating, cur)
		if i >= 0 && i+1 < len(g.floating) {
			next = g.floating[i+1]
		} else {
			next = g.firstWindow()
		}
	default:
		n, err := g.Layout().FocusNext(cur)
		if err != nil {
			return
		}
		if n == nil {
			if len(g.floating) > 0 {
				n = g.floating[0]
			} else {
				n = g.Layout().FocusFirst()
			}
		}
		next = n
	}
	if next != nil {
		g.Focus(next, g.warp)
	}
}

// FocusPrevious moves focus one window back in the group's cycle, the
// mirror of FocusNext.
func (g *Group) FocusPrevious() {
	cur := g.focused
	var next layout.Window
	switch {
	case cur == nil:
		next = g.lastWindow()
	case g.isFloating(cur):
		i := indexOfWindow(g.floating, cur)
		if i > 0 {
			next = g.floating[i-1]
		} else {
			next = g.Layout().FocusLast()
			if next == nil {
				next = g.lastWindow()
			}
		}
	default:
		n, err := g.Layout().FocusPrevious(cur)
		if err != nil {
			return
		}
		if n == nil {
			if len(g.floating) > 0 {
				n = g.floating[len(g.floating)-1]
			} else {
				n = g.Layout().FocusLast()
			}
		}
		next = n
	}
	if next != nil {
		g.Focus(next, g.warp)
	}
}

func (g *Group) firstWindow() layout.Window {
	if w := g.Layout().FocusFirst(); w != nil {
		return w
	}
	if len(g.floating) > 0 {
		return g.floating[0]
	}
	return nil
}

func (g *Group) lastWindow() layout.Window {
	if len(g.floating) > 0 {
		return g.floating[len(g.floating)-1]
	}
	return g.Layout().FocusLast()
}

// ToggleFloating flips p between the tiled and floating sets. Floating
// windows keep their last placed geometry and are skipped by the layouts.
func (g *Group) ToggleFloating(p *Pane) {
	if !g.contains(p) {
		return
	}
	if g.isFloating(p) {
		g.floating = removeWindow(g.floating, p)
		for _, l := range g.layouts {
			l.AddClient(p)
		}
	} else {
		for _, l := range g.layouts {
			l.Remove(p)
		}
		g.floating = append(g.floating, p)
	}
	g.Focus(p, g.warp)
}

// Promote swaps the focused window with the first window in the active
// layout. Floating windows cannot be rearranged by a layout.
func (g *Group) Promote() error {
	if g.focused == nil {
		return nil
	}
	if g.isFloating(g.focused) {
		return layout.Unsupported("floating")
	}
	first := g.Layout().FocusFirst()
	if first == nil || first == g.focused {
		return nil
	}
	return g.Layout().Swap(g.focused, first)
}

// ShuffleUp moves the focused window one position back in the active
// layout's order, keeping it focused.
func (g *Group) ShuffleUp() error {
	return g.shuffle(func(l *layout.ClientList) { l.ShuffleUp(true) })
}

// ShuffleDown moves the focused window one position forward in the active
// layout's order, keeping it focused.
func (g *Group) ShuffleDown() error {
	return g.shuffle(func(l *layout.ClientList) { l.ShuffleDown(true) })
}

func (g *Group) shuffle(move func(*layout.ClientList)) error {
	if g.focused == nil {
		return nil
	}
	if g.isFloating(g.focused) {
		return layout.Unsupported("floating")
	}
	ll, ok := g.Layout().(ListLayout)
	if !ok {
		return layout.Unsupported(g.LayoutName())
	}
	move(ll.List())
	g.LayoutAll()
	return nil
}

// Show makes the group visible on the named screen and lays it out.
func (g *Group) Show(screen string, r geometry.Rect) {
	g.screen = screen
	g.rect = r
	g.visible = true
	g.Layout().Show(r)
	g.LayoutAll()
}

// Hide takes the group off screen. Window registration is untouched.
func (g *Group) Hide() {
	g.visible = false
	g.screen = ""
	g.Layout().Hide()
	for _, w := range g.panes {
		w.Hide()
	}
}

// Visible reports whether the group is currently shown.
func (g *Group) Visible() bool { return g.visible }

// Rect returns the screen region the group lays out into.
func (g *Group) Rect() geometry.Rect { return g.rect }

// Adopt moves every window of other into g. Tiled windows are spliced into
// each of g's layouts as one contiguous block, preserving other's order;
// floating windows are appended to g's floating set. other is left empty.
func (g *Group) Adopt(other *Group) {
	if other == nil || other == g {
		return
	}
	src, srcOK := other.Layout().(ListLayout)
	for _, l := range g.layouts {
		if dst, ok := l.(ListLayout); ok && srcOK {
			dst.List().Join(src.List(), 1)
			continue
		}
		for _, w := range other.TiledWindows() {
			l.AddClient(w)
		}
	}
	g.panes = append(g.panes, other.panes...)
	g.floating = append(g.floating, other.floating...)
	other.clear()
	if g.focused == nil {
		g.focused = g.firstWindow()
		if g.focused != nil && !g.isFloating(g.focused) {
			g.Layout().Focus(g.focused)
		}
	}
	g.LayoutAll()
}

func (g *Group) clear() {
	for _, w := range g.panes {
		if g.isFloating(w) {
			continue
		}
		for _, l := range g.layouts {
			l.Remove(w)
		}
	}
	g.panes = nil
	g.floating = nil
	g.focused = nil
}

// Windows returns every pane registered with the group, tiled and floating.
func (g *Group) Windows() []layout.Window {
	out := make([]layout.Window, len(g.panes))
	copy(out, g.panes)
	return out
}

// TiledWindows returns the active layout's windows in layout order.
func (g *Group) TiledWindows() []layout.Window {
	if ll, ok := g.Layout().(ListLayout); ok {
		return ll.List().Clients()
	}
	tiled := make([]layout.Window, 0, len(g.panes))
	for _, w := range g.panes {
		if !g.isFloating(w) {
			tiled = append(tiled, w)
		}
	}
	return tiled
}

// FloatingWindows returns the floating set in stacking order.
func (g *Group) FloatingWindows() []layout.Window {
	out := make([]layout.Window, len(g.floating))
	copy(out, g.floating)
	return out
}

// Empty reports whether the group holds no panes at all.
func (g *Group) Empty() bool { return len(g.panes) == 0 }

// Info returns the active layout's snapshot extended with group state.
func (g *Group) Info() layout.Info {
	info := g.Layout().Info()
	info["screen"] = g.screen
	info["layouts"] = g.LayoutNames()
	floating := make([]string, len(g.floating))
	for i, w := range g.floating {
		floating[i] = w.Name()
	}
	info["floating"] = floating
	return info
}

func (g *Group) contains(w layout.Window) bool {
	return indexOfWindow(g.panes, w) >= 0
}

func (g *Group) isFloating(w layout.Window) bool {
	return indexOfWindow(g.floating, w) >= 0
}

func indexOfWindow(ws []layout.Window, w layout.Window) int {
	for i, x := range ws {
		if x == w {
			return i
		}
	}
	return -1
}

func removeWindow(ws []layout.Window, w layout.Window) []layout.Window {
	i := indexOfWindow(ws, w)
	if i < 0 {
		return ws
	}
	return append(ws[:i], ws[i+1:]...)
}
