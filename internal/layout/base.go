package layout

import "github.com/renn/tilewm/internal/geometry"

// Base is the reusable core for layouts that maintain a single ClientList.
// It implements everything in Layout except Configure and Clone, which stay
// with the concrete layout. Embed it by value so each clone carries its own
// copy.
//
// A Base starts as an unattached template: group is nil until a concrete
// layout's Clone calls clone. Group() on a template panics — that is a
// construction-order bug, not a runtime condition.
type Base struct {
	name   string
	insert Position
	group  Group

	// Clients is the ordered window collection. Exposed so groups can
	// splice collections across layouts (workspace merge).
	Clients *ClientList
}

// NewBase returns an unattached layout core. insert is where AddClient
// places new windows relative to the current one.
func NewBase(name string, insert Position) Base {
	return Base{name: name, insert: insert, Clients: NewClientList()}
}

// Name returns the layout's configured name.
func (b *Base) Name() string { return b.name }

// Group returns the owning group. It panics when the layout has not been
// cloned onto a group yet.
func (b *Base) Group() Group {
	if b.group == nil {
		panic("layout: group accessed before clone")
	}
	return b.group
}

// Attached reports whether the layout has an owning group.
func (b *Base) Attached() bool { return b.group != nil }

// clone returns a copy of b attached to g with a fresh, empty ClientList.
// The name and insertion policy are shared configuration; the collection
// and the group reference are the per-clone state and are never shared.
func (b Base) clone(g Group) Base {
	b.group = g
	b.Clients = NewClientList()
	return b
}

// List returns the layout's client collection. Groups use it to rearrange
// windows and to splice collections when workspaces merge.
func (b *Base) List() *ClientList { return b.Clients }

// AddClient registers c in the collection with no visibility side effect.
func (b *Base) AddClient(c Window) {
	b.Clients.Add(c, 0, b.insert)
}

// Remove deregisters c and returns the window that should gain focus next.
func (b *Base) Remove(c Window) Window {
	return b.Clients.Remove(c)
}

// Focus marks c as the collection's current window.
func (b *Base) Focus(c Window) {
	_ = b.Clients.SetCurrent(c)
}

// Blur implements the Layout hook as a no-op.
func (b *Base) Blur() {}

// Show implements the Layout hook as a no-op.
func (b *Base) Show(geometry.Rect) {}

// Hide implements the Layout hook as a no-op.
func (b *Base) Hide() {}

// Finalize implements the Layout hook as a no-op.
func (b *Base) Finalize() {}

// FocusFirst returns the first window, or nil if the layout is empty.
func (b *Base) FocusFirst() Window { return b.Clients.FocusFirst() }

// FocusLast returns the last window, or nil if the layout is empty.
func (b *Base) FocusLast() Window { return b.Clients.FocusLast() }

// FocusNext returns the window after c, nil at the layout's edge.
func (b *Base) FocusNext(c Window) (Window, error) {
	return b.Clients.FocusNext(c)
}

// FocusPrevious returns the window before c, nil at the layout's edge.
func (b *Base) FocusPrevious(c Window) (Window, error) {
	return b.Clients.FocusPrevious(c)
}

// Next moves the acted-upon focus one window forward, wrapping to the
// first window past the end, and applies it through the owning group.
// No-op when the layout holds no windows.
func (b *Base) Next() {
	cur := b.Clients.Current()
	if cur == nil {
		return
	}
	next, err := b.Clients.FocusNext(cur)
	if err != nil {
		return
	}
	if next == nil {
		next = b.Clients.FocusFirst()
	}
	b.Group().Focus(next, true)
}

// Previous moves the acted-upon focus one window back, wrapping to the
// last window before the start, and applies it through the owning group.
func (b *Base) Previous() {
	cur := b.Clients.Current()
	if cur == nil {
		return
	}
	prev, err := b.Clients.FocusPrevious(cur)
	if err != nil {
		return
	}
	if prev == nil {
		prev = b.Clients.FocusLast()
	}
	b.Group().Focus(prev, true)
}

// Swap exchanges c1 and c2, moves focus onto c1, and triggers a full
// re-layout of the group. Data mutation happens in the collection; the
// focus side effect is applied explicitly through the group afterwards.
func (b *Base) Swap(c1, c2 Window) error {
	if err := b.Clients.Swap(c1, c2, 1); err != nil {
		return err
	}
	g := b.Group()
	g.LayoutAll()
	g.Focus(c1, false)
	return nil
}

// Windows returns the layout's windows in order.
func (b *Base) Windows() []Window {
	return b.Clients.Clients()
}

// Info returns the layout snapshot merged with the collection state.
func (b *Base) Info() Info {
	info := Info{
		"name":  b.name,
		"group": nil,
	}
	if b.group != nil {
		info["group"] = b.group.Name()
	}
	for k, v := range b.Clients.Info() {
		info[k] = v
	}
	return info
}
