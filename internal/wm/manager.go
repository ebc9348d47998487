package wm

import (
	"errors"
	"fmt"

	"github.com/renn/tilewm/internal/geometry"
	"github.com/renn/tilewm/internal/layout"
)

// ErrUnknownGroup indicates a group name the manager does not carry.
var ErrUnknownGroup = errors.New("wm: unknown group")

// Manager owns the ordered set of groups and the single screen they share.
// Exactly one group is active (visible) at a time; switching hides the old
// group and shows the new one into the manager's current screen region.
//
// The manager is driven from the event loop goroutine only.
type Manager struct {
	groups []*Group
	active int
	screen string
	rect   geometry.Rect
	seq    int
}

// NewManager builds one group per name, each with its own clones of the
// template layouts. The first group starts active but nothing is shown
// until Resize supplies a screen region.
func NewManager(screen string, warp bool, groupNames []string, templates []layout.Layout) *Manager {
	m := &Manager{screen: screen}
	for _, name := range groupNames {
		m.groups = append(m.groups, NewGroup(name, warp, templates))
	}
	return m
}

// Resize updates the screen region and re-shows the active group into it.
func (m *Manager) Resize(r geometry.Rect) {
	m.rect = r
	if g := m.ActiveGroup(); g != nil {
		g.Show(m.screen, r)
	}
}

// Rect returns the current screen region.
func (m *Manager) Rect() geometry.Rect { return m.rect }

// ActiveGroup returns the visible group, nil when the manager has none.
func (m *Manager) ActiveGroup() *Group {
	if len(m.groups) == 0 {
		return nil
	}
	return m.groups[m.active]
}

// Groups returns the manager's groups in order.
func (m *Manager) Groups() []*Group {
	out := make([]*Group, len(m.groups))
	copy(out, m.groups)
	return out
}

// Group returns the named group.
func (m *Manager) Group(name string) (*Group, error) {
	for _, g := range m.groups {
		if g.name == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
}

// Activate switches the visible group by name.
func (m *Manager) Activate(name string) error {
	for i, g := range m.groups {
		if g.name == name {
			m.activate(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownGroup, name)
}

// NextGroup cycles to the following group, wrapping.
func (m *Manager) NextGroup() {
	if len(m.groups) > 1 {
		m.activate((m.active + 1) % len(m.groups))
	}
}

// PreviousGroup cycles to the preceding group, wrapping.
func (m *Manager) PreviousGroup() {
	if len(m.groups) > 1 {
		m.activate((m.active - 1 + len(m.groups)) % len(m.groups))
	}
}

func (m *Manager) activate(i int) {
	if i == m.active {
		return
	}
	old := m.ActiveGroup()
	old.Layout().Blur()
	old.Hide()
	m.active = i
	m.ActiveGroup().Show(m.screen, m.rect)
}

// SpawnPane creates a pane in the active group. An empty title gets a
// generated one.
func (m *Manager) SpawnPane(title string) *Pane {
	g := m.ActiveGroup()
	if g == nil {
		return nil
	}
	m.seq++
	if title == "" {
		title = fmt.Sprintf("pane-%d", m.seq)
	}
	p := NewPane(title)
	g.AddPane(p)
	return p
}

// CloseFocused removes the active group's focused pane and returns it, nil
// when nothing is focused.
func (m *Manager) CloseFocused() *Pane {
	g := m.ActiveGroup()
	if g == nil || g.Focused() == nil {
		return nil
	}
	p, ok := g.Focused().(*Pane)
	if !ok {
		return nil
	}
	g.RemovePane(p)
	return p
}

// MoveFocusedTo sends the active group's focused pane to the named group.
// The pane keeps its identity; it is hidden until its new group is shown.
func (m *Manager) MoveFocusedTo(name string) error {
	dst, err := m.Group(name)
	if err != nil {
		return err
	}
	src := m.ActiveGroup()
	if src == nil || src == dst || src.Focused() == nil {
		return nil
	}
	p, ok := src.Focused().(*Pane)
	if !ok {
		return nil
	}
	src.RemovePane(p)
	dst.AddPane(p)
	return nil
}

// Merge moves every pane from the src group into the dst group as one
// contiguous block and leaves src empty. When src was active, dst becomes
// active.
func (m *Manager) Merge(src, dst string) error {
	if src == dst {
		return nil
	}
	sg, err := m.Group(src)
	if err != nil {
		return err
	}
	dg, err := m.Group(dst)
	if err != nil {
		return err
	}
	wasActive := sg == m.ActiveGroup()
	if wasActive {
		if err := m.Activate(dst); err != nil {
			return err
		}
	}
	dg.Adopt(sg)
	return nil
}

// Finalize tears the manager down before exit, releasing layout resources.
func (m *Manager) Finalize() {
	for _, g := range m.groups {
		for _, l := range g.layouts {
			l.Finalize()
		}
	}
}

// Info returns a manager-wide introspection snapshot: the active group name
// plus every group's own snapshot.
func (m *Manager) Info() layout.Info {
	groups := make([]layout.Info, len(m.groups))
	for i, g := range m.groups {
		groups[i] = g.Info()
	}
	info := layout.Info{
		"screen": m.screen,
		"groups": groups,
	}
	if g := m.ActiveGroup(); g != nil {
		info["active"] = g.Name()
	}
	return info
}
