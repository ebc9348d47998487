package session

import (
	"github.com/renn/tilewm/internal/wm"
)

// Snapshot captures the manager's current arrangement as storable records.
// Pane order within a workspace is the active layout's order, with floating
// panes appended after the tiled block.
func Snapshot(m *wm.Manager) []WorkspaceRecord {
	active := m.ActiveGroup()
	var out []WorkspaceRecord
	for _, g := range m.Groups() {
		ws := WorkspaceRecord{
			Name:   g.Name(),
			Layout: g.LayoutName(),
			Active: g == active,
		}
		focused := g.Focused()
		for _, w := range g.TiledWindows() {
			p, ok := w.(*wm.Pane)
			if !ok {
				continue
			}
			ws.Panes = append(ws.Panes, PaneRecord{
				ID:      p.ID(),
				Title:   p.Name(),
				Focused: w == focused,
			})
		}
		for _, w := range g.FloatingWindows() {
			p, ok := w.(*wm.Pane)
			if !ok {
				continue
			}
			ws.Panes = append(ws.Panes, PaneRecord{
				ID:       p.ID(),
				Title:    p.Name(),
				Floating: true,
				Focused:  w == focused,
			})
		}
		out = append(out, ws)
	}
	return out
}

// Restore applies a stored snapshot to a freshly constructed manager.
// Records for workspaces the manager does not carry are skipped, as are
// layout names the workspace's layout set does not include.
func Restore(m *wm.Manager, workspaces []WorkspaceRecord) {
	activeName := ""
	for _, ws := range workspaces {
		g, err := m.Group(ws.Name)
		if err != nil {
			continue
		}
		_ = g.SetLayout(ws.Layout)

		var focused *wm.Pane
		for _, rec := range ws.Panes {
			p := wm.RestorePane(rec.ID, rec.Title)
			g.AddPane(p)
			if rec.Floating {
				g.ToggleFloating(p)
			}
			if rec.Focused {
				focused = p
			}
		}
		if focused != nil {
			g.Focus(focused, false)
		}
		if ws.Active {
			activeName = ws.Name
		}
	}
	if activeName != "" {
		_ = m.Activate(activeName)
	}
}
