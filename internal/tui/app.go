// Package tui renders the workspace manager as a bubbletea program: panes
// are drawn as bordered boxes at the geometry the layout engine assigned,
// and every user operation runs through the command registry.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renn/tilewm/internal/config"
	"github.com/renn/tilewm/internal/geometry"
	"github.com/renn/tilewm/internal/session"
	"github.com/renn/tilewm/internal/wm"
)

const palettePageSize = 10

// App ties the workspace manager, key map and command registry together.
type App struct {
	cfg      config.Config
	manager  *wm.Manager
	store    *session.Store
	keys     *KeyRegistry
	commands *CommandRegistry

	width  int
	height int

	status    string
	statusErr bool

	paletteOpen   bool
	query         string
	cursor        int
	scroll        int
	matches       []CommandMatch
	lastCommandID string

	renaming  bool
	renameBuf string
}

type sessionSavedMsg struct{ err error }

// New builds the app around an already constructed (and possibly restored)
// manager. store may be nil when session persistence is disabled.
func New(cfg config.Config, manager *wm.Manager, store *session.Store) *App {
	return &App{
		cfg:      cfg,
		manager:  manager,
		store:    store,
		keys:     NewKeyRegistry(len(cfg.Workspaces.Names)),
		commands: NewCommandRegistry(cfg.Workspaces.Names),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.manager.Resize(geometry.NewRect(0, 0, msg.Width, max(msg.Height-1, 0)))
		return a, nil
	case sessionSavedMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("Session save failed: %v", msg.err))
		} else {
			a.setStatus("Session saved.")
		}
		return a, nil
	case tea.KeyMsg:
		if a.renaming {
			return a.updateRename(msg)
		}
		if a.paletteOpen {
			return a.updatePalette(msg)
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	binding := a.keys.Lookup(msg.String(), scopeNormal)
	if binding == nil {
		return a, nil
	}
	if binding.Action == actionPalette {
		a.openPalette()
		return a, nil
	}
	if binding.CommandID == "" {
		return a, nil
	}
	cmd, err := a.commands.ExecuteByID(binding.CommandID, a)
	if err != nil {
		a.setError(fmt.Sprintf("%v", err))
		return a, nil
	}
	a.lastCommandID = binding.CommandID
	return a, cmd
}

// ---------------------------------------------------------------------------
// Command palette
// ---------------------------------------------------------------------------

func (a *App) openPalette() {
	a.paletteOpen = true
	a.query = ""
	a.cursor = 0
	a.scroll = 0
	a.rebuildMatches()
}

func (a *App) closePalette() {
	a.paletteOpen = false
	a.query = ""
	a.cursor = 0
	a.scroll = 0
	a.matches = nil
}

func (a *App) rebuildMatches() {
	a.matches = a.commands.Search(a.query, a, a.lastCommandID)
	if len(a.matches) == 0 {
		a.cursor = 0
		a.scroll = 0
		return
	}
	if a.cursor >= len(a.matches) {
		a.cursor = len(a.matches) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.ensurePaletteCursorVisible()
}

func (a *App) ensurePaletteCursorVisible() {
	if len(a.matches) <= palettePageSize {
		a.scroll = 0
		return
	}
	if a.cursor < a.scroll {
		a.scroll = a.cursor
	}
	if a.cursor > a.scroll+palettePageSize-1 {
		a.scroll = a.cursor - palettePageSize + 1
	}
	maxScroll := len(a.matches) - palettePageSize
	if a.scroll > maxScroll {
		a.scroll = maxScroll
	}
	if a.scroll < 0 {
		a.scroll = 0
	}
}

func (a *App) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	b := a.keys.lookupInScope(normalizeKeyName(msg.String()), scope)
	return b != nil && b.Action == action
}

func (a *App) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopePalette, actionClose, msg):
		a.closePalette()
		return a, nil
	case a.isAction(scopePalette, actionSelect, msg):
		return a.executeSelected()
	case msg.Type == tea.KeyBackspace:
		if len(a.query) > 0 {
			a.query = a.query[:len(a.query)-1]
		}
		a.rebuildMatches()
		return a, nil
	case a.isAction(scopePalette, actionNavigate, msg):
		key := normalizeKeyName(msg.String())
		if key == "up" || key == "ctrl+p" {
			if a.cursor > 0 {
				a.cursor--
			}
		} else if a.cursor < len(a.matches)-1 {
			a.cursor++
		}
		a.ensurePaletteCursorVisible()
		return a, nil
	case isPrintableASCIIKey(msg.String()):
		a.query += msg.String()
		a.rebuildMatches()
		return a, nil
	}
	return a, nil
}

func (a *App) executeSelected() (tea.Model, tea.Cmd) {
	if len(a.matches) == 0 {
		if hint := a.commands.Suggest(a.query); hint != "" {
			a.setError(fmt.Sprintf("No matching command. Did you mean %q?", hint))
		} else {
			a.setError("No matching command.")
		}
		return a, nil
	}
	idx := a.cursor
	if idx < 0 || idx >= len(a.matches) {
		idx = 0
	}
	match := a.matches[idx]
	if !match.Enabled {
		reason := strings.TrimSpace(match.DisabledReason)
		if reason == "" {
			reason = "Selected command is currently unavailable."
		}
		a.setError(reason)
		return a, nil
	}
	a.closePalette()
	cmd, err := a.commands.ExecuteByID(match.Command.ID, a)
	if err != nil {
		a.setError(fmt.Sprintf("Command failed: %v", err))
		return a, nil
	}
	a.lastCommandID = match.Command.ID
	return a, cmd
}

// ---------------------------------------------------------------------------
// Rename input
// ---------------------------------------------------------------------------

func (a *App) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeRename, actionCancel, msg):
		a.renaming = false
		a.renameBuf = ""
		return a, nil
	case a.isAction(scopeRename, actionConfirm, msg):
		title := strings.TrimSpace(a.renameBuf)
		if p := a.focusedPane(); p != nil && title != "" {
			p.SetTitle(title)
			a.setStatusf("Renamed pane to %s.", title)
		}
		a.renaming = false
		a.renameBuf = ""
		return a, nil
	case msg.Type == tea.KeyBackspace:
		if len(a.renameBuf) > 0 {
			a.renameBuf = a.renameBuf[:len(a.renameBuf)-1]
		}
		return a, nil
	case isPrintableASCIIKey(msg.String()):
		a.renameBuf += msg.String()
		return a, nil
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// saveSessionCmd snapshots the arrangement now and writes it off the event
// loop. Returns nil when no store is configured.
func (a *App) saveSessionCmd() tea.Cmd {
	if a.store == nil {
		return nil
	}
	snap := session.Snapshot(a.manager)
	store := a.store
	return func() tea.Msg {
		return sessionSavedMsg{err: store.Save(context.Background(), snap)}
	}
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "starting tilewm..."
	}
	canvasH := max(a.height-1, 1)
	canvas := blankCanvas(canvasH)

	if g := a.manager.ActiveGroup(); g != nil {
		focused := g.Focused()
		for _, w := range g.TiledWindows() {
			p, ok := w.(*wm.Pane)
			if !ok || p.Hidden() {
				continue
			}
			box := a.paneBox(p, w == focused, false)
			canvas = overlayAt(canvas, box, p.Rect().X, p.Rect().Y, a.width, canvasH)
		}
		// Floating panes stack above the tiled plane.
		for _, w := range g.FloatingWindows() {
			p, ok := w.(*wm.Pane)
			if !ok || p.Hidden() {
				continue
			}
			box := a.paneBox(p, w == focused, true)
			canvas = overlayAt(canvas, box, p.Rect().X, p.Rect().Y, a.width, canvasH)
		}
	}

	if a.renaming {
		canvas = overlayCentered(canvas, a.renameView(), a.width, canvasH)
	}
	if a.paletteOpen {
		canvas = overlayCentered(canvas, a.paletteView(), a.width, canvasH)
	}
	return canvas + "\n" + a.statusBarView()
}

func (a *App) paneBox(p *wm.Pane, focused, floating bool) string {
	r := p.Rect()
	if r.W < 4 || r.H < 3 {
		return truncate(p.Name(), r.W)
	}
	style := paneBorderStyle
	if floating {
		style = paneFloatingStyle
	} else if focused {
		style = paneFocusedStyle
	}
	title := paneTitleStyle.Render(truncate(p.Name(), r.W-2))
	meta := paneMetaStyle.Render(truncate(p.ID()[:8], r.W-2))
	return style.Width(r.W - 2).Height(r.H - 2).Render(title + "\n" + meta)
}

func (a *App) statusBarView() string {
	active := a.manager.ActiveGroup()
	segs := make([]string, 0, 8)
	for _, g := range a.manager.Groups() {
		style := workspaceStyle
		if g == active {
			style = workspaceActiveStyle
		}
		segs = append(segs, style.Render(g.Name()))
	}
	if active != nil {
		segs = append(segs, layoutBadgeStyle.Render(active.LayoutName()))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, segs...)

	style := statusBarStyle
	if a.statusErr {
		style = statusErrorStyle
	}
	rest := a.width - lipgloss.Width(left)
	if rest <= 0 {
		return left
	}
	return left + style.Width(rest).Render(truncate(" "+a.status, rest))
}

func (a *App) paletteView() string {
	width := min(48, max(a.width-4, 10))
	lines := []string{paletteQueryStyle.Render("> " + a.query + "▌")}
	if len(a.matches) == 0 {
		msg := "no matching command"
		if hint := a.commands.Suggest(a.query); hint != "" {
			msg = fmt.Sprintf("no match, did you mean %q?", hint)
		}
		lines = append(lines, paletteItemStyle.Render(msg))
	}
	end := min(a.scroll+palettePageSize, len(a.matches))
	for i := a.scroll; i < end; i++ {
		m := a.matches[i]
		label := truncate(m.Command.Label, width-4)
		switch {
		case i == a.cursor:
			lines = append(lines, paletteCursorStyle.Render("▸ "+label))
		case !m.Enabled:
			lines = append(lines, paletteDisabledStyle.Render("  "+label))
		default:
			lines = append(lines, paletteItemStyle.Render("  "+label))
		}
	}
	return paletteBoxStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (a *App) renameView() string {
	return renameBoxStyle.Render("rename: " + a.renameBuf + "▌")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (a *App) activeGroup() *wm.Group {
	return a.manager.ActiveGroup()
}

func (a *App) nextWorkspaceName() string {
	groups := a.manager.Groups()
	active := a.manager.ActiveGroup()
	for i, g := range groups {
		if g == active {
			return groups[(i+1)%len(groups)].Name()
		}
	}
	return ""
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setStatusf(format string, args ...any) {
	a.setStatus(fmt.Sprintf(format, args...))
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}
