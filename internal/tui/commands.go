package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renn/tilewm/internal/layout"
	"github.com/renn/tilewm/internal/wm"
)

// Command is one palette entry. Execute mutates the app directly; key
// dispatch and the palette both run commands through the registry so there
// is a single implementation per operation.
type Command struct {
	ID          string
	Label       string
	Description string
	Category    string
	Enabled     func(a *App) (bool, string)
	Execute     func(a *App) (tea.Cmd, error)
}

type CommandMatch struct {
	Command        Command
	Score          int
	Enabled        bool
	DisabledReason string
}

type CommandRegistry struct {
	commands []Command
	byID     map[string]Command
}

func NewCommandRegistry(workspaceNames []string) *CommandRegistry {
	r := &CommandRegistry{}
	r.commands = []Command{
		{
			ID:          "pane:new",
			Label:       "New Pane",
			Description: "Open a pane in the active workspace",
			Category:    "Pane",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				p := a.manager.SpawnPane("")
				a.setStatusf("Opened %s.", p.Name())
				return nil, nil
			},
		},
		{
			ID:          "pane:close",
			Label:       "Close Pane",
			Description: "Close the focused pane",
			Category:    "Pane",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				p := a.manager.CloseFocused()
				if p == nil {
					return nil, fmt.Errorf("no focused pane")
				}
				a.setStatusf("Closed %s.", p.Name())
				return nil, nil
			},
		},
		{
			ID:          "pane:rename",
			Label:       "Rename Pane",
			Description: "Rename the focused pane",
			Category:    "Pane",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				p := a.focusedPane()
				if p == nil {
					return nil, fmt.Errorf("no focused pane")
				}
				a.renaming = true
				a.renameBuf = p.Name()
				return nil, nil
			},
		},
		{
			ID:          "pane:float",
			Label:       "Toggle Floating",
			Description: "Float or sink the focused pane",
			Category:    "Pane",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				p := a.focusedPane()
				if p == nil {
					return nil, fmt.Errorf("no focused pane")
				}
				a.activeGroup().ToggleFloating(p)
				return nil, nil
			},
		},
		{
			ID:          "pane:promote",
			Label:       "Promote Pane",
			Description: "Swap the focused pane with the first one",
			Category:    "Pane",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				return nil, a.activeGroup().Promote()
			},
		},
		{
			ID:          "pane:move-next",
			Label:       "Send to Next Workspace",
			Description: "Move the focused pane to the next workspace",
			Category:    "Pane",
			Enabled: func(a *App) (bool, string) {
				if a.focusedPane() == nil {
					return false, "No focused pane."
				}
				if len(a.manager.Groups()) < 2 {
					return false, "Only one workspace."
				}
				return true, ""
			},
			Execute: func(a *App) (tea.Cmd, error) {
				name := a.nextWorkspaceName()
				if err := a.manager.MoveFocusedTo(name); err != nil {
					return nil, err
				}
				a.setStatusf("Sent pane to %s.", name)
				return nil, nil
			},
		},
		{
			ID:          "focus:next",
			Label:       "Focus Next",
			Description: "Focus the next pane in the cycle",
			Category:    "Focus",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				a.activeGroup().FocusNext()
				return nil, nil
			},
		},
		{
			ID:          "focus:previous",
			Label:       "Focus Previous",
			Description: "Focus the previous pane in the cycle",
			Category:    "Focus",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				a.activeGroup().FocusPrevious()
				return nil, nil
			},
		},
		{
			ID:          "move:down",
			Label:       "Move Pane Down",
			Description: "Shift the focused pane forward in the order",
			Category:    "Focus",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				return nil, a.activeGroup().ShuffleDown()
			},
		},
		{
			ID:          "move:up",
			Label:       "Move Pane Up",
			Description: "Shift the focused pane back in the order",
			Category:    "Focus",
			Enabled:     commandNeedsFocusedPane,
			Execute: func(a *App) (tea.Cmd, error) {
				return nil, a.activeGroup().ShuffleUp()
			},
		},
		{
			ID:          "layout:next",
			Label:       "Next Layout",
			Description: "Cycle the active workspace's layout forward",
			Category:    "Layout",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				g := a.activeGroup()
				g.NextLayout()
				a.setStatusf("Layout: %s.", g.LayoutName())
				return nil, nil
			},
		},
		{
			ID:          "layout:previous",
			Label:       "Previous Layout",
			Description: "Cycle the active workspace's layout backward",
			Category:    "Layout",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				g := a.activeGroup()
				g.PreviousLayout()
				a.setStatusf("Layout: %s.", g.LayoutName())
				return nil, nil
			},
		},
		{
			ID:          "layout:columns-add",
			Label:       "Add Matrix Column",
			Description: "Widen the matrix layout by one column",
			Category:    "Layout",
			Enabled:     commandNeedsMatrix,
			Execute: func(a *App) (tea.Cmd, error) {
				m, ok := a.activeGroup().Layout().(*layout.Matrix)
				if !ok {
					return nil, fmt.Errorf("active layout is not matrix")
				}
				m.AddColumn()
				a.activeGroup().LayoutAll()
				return nil, nil
			},
		},
		{
			ID:          "layout:columns-remove",
			Label:       "Remove Matrix Column",
			Description: "Narrow the matrix layout by one column",
			Category:    "Layout",
			Enabled:     commandNeedsMatrix,
			Execute: func(a *App) (tea.Cmd, error) {
				m, ok := a.activeGroup().Layout().(*layout.Matrix)
				if !ok {
					return nil, fmt.Errorf("active layout is not matrix")
				}
				m.RemoveColumn()
				a.activeGroup().LayoutAll()
				return nil, nil
			},
		},
		{
			ID:          "layout:info",
			Label:       "Layout Info",
			Description: "Show the active workspace's layout snapshot",
			Category:    "Layout",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				a.setStatus(summarizeInfo(a.activeGroup().Info()))
				return nil, nil
			},
		},
		{
			ID:          "workspace:next",
			Label:       "Next Workspace",
			Description: "Switch to the next workspace",
			Category:    "Workspace",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				a.manager.NextGroup()
				return nil, nil
			},
		},
		{
			ID:          "workspace:previous",
			Label:       "Previous Workspace",
			Description: "Switch to the previous workspace",
			Category:    "Workspace",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				a.manager.PreviousGroup()
				return nil, nil
			},
		},
		{
			ID:          "workspace:merge-next",
			Label:       "Merge Into Next Workspace",
			Description: "Move every pane of this workspace into the next one",
			Category:    "Workspace",
			Enabled: func(a *App) (bool, string) {
				if len(a.manager.Groups()) < 2 {
					return false, "Only one workspace."
				}
				if a.activeGroup().Empty() {
					return false, "Workspace is empty."
				}
				return true, ""
			},
			Execute: func(a *App) (tea.Cmd, error) {
				src := a.activeGroup().Name()
				dst := a.nextWorkspaceName()
				if err := a.manager.Merge(src, dst); err != nil {
					return nil, err
				}
				a.setStatusf("Merged %s into %s.", src, dst)
				return nil, nil
			},
		},
		{
			ID:          "session:save",
			Label:       "Save Session",
			Description: "Persist the current arrangement",
			Category:    "Session",
			Enabled: func(a *App) (bool, string) {
				if a.store == nil {
					return false, "Session store not configured."
				}
				return true, ""
			},
			Execute: func(a *App) (tea.Cmd, error) {
				return a.saveSessionCmd(), nil
			},
		},
		{
			ID:          "app:quit",
			Label:       "Quit",
			Description: "Save the session and exit",
			Category:    "Session",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				if save := a.saveSessionCmd(); save != nil {
					return tea.Sequence(save, tea.Quit), nil
				}
				return tea.Quit, nil
			},
		},
	}
	for i, name := range workspaceNames {
		ws := name
		r.commands = append(r.commands, Command{
			ID:          fmt.Sprintf("workspace:activate:%d", i),
			Label:       fmt.Sprintf("Go to Workspace %q", ws),
			Description: "Switch to this workspace",
			Category:    "Workspace",
			Enabled:     commandAlwaysEnabled,
			Execute: func(a *App) (tea.Cmd, error) {
				return nil, a.manager.Activate(ws)
			},
		})
	}
	r.byID = make(map[string]Command, len(r.commands))
	for _, cmd := range r.commands {
		r.byID[cmd.ID] = cmd
	}
	return r
}

func commandAlwaysEnabled(*App) (bool, string) {
	return true, ""
}

func commandNeedsFocusedPane(a *App) (bool, string) {
	if a.focusedPane() == nil {
		return false, "No focused pane."
	}
	return true, ""
}

func commandNeedsMatrix(a *App) (bool, string) {
	if _, ok := a.activeGroup().Layout().(*layout.Matrix); !ok {
		return false, "Active layout is not matrix."
	}
	return true, ""
}

func (r *CommandRegistry) All() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Search filters and ranks commands for the palette. Enabled commands sort
// first, then the most recently run command, then fuzzy score.
func (r *CommandRegistry) Search(query string, a *App, lastCommandID string) []CommandMatch {
	if r == nil {
		return nil
	}
	q := strings.TrimSpace(query)
	out := make([]CommandMatch, 0, len(r.commands))
	for _, cmd := range r.commands {
		matched, score := commandMatchScore(cmd, q)
		if !matched {
			continue
		}
		enabled, reason := true, ""
		if cmd.Enabled != nil {
			enabled, reason = cmd.Enabled(a)
		}
		out = append(out, CommandMatch{
			Command:        cmd,
			Score:          score,
			Enabled:        enabled,
			DisabledReason: reason,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Enabled != out[j].Enabled {
			return out[i].Enabled
		}
		iMRU := lastCommandID != "" && out[i].Command.ID == lastCommandID
		jMRU := lastCommandID != "" && out[j].Command.ID == lastCommandID
		if iMRU != jMRU {
			return iMRU
		}
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		li := strings.ToLower(out[i].Command.Label)
		lj := strings.ToLower(out[j].Command.Label)
		if li != lj {
			return li < lj
		}
		return out[i].Command.ID < out[j].Command.ID
	})
	return out
}

// Suggest returns the label of the command nearest to query by edit
// distance, or "" when nothing is plausibly close. Used for the palette's
// empty-result hint.
func (r *CommandRegistry) Suggest(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if r == nil || q == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cmd := range r.commands {
		d := levenshtein.ComputeDistance(q, strings.ToLower(cmd.Label))
		if bestDist < 0 || d < bestDist {
			best = cmd.Label
			bestDist = d
		}
	}
	if bestDist < 0 || bestDist > len(q)/2+2 {
		return ""
	}
	return best
}

func (r *CommandRegistry) ExecuteByID(id string, a *App) (tea.Cmd, error) {
	if r == nil {
		return nil, fmt.Errorf("command registry is not initialized")
	}
	cmd, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", id)
	}
	if cmd.Enabled != nil {
		enabled, reason := cmd.Enabled(a)
		if !enabled {
			if strings.TrimSpace(reason) == "" {
				reason = "command is disabled"
			}
			return nil, fmt.Errorf("%s", reason)
		}
	}
	if cmd.Execute == nil {
		return nil, fmt.Errorf("command %q has no executor", id)
	}
	return cmd.Execute(a)
}

func commandMatchScore(cmd Command, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{cmd.Label, cmd.ID, cmd.Description} {
		matched, score := fuzzyMatchScore(field, query)
		if !matched {
			continue
		}
		if strings.EqualFold(field, query) {
			score += 15
		}
		if score > best {
			best = score
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, best
}

// fuzzyMatchScore does subsequence matching: every query byte must appear in
// order. Prefix and consecutive hits score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

// summarizeInfo renders a layout snapshot as a one-line status message.
func summarizeInfo(info layout.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", info["name"])
	if cols, ok := info["columns"]; ok {
		fmt.Fprintf(&b, " %vx%v", cols, info["rows"])
	}
	if clients, ok := info["clients"].([]string); ok {
		fmt.Fprintf(&b, " [%s]", strings.Join(clients, " "))
	}
	if floating, ok := info["floating"].([]string); ok && len(floating) > 0 {
		fmt.Fprintf(&b, " float:[%s]", strings.Join(floating, " "))
	}
	return b.String()
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}

// focusedPane returns the active group's focused window as a pane.
func (a *App) focusedPane() *wm.Pane {
	g := a.activeGroup()
	if g == nil || g.Focused() == nil {
		return nil
	}
	p, ok := g.Focused().(*wm.Pane)
	if !ok {
		return nil
	}
	return p
}
