package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

// Binding ties keys to an action within one or more scopes. CommandID, when
// set, routes the key through the command registry so key dispatch and the
// palette share one implementation.
type Binding struct {
	Action    Action
	Keys      []string
	Help      string
	Scopes    []string
	CommandID string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal  = "global"
	scopeNormal  = "normal"
	scopePalette = "palette"
	scopeRename  = "rename"
)

const (
	actionQuit         Action = "quit"
	actionPalette      Action = "palette"
	actionNavigate     Action = "navigate"
	actionSelect       Action = "select"
	actionClose        Action = "close"
	actionConfirm      Action = "confirm"
	actionCancel       Action = "cancel"
	actionNewPane      Action = "new_pane"
	actionClosePane    Action = "close_pane"
	actionRenamePane   Action = "rename_pane"
	actionFocusNext    Action = "focus_next"
	actionFocusPrev    Action = "focus_prev"
	actionShuffleDown  Action = "shuffle_down"
	actionShuffleUp    Action = "shuffle_up"
	actionPromote      Action = "promote"
	actionToggleFloat  Action = "toggle_float"
	actionNextLayout   Action = "next_layout"
	actionAddColumn    Action = "add_column"
	actionRemoveColumn Action = "remove_column"
	actionNextGroup    Action = "next_group"
	actionPrevGroup    Action = "prev_group"
	actionMovePaneNext Action = "move_pane_next"
	actionMergeNext    Action = "merge_next"
	actionLayoutInfo   Action = "layout_info"
)

// actionWorkspace returns the activate action for the i-th workspace.
func actionWorkspace(i int) Action {
	return Action(fmt.Sprintf("workspace_%d", i+1))
}

// NewKeyRegistry builds the default key map. workspaces is the number of
// workspace groups; the first nine get digit bindings.
func NewKeyRegistry(workspaces int) *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help, commandID string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}, CommandID: commandID})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit", "app:quit")
	reg(scopeGlobal, actionPalette, []string{"ctrl+k", ":"}, "commands", "")

	// Normal mode: the tiling bindings.
	reg(scopeNormal, actionQuit, []string{"q"}, "quit", "app:quit")
	reg(scopeNormal, actionNewPane, []string{"n"}, "new pane", "pane:new")
	reg(scopeNormal, actionClosePane, []string{"x"}, "close pane", "pane:close")
	reg(scopeNormal, actionRenamePane, []string{"r"}, "rename", "pane:rename")
	reg(scopeNormal, actionFocusNext, []string{"j", "tab"}, "focus next", "focus:next")
	reg(scopeNormal, actionFocusPrev, []string{"k", "shift+tab"}, "focus prev", "focus:previous")
	reg(scopeNormal, actionShuffleDown, []string{"J"}, "move down", "move:down")
	reg(scopeNormal, actionShuffleUp, []string{"K"}, "move up", "move:up")
	reg(scopeNormal, actionPromote, []string{"enter"}, "promote", "pane:promote")
	reg(scopeNormal, actionToggleFloat, []string{"f"}, "float", "pane:float")
	reg(scopeNormal, actionNextLayout, []string{"space"}, "layout", "layout:next")
	reg(scopeNormal, actionAddColumn, []string{"]"}, "add column", "layout:columns-add")
	reg(scopeNormal, actionRemoveColumn, []string{"["}, "remove column", "layout:columns-remove")
	reg(scopeNormal, actionNextGroup, []string{"l"}, "next workspace", "workspace:next")
	reg(scopeNormal, actionPrevGroup, []string{"h"}, "prev workspace", "workspace:previous")
	reg(scopeNormal, actionMovePaneNext, []string{"m"}, "send to next", "pane:move-next")
	reg(scopeNormal, actionMergeNext, []string{"M"}, "merge into next", "workspace:merge-next")
	reg(scopeNormal, actionLayoutInfo, []string{"i"}, "info", "layout:info")
	for i := 0; i < workspaces && i < 9; i++ {
		reg(scopeNormal, actionWorkspace(i), []string{fmt.Sprintf("%d", i+1)},
			fmt.Sprintf("workspace %d", i+1), fmt.Sprintf("workspace:activate:%d", i))
	}

	reg(scopePalette, actionNavigate, []string{"up", "down", "ctrl+p", "ctrl+n"}, "navigate", "")
	reg(scopePalette, actionSelect, []string{"enter"}, "run", "")
	reg(scopePalette, actionClose, []string{"esc"}, "close", "")

	reg(scopeRename, actionConfirm, []string{"enter"}, "confirm", "")
	reg(scopeRename, actionCancel, []string{"esc"}, "cancel", "")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

// Lookup resolves a key in the given scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// HelpBindings converts a scope's bindings into bubbles help entries.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Uppercase and lowercase single runes stay distinct bindings.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
