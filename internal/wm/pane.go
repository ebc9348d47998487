// Package wm owns the workspace model: panes, groups and the manager that
// drives layout instances in response to user commands.
package wm

import (
	"github.com/google/uuid"

	"github.com/renn/tilewm/internal/geometry"
	"github.com/renn/tilewm/internal/layout"
)

// Pane is a window: a titled region of the terminal screen. It implements
// layout.Window; the layout engine stores *Pane handles and compares them
// by identity, so panes are always passed by pointer.
type Pane struct {
	id     string
	title  string
	rect   geometry.Rect
	hidden bool
}

var _ layout.Window = (*Pane)(nil)

// NewPane returns a hidden pane with a fresh identity.
func NewPane(title string) *Pane {
	return &Pane{
		id:     uuid.NewString(),
		title:  title,
		hidden: true,
	}
}

// RestorePane rebuilds a pane from a persisted session record, keeping its
// original identity.
func RestorePane(id, title string) *Pane {
	return &Pane{id: id, title: title, hidden: true}
}

// ID returns the pane's stable identity, used by the session store.
func (p *Pane) ID() string { return p.id }

// Name returns the pane's display title.
func (p *Pane) Name() string { return p.title }

// SetTitle renames the pane.
func (p *Pane) SetTitle(title string) { p.title = title }

// Place applies geometry and makes the pane visible.
func (p *Pane) Place(r geometry.Rect) {
	p.rect = r
	p.hidden = false
}

// Hide removes the pane from view.
func (p *Pane) Hide() { p.hidden = true }

// Rect returns the last placed geometry.
func (p *Pane) Rect() geometry.Rect { return p.rect }

// Hidden reports whether the pane is currently off screen.
func (p *Pane) Hidden() bool { return p.hidden }
