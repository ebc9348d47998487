package layout

import (
	"errors"
	"fmt"

	"github.com/renn/tilewm/internal/geometry"
)

// Sentinel errors for collection and layout operations.
var (
	// ErrClientNotFound indicates an operation referenced a window that is
	// not a member of the collection.
	ErrClientNotFound = errors.New("layout: client not found")

	// ErrSwapUnsupported indicates the layout does not support rearranging
	// windows. It is a user-facing condition, surfaced by whatever issued
	// the command, not a crash.
	ErrSwapUnsupported = errors.New("layout: swapping windows not supported")
)

// Unsupported wraps ErrSwapUnsupported with the layout's name for display.
func Unsupported(name string) error {
	return fmt.Errorf("layout %q: %w", name, ErrSwapUnsupported)
}

// Window is the handle a layout keeps for a window it orders. The layout
// never owns window lifetime; it stores handles and compares them by
// identity, so implementations must be pointer types (or otherwise
// comparable with ==).
type Window interface {
	// Name returns the window's display name, used for introspection.
	Name() string
	// Place applies geometry and makes the window visible.
	Place(r geometry.Rect)
	// Hide removes the window from view without deregistering it.
	Hide()
}

// Group is the owning group a layout is attached to after cloning. The
// layout invokes these primitives; it never decides on its own when focus
// is applied or when the whole group re-lays out.
type Group interface {
	// Name returns the group's name, used for introspection.
	Name() string
	// Focus applies focus to the given window. When warp is true the
	// pointer (or its terminal equivalent) follows the focus.
	Focus(c Window, warp bool)
	// LayoutAll triggers re-geometry of every window in the group.
	LayoutAll()
	// ScreenName returns the display name of the screen the group is shown
	// on, or "" when the group is not visible. Introspection only.
	ScreenName() string
}

// Info is a structured introspection snapshot. Producing one has no side
// effects; layouts merge their collection state into the base record.
type Info map[string]any

// Layout is the contract every tiling layout implements.
//
// A layout starts unattached: it is constructed once from configuration as
// a template, and Clone produces the per-group instance that is actually
// driven. Any operation that needs the owning group panics on an
// unattached layout — that is a construction-order bug in the caller,
// never a runtime condition.
//
// FocusNext and FocusPrevious follow the non-wrapping contract of
// ClientList: nil means the edge of the layout was reached, and the group
// uses that signal to cycle elsewhere. Next and Previous, by contrast, act:
// they move the focus by one step (wrapping) through the owning group.
type Layout interface {
	// Name returns the layout's configured name.
	Name() string

	// Clone produces an independent instance attached to g. Internal
	// collections are freshly initialized, never shared with the template.
	Clone(g Group) Layout

	// AddClient registers a window into the layout's internal structures
	// with no placement or visibility side effect.
	AddClient(c Window)

	// Remove deregisters a window and returns the window that should gain
	// focus next, or nil if none remains (or c was not registered).
	Remove(c Window) Window

	// Configure computes and applies c's geometry and visibility for the
	// given screen region.
	Configure(c Window, r geometry.Rect)

	// FocusFirst returns the first window in the layout, or nil if empty.
	FocusFirst() Window
	// FocusLast returns the last window in the layout, or nil if empty.
	FocusLast() Window
	// FocusNext returns the window after c, nil at the end of the layout,
	// or ErrClientNotFound if c is not a member.
	FocusNext(c Window) (Window, error)
	// FocusPrevious returns the window before c, nil at the start of the
	// layout, or ErrClientNotFound if c is not a member.
	FocusPrevious(c Window) (Window, error)

	// Next advances the acted-upon focus by one window, wrapping, through
	// the owning group. No-op when the layout holds no windows.
	Next()
	// Previous retreats the acted-upon focus by one window, wrapping,
	// through the owning group. No-op when the layout holds no windows.
	Previous()

	// Swap exchanges two windows. Layouts that do not support
	// rearrangement return an error wrapping ErrSwapUnsupported.
	Swap(c1, c2 Window) error

	// Show is called when the layout becomes the group's visible layout.
	Show(r geometry.Rect)
	// Hide is called when the layout stops being visible.
	Hide()
	// Focus is called whenever focus lands on c.
	Focus(c Window)
	// Blur is called whenever focus leaves this layout.
	Blur()
	// Finalize is called before the layout's group is destroyed.
	Finalize()

	// Info returns the introspection snapshot for this layout.
	Info() Info
}

// Apply configures every window in windows for the given screen region.
// Groups use it to re-lay out the visible window set in one pass.
func Apply(l Layout, windows []Window, r geometry.Rect) {
	for _, c := range windows {
		l.Configure(c, r)
	}
}
