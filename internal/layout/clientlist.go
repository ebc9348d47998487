package layout

import (
	"fmt"
	"strings"
)

// Position names the fixed insertion points Add understands. The zero value
// means "relative to the current window" (see Add's offset parameter).
type Position string

// Insertion positions for Add.
const (
	PositionNone          Position = ""
	PositionTop           Position = "top"
	PositionBottom        Position = "bottom"
	PositionAfterCurrent  Position = "after_current"
	PositionBeforeCurrent Position = "before_current"
)

// ClientList maintains an ordered list of windows and a current-index
// cursor. It is the base collection for layouts that track one or more
// ordered window sets.
//
// The cursor invariant holds after every mutation: 0 <= current < Len()
// while the list is non-empty, and current == 0 (a sentinel, not a valid
// position) when it is empty. Order is insertion/move order only — the
// list never sorts. A window occurs at most once.
type ClientList struct {
	clients []Window
	current int
}

// NewClientList returns an empty collection.
func NewClientList() *ClientList {
	return &ClientList{}
}

// Len returns the number of windows held.
func (l *ClientList) Len() int { return len(l.clients) }

// CurrentIndex returns the cursor position.
func (l *ClientList) CurrentIndex() int { return l.current }

// SetCurrentIndex moves the cursor to x modulo the collection length,
// wrapping so any integer lands in [0, Len()). Rotate and shuffle rely on
// this wrapping (not clamping) to keep their index arithmetic in bounds.
// On an empty list the cursor resets to 0.
func (l *ClientList) SetCurrentIndex(x int) {
	n := len(l.clients)
	if n == 0 {
		l.current = 0
		return
	}
	l.current = ((x % n) + n) % n
}

// Current returns the window under the cursor, or nil if the list is empty.
func (l *ClientList) Current() Window {
	if len(l.clients) == 0 {
		return nil
	}
	return l.clients[l.current]
}

// SetCurrent moves the cursor onto c. Returns ErrClientNotFound if c is not
// a member.
func (l *ClientList) SetCurrent(c Window) error {
	i, err := l.IndexOf(c)
	if err != nil {
		return err
	}
	l.current = i
	return nil
}

// IndexOf returns c's position, or ErrClientNotFound.
func (l *ClientList) IndexOf(c Window) (int, error) {
	for i, w := range l.clients {
		if w == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrClientNotFound, c.Name())
}

// Contains reports whether c is a member.
func (l *ClientList) Contains(c Window) bool {
	_, err := l.IndexOf(c)
	return err == nil
}

// At returns the window at position i, or nil when i is out of range.
// Out-of-range access is a boundary signal here, never an error.
func (l *ClientList) At(i int) Window {
	if i < 0 || i >= len(l.clients) {
		return nil
	}
	return l.clients[i]
}

// Range returns a copy of the windows in [i, j), clamped to the list
// bounds. The result may be empty but is never nil for a valid overlap.
func (l *ClientList) Range(i, j int) []Window {
	if i < 0 {
		i = 0
	}
	if j > len(l.clients) {
		j = len(l.clients)
	}
	if i >= j {
		return []Window{}
	}
	out := make([]Window, j-i)
	copy(out, l.clients[i:j])
	return out
}

// Clients returns a copy of the window sequence in order.
func (l *ClientList) Clients() []Window {
	out := make([]Window, len(l.clients))
	copy(out, l.clients)
	return out
}

// FocusFirst returns the first window, or nil if the list is empty.
func (l *ClientList) FocusFirst() Window { return l.At(0) }

// FocusLast returns the last window, or nil if the list is empty.
func (l *ClientList) FocusLast() Window { return l.At(len(l.clients) - 1) }

// FocusNext returns the window after c. A nil result means c is the last
// window — callers use that boundary signal to wrap or to move on to a
// different collection. c must be a member.
func (l *ClientList) FocusNext(c Window) (Window, error) {
	i, err := l.IndexOf(c)
	if err != nil {
		return nil, err
	}
	return l.At(i + 1), nil
}

// FocusPrevious returns the window before c, with nil signalling "before
// the first window". c must be a member.
func (l *ClientList) FocusPrevious(c Window) (Window, error) {
	i, err := l.IndexOf(c)
	if err != nil {
		return nil, err
	}
	return l.At(i - 1), nil
}

// Add inserts c relative to the cursor and makes it current.
//
// With PositionNone the insertion index is max(0, current+offset), clamped
// to an append when it runs past the end. PositionTop and PositionBottom
// ignore the cursor entirely; PositionAfterCurrent and PositionBeforeCurrent
// are shorthands for offsets 1 and 0.
func (l *ClientList) Add(c Window, offset int, pos Position) {
	switch pos {
	case PositionAfterCurrent:
		l.Add(c, 1, PositionNone)
		return
	case PositionBeforeCurrent:
		l.Add(c, 0, PositionNone)
		return
	case PositionTop:
		l.Prepend(c)
	case PositionBottom:
		l.Append(c)
	default:
		i := l.current + offset
		if i < 0 {
			i = 0
		}
		if i < len(l.clients) {
			l.clients = append(l.clients, nil)
			copy(l.clients[i+1:], l.clients[i:])
			l.clients[i] = c
		} else {
			l.clients = append(l.clients, c)
		}
	}
	// The new window always becomes current.
	_ = l.SetCurrent(c)
}

// Prepend inserts c at the front of the list without moving the cursor.
func (l *ClientList) Prepend(c Window) {
	l.clients = append([]Window{c}, l.clients...)
}

// Append inserts c at the end of the list without moving the cursor.
func (l *ClientList) Append(c Window) {
	l.clients = append(l.clients, c)
}

// Remove deletes c and returns the window now under the cursor, the one
// that should gain focus next, or nil when the list empties. Removing a
// non-member is a no-op returning nil.
//
// When the removed position was at or before the cursor, the cursor slides
// back one (floored at 0) so it keeps pointing into the list.
func (l *ClientList) Remove(c Window) Window {
	i, err := l.IndexOf(c)
	if err != nil {
		return nil
	}
	l.clients = append(l.clients[:i], l.clients[i+1:]...)
	if len(l.clients) == 0 {
		l.current = 0
	} else if i <= l.current && l.current > 0 {
		l.current--
	}
	return l.At(l.current)
}

// RotateUp moves the first window to the last position. With maintainIndex
// the cursor follows the shift (wrapping) so the same window stays current.
// No-op for lists shorter than two.
func (l *ClientList) RotateUp(maintainIndex bool) {
	if len(l.clients) <= 1 {
		return
	}
	head := l.clients[0]
	copy(l.clients, l.clients[1:])
	l.clients[len(l.clients)-1] = head
	if maintainIndex {
		l.SetCurrentIndex(l.current - 1)
	}
}

// RotateDown moves the last window to the first position, the mirror of
// RotateUp.
func (l *ClientList) RotateDown(maintainIndex bool) {
	if len(l.clients) <= 1 {
		return
	}
	tail := l.clients[len(l.clients)-1]
	copy(l.clients[1:], l.clients)
	l.clients[0] = tail
	if maintainIndex {
		l.SetCurrentIndex(l.current + 1)
	}
}

// Swap exchanges the positions of a and b. focus selects where the cursor
// lands afterwards: 1 puts it on a's new position, 2 on b's, and any other
// value leaves the cursor index untouched — which may now name a different
// window; that index-based behavior is intentional.
func (l *ClientList) Swap(a, b Window, focus int) error {
	ia, err := l.IndexOf(a)
	if err != nil {
		return err
	}
	ib, err := l.IndexOf(b)
	if err != nil {
		return err
	}
	l.clients[ia], l.clients[ib] = l.clients[ib], l.clients[ia]
	switch focus {
	case 1:
		l.SetCurrentIndex(ib) // a now sits where b was
	case 2:
		l.SetCurrentIndex(ia)
	}
	return nil
}

// ShuffleUp swaps the current window with its predecessor. No-op when the
// cursor is already at the front. With maintainIndex the cursor moves with
// the window so it stays current.
func (l *ClientList) ShuffleUp(maintainIndex bool) {
	i := l.current
	if i == 0 {
		return
	}
	l.clients[i], l.clients[i-1] = l.clients[i-1], l.clients[i]
	if maintainIndex {
		l.SetCurrentIndex(i - 1)
	}
}

// ShuffleDown swaps the current window with its successor. No-op when the
// cursor is at the back.
func (l *ClientList) ShuffleDown(maintainIndex bool) {
	i := l.current
	if i+1 >= len(l.clients) {
		return
	}
	l.clients[i], l.clients[i+1] = l.clients[i+1], l.clients[i]
	if maintainIndex {
		l.SetCurrentIndex(i + 1)
	}
}

// Join splices all of other's windows into l at max(0, current+offset),
// appending when the position runs past the end. other's relative order is
// preserved as a contiguous block and other itself is not modified. The
// cursor index is left alone.
func (l *ClientList) Join(other *ClientList, offset int) {
	if other == nil || len(other.clients) == 0 {
		return
	}
	i := l.current + offset
	if i < 0 {
		i = 0
	}
	if i < len(l.clients) {
		merged := make([]Window, 0, len(l.clients)+len(other.clients))
		merged = append(merged, l.clients[:i]...)
		merged = append(merged, other.clients...)
		merged = append(merged, l.clients[i:]...)
		l.clients = merged
	} else {
		l.clients = append(l.clients, other.clients...)
	}
}

// Info returns the collection fragment of a layout snapshot: window names
// in order plus the cursor index.
func (l *ClientList) Info() Info {
	names := make([]string, len(l.clients))
	for i, c := range l.clients {
		names[i] = c.Name()
	}
	return Info{
		"clients": names,
		"current": l.current,
	}
}

// String renders the list for debugging, bracketing the current window.
func (l *ClientList) String() string {
	parts := make([]string, len(l.clients))
	for i, c := range l.clients {
		if i == l.current {
			parts[i] = "[" + c.Name() + "]"
		} else {
			parts[i] = c.Name()
		}
	}
	return "ClientList: " + strings.Join(parts, ", ")
}
