// Package layout is the window-ordering and focus-cycling engine behind
// every tiling layout in tilewm.
//
// The package has three levels:
//   - ClientList: an ordered list of windows plus a current-index cursor.
//     It decides which window is first/current/next and how the list
//     reshapes under insert, remove, rotate, shuffle, swap and join.
//   - Layout: the contract every concrete layout satisfies. A layout is
//     built once as a template at configuration time and cloned for each
//     group that uses it; only the clone is attached to a group.
//   - Base: a reusable Layout core backed by a single ClientList, which
//     simple layouts (Max, Matrix) embed.
//
// Layouts decide order and focus, not placement: Configure computes a
// window's geometry for a screen rect, but applying focus is always the
// owning group's job. Focus traversal deliberately does not wrap at this
// level — a nil window from FocusNext/FocusPrevious tells the group it ran
// off the edge of the collection, so the group can wrap, move to floating
// windows, or stop.
//
// Everything here is synchronous and single-actor: operations run on the
// event loop of the program driving the groups, and no collection is ever
// shared between two layout clones.
package layout
