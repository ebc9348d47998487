// Package geometry holds the screen-region value types shared by the layout
// engine and the renderer. A Rect is measured in terminal cells.
package geometry

// Rect is a screen region: top-left position plus width and height.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a Rect with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no visible area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inset shrinks the rect by n cells on every side. Width and height floor
// at zero.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// SplitColumns divides the rect into n equal-width columns, left to right.
// Remainder cells go to the rightmost column so the columns tile the rect
// exactly. Returns nil when n <= 0 or the rect is empty.
func (r Rect) SplitColumns(n int) []Rect {
	if n <= 0 || r.Empty() {
		return nil
	}
	cols := make([]Rect, n)
	w := r.W / n
	for i := 0; i < n; i++ {
		cols[i] = Rect{X: r.X + i*w, Y: r.Y, W: w, H: r.H}
	}
	cols[n-1].W = r.Right() - cols[n-1].X
	return cols
}

// SplitRows divides the rect into n equal-height rows, top to bottom, with
// remainder cells going to the bottom row.
func (r Rect) SplitRows(n int) []Rect {
	if n <= 0 || r.Empty() {
		return nil
	}
	rows := make([]Rect, n)
	h := r.H / n
	for i := 0; i < n; i++ {
		rows[i] = Rect{X: r.X, Y: r.Y + i*h, W: r.W, H: h}
	}
	rows[n-1].H = r.Bottom() - rows[n-1].Y
	return rows
}

// Cell returns the rect of cell (col, row) in a grid of the given column and
// row counts, computed so the cells tile the rect exactly.
func (r Rect) Cell(col, row, cols, rows int) Rect {
	rowRects := r.SplitRows(rows)
	if row < 0 || row >= len(rowRects) {
		return Rect{}
	}
	colRects := rowRects[row].SplitColumns(cols)
	if col < 0 || col >= len(colRects) {
		return Rect{}
	}
	return colRects[col]
}
