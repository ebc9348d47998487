package layout

import "github.com/renn/tilewm/internal/geometry"

// Matrix arranges all windows in a grid with a fixed number of columns.
// Windows fill the grid in order, row by row; every window stays visible.
type Matrix struct {
	Base
	columns int
}

// NewMatrix returns a Matrix template with the given column count.
// Counts below one fall back to two columns.
func NewMatrix(columns int) *Matrix {
	if columns < 1 {
		columns = 2
	}
	return &Matrix{
		Base:    NewBase("matrix", PositionBottom),
		columns: columns,
	}
}

// Clone returns an independent Matrix attached to g.
func (m *Matrix) Clone(g Group) Layout {
	return &Matrix{Base: m.Base.clone(g), columns: m.columns}
}

// Columns returns the configured column count.
func (m *Matrix) Columns() int { return m.columns }

// AddColumn widens the grid by one column.
func (m *Matrix) AddColumn() {
	m.columns++
}

// RemoveColumn narrows the grid by one column, stopping at one.
func (m *Matrix) RemoveColumn() {
	if m.columns > 1 {
		m.columns--
	}
}

// Rows returns how many grid rows the current window count needs.
func (m *Matrix) Rows() int {
	n := m.Clients.Len()
	if n == 0 {
		return 0
	}
	return (n + m.columns - 1) / m.columns
}

// Configure places c in its grid cell, computed from its position in the
// collection. Windows the collection does not know are hidden.
func (m *Matrix) Configure(c Window, r geometry.Rect) {
	i, err := m.Clients.IndexOf(c)
	if err != nil {
		c.Hide()
		return
	}
	row := i / m.columns
	col := i % m.columns
	c.Place(r.Cell(col, row, m.columns, m.Rows()))
}

// Info extends the base snapshot with the grid shape.
func (m *Matrix) Info() Info {
	info := m.Base.Info()
	info["columns"] = m.columns
	info["rows"] = m.Rows()
	return info
}
