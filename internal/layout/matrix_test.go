package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renn/tilewm/internal/geometry"
)

func TestMatrixGridShape(t *testing.T) {
	t.Parallel()

	m := NewMatrix(2).Clone(newStubGroup("ws")).(*Matrix)
	require.Equal(t, 0, m.Rows())

	ws := []Window{
		newStubWindow("a"), newStubWindow("b"),
		newStubWindow("c"), newStubWindow("d"), newStubWindow("e"),
	}
	for _, w := range ws {
		m.AddClient(w)
	}
	require.Equal(t, 3, m.Rows()) // ceil(5/2)

	r := geometry.NewRect(0, 0, 100, 30)
	Apply(m, ws, r)

	a, b, e := ws[0].(*stubWindow), ws[1].(*stubWindow), ws[4].(*stubWindow)
	require.Equal(t, 0, a.rect.X)
	require.Equal(t, 0, a.rect.Y)
	require.Equal(t, 50, a.rect.W)
	require.Equal(t, 10, a.rect.H)

	require.Equal(t, 50, b.rect.X)
	require.Equal(t, 0, b.rect.Y)

	// Fifth window sits alone on the last row, first column.
	require.Equal(t, 0, e.rect.X)
	require.Equal(t, 20, e.rect.Y)

	for _, w := range ws {
		require.False(t, w.(*stubWindow).hidden)
	}
}

func TestMatrixColumnCommands(t *testing.T) {
	t.Parallel()

	m := NewMatrix(0)
	require.Equal(t, 2, m.Columns()) // bad counts fall back

	m.AddColumn()
	require.Equal(t, 3, m.Columns())
	m.RemoveColumn()
	m.RemoveColumn()
	require.Equal(t, 1, m.Columns())
	m.RemoveColumn()
	require.Equal(t, 1, m.Columns()) // floor at one column
}

func TestMatrixCloneKeepsColumns(t *testing.T) {
	t.Parallel()

	template := NewMatrix(4)
	c := template.Clone(newStubGroup("ws")).(*Matrix)
	require.Equal(t, 4, c.Columns())
	c.AddColumn()
	require.Equal(t, 4, template.Columns()) // template stays untouched
}

func TestMatrixInfo(t *testing.T) {
	t.Parallel()

	g := newStubGroup("ws")
	m := NewMatrix(2).Clone(g).(*Matrix)
	m.AddClient(newStubWindow("a"))
	m.AddClient(newStubWindow("b"))
	m.AddClient(newStubWindow("c"))

	info := m.Info()
	require.Equal(t, "matrix", info["name"])
	require.Equal(t, "ws", info["group"])
	require.Equal(t, 2, info["columns"])
	require.Equal(t, 2, info["rows"])
	require.Equal(t, []string{"a", "b", "c"}, info["clients"])
}

func TestMatrixHidesUnknownWindows(t *testing.T) {
	t.Parallel()

	m := NewMatrix(2).Clone(newStubGroup("ws")).(*Matrix)
	m.AddClient(newStubWindow("a"))

	stray := newStubWindow("stray")
	m.Configure(stray, geometry.NewRect(0, 0, 10, 10))
	require.True(t, stray.hidden)
}
