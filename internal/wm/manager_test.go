package wm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renn/tilewm/internal/geometry"
)

func newTestManager(t *testing.T, names ...string) *Manager {
	t.Helper()
	if len(names) == 0 {
		names = []string{"dev", "web", "chat"}
	}
	m := NewManager("main", false, names, testTemplates())
	m.Resize(geometry.NewRect(0, 0, 100, 30))
	return m
}

func TestManagerStartsOnFirstGroup(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	require.Equal(t, "dev", m.ActiveGroup().Name())
	require.True(t, m.ActiveGroup().Visible())
	require.Equal(t, "main", m.ActiveGroup().ScreenName())
	require.Len(t, m.Groups(), 3)
}

func TestManagerSpawnAndClose(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	p := m.SpawnPane("")
	require.NotNil(t, p)
	require.Equal(t, "pane-1", p.Name())
	require.Same(t, p, m.ActiveGroup().Focused())

	q := m.SpawnPane("logs")
	require.Equal(t, "logs", q.Name())

	closed := m.CloseFocused()
	require.Same(t, q, closed)
	require.Same(t, p, m.ActiveGroup().Focused())

	m.CloseFocused()
	require.Nil(t, m.CloseFocused()) // empty group
}

func TestManagerActivateHidesOldGroup(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	p := m.SpawnPane("editor")
	require.False(t, p.Hidden())

	require.NoError(t, m.Activate("web"))
	require.Equal(t, "web", m.ActiveGroup().Name())
	require.True(t, p.Hidden())
	dev, err := m.Group("dev")
	require.NoError(t, err)
	require.False(t, dev.Visible())
	require.Equal(t, "", dev.ScreenName())

	require.NoError(t, m.Activate("dev"))
	require.False(t, p.Hidden())

	require.ErrorIs(t, m.Activate("nope"), ErrUnknownGroup)
}

func TestManagerGroupCycling(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	m.NextGroup()
	require.Equal(t, "web", m.ActiveGroup().Name())
	m.NextGroup()
	m.NextGroup()
	require.Equal(t, "dev", m.ActiveGroup().Name()) // wraps
	m.PreviousGroup()
	require.Equal(t, "chat", m.ActiveGroup().Name())
}

func TestManagerMoveFocusedTo(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	p := m.SpawnPane("editor")

	require.NoError(t, m.MoveFocusedTo("web"))
	require.True(t, m.ActiveGroup().Empty())
	require.True(t, p.Hidden())

	web, err := m.Group("web")
	require.NoError(t, err)
	require.Equal(t, []string{"editor"}, paneNames(web.TiledWindows()))
	require.Same(t, p, web.Focused())

	require.ErrorIs(t, m.MoveFocusedTo("nope"), ErrUnknownGroup)
	require.NoError(t, m.MoveFocusedTo("dev")) // nothing focused, no-op
}

func TestManagerMerge(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	m.SpawnPane("a")
	m.SpawnPane("b")
	require.NoError(t, m.Activate("web"))
	m.SpawnPane("c")

	// Merging the active group switches to the destination first.
	require.NoError(t, m.Merge("web", "dev"))
	require.Equal(t, "dev", m.ActiveGroup().Name())
	require.Equal(t, []string{"a", "b", "c"}, paneNames(m.ActiveGroup().TiledWindows()))

	web, err := m.Group("web")
	require.NoError(t, err)
	require.True(t, web.Empty())

	require.NoError(t, m.Merge("dev", "dev")) // self merge is a no-op
	require.ErrorIs(t, m.Merge("nope", "dev"), ErrUnknownGroup)
	require.ErrorIs(t, m.Merge("dev", "nope"), ErrUnknownGroup)
}

func TestManagerResizeRelaysOut(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	p := m.SpawnPane("editor")
	require.Equal(t, 100, p.Rect().W)

	m.Resize(geometry.NewRect(0, 0, 80, 24))
	require.Equal(t, 80, p.Rect().W)
	require.Equal(t, 24, p.Rect().H)
}

func TestManagerInfo(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, "dev", "web")
	m.SpawnPane("editor")

	info := m.Info()
	require.Equal(t, "dev", info["active"])
	require.Equal(t, "main", info["screen"])
	require.Len(t, info["groups"], 2)
}
