package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renn/tilewm/internal/geometry"
	"github.com/renn/tilewm/internal/layout"
	"github.com/renn/tilewm/internal/wm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)

	// Empty database yields an empty snapshot.
	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	snap := []WorkspaceRecord{
		{
			Name:   "dev",
			Layout: "matrix",
			Active: true,
			Panes: []PaneRecord{
				{ID: "p1", Title: "editor", Focused: true},
				{ID: "p2", Title: "shell"},
				{ID: "p3", Title: "scratch", Floating: true},
			},
		},
		{Name: "web", Layout: "max"},
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, snap, got)
}

func TestStoreSaveReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, []WorkspaceRecord{
		{Name: "dev", Layout: "max", Active: true,
			Panes: []PaneRecord{{ID: "p1", Title: "old"}}},
	}))
	require.NoError(t, store.Save(ctx, []WorkspaceRecord{
		{Name: "web", Layout: "matrix", Active: true},
	}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "web", got[0].Name)
	require.Empty(t, got[0].Panes)
}

func newSnapshotManager() *wm.Manager {
	templates := []layout.Layout{layout.NewMax(), layout.NewMatrix(2)}
	m := wm.NewManager("main", false, []string{"dev", "web"}, templates)
	m.Resize(geometry.NewRect(0, 0, 100, 30))
	return m
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	m := newSnapshotManager()
	m.SpawnPane("editor")
	shell := m.SpawnPane("shell")
	float := m.SpawnPane("scratch")
	m.ActiveGroup().ToggleFloating(float)
	m.ActiveGroup().Focus(shell, false)
	require.NoError(t, m.ActiveGroup().SetLayout("matrix"))
	require.NoError(t, m.Activate("web"))
	m.SpawnPane("browser")
	require.NoError(t, m.Activate("dev"))

	snap := Snapshot(m)
	require.Len(t, snap, 2)
	require.Equal(t, "dev", snap[0].Name)
	require.Equal(t, "matrix", snap[0].Layout)
	require.True(t, snap[0].Active)
	require.Len(t, snap[0].Panes, 3)
	require.Equal(t, "scratch", snap[0].Panes[2].Title)
	require.True(t, snap[0].Panes[2].Floating)

	fresh := newSnapshotManager()
	Restore(fresh, snap)

	dev := fresh.ActiveGroup()
	require.Equal(t, "dev", dev.Name())
	require.Equal(t, "matrix", dev.LayoutName())
	require.Equal(t, []string{"editor", "shell"}, windowNames(dev.TiledWindows()))
	require.Equal(t, []string{"scratch"}, windowNames(dev.FloatingWindows()))
	require.Equal(t, "shell", dev.Focused().Name())

	web, err := fresh.Group("web")
	require.NoError(t, err)
	require.Equal(t, []string{"browser"}, windowNames(web.TiledWindows()))

	// Pane identities survive the round trip.
	restored := dev.Focused().(*wm.Pane)
	require.Equal(t, shell.ID(), restored.ID())
}

func TestRestoreSkipsUnknownWorkspaces(t *testing.T) {
	t.Parallel()

	m := newSnapshotManager()
	Restore(m, []WorkspaceRecord{
		{Name: "ghost", Layout: "max", Active: true,
			Panes: []PaneRecord{{ID: "p1", Title: "lost"}}},
		{Name: "dev", Layout: "spiral",
			Panes: []PaneRecord{{ID: "p2", Title: "editor", Focused: true}}},
	})

	require.Equal(t, "dev", m.ActiveGroup().Name())
	require.Equal(t, "max", m.ActiveGroup().LayoutName()) // unknown layout kept default
	require.Equal(t, []string{"editor"}, windowNames(m.ActiveGroup().TiledWindows()))
}

func windowNames(ws []layout.Window) []string {
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = w.Name()
	}
	return names
}
