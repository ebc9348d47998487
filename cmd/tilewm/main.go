package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renn/tilewm/internal/config"
	"github.com/renn/tilewm/internal/layout"
	"github.com/renn/tilewm/internal/session"
	"github.com/renn/tilewm/internal/tui"
	"github.com/renn/tilewm/internal/wm"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Session.Path), 0o755); err != nil {
		log.Fatalf("mkdir session dir: %v", err)
	}

	db, err := session.Open(cfg.Session.Path)
	if err != nil {
		log.Fatalf("open session db: %v", err)
	}
	defer db.Close()

	if err := session.RunMigrationsWithDB(db, "internal/session/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	store := session.NewStore(db)

	manager := wm.NewManager(cfg.UI.ScreenName, cfg.Layout.FocusWarp,
		cfg.Workspaces.Names, layoutTemplates(cfg))

	if cfg.Session.Restore {
		records, err := store.Load(ctx)
		if err != nil {
			log.Printf("warn: session restore failed: %v", err)
		} else {
			session.Restore(manager, records)
		}
	}

	p := tea.NewProgram(tui.New(cfg, manager, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// layoutTemplates builds the layout set every workspace clones from, with
// the configured default first in the cycle.
func layoutTemplates(cfg config.Config) []layout.Layout {
	templates := []layout.Layout{
		layout.NewMax(),
		layout.NewMatrix(cfg.Layout.MatrixColumns),
	}
	if cfg.Layout.Default != "" && templates[0].Name() != cfg.Layout.Default {
		for i, t := range templates {
			if t.Name() == cfg.Layout.Default {
				templates[0], templates[i] = templates[i], templates[0]
				break
			}
		}
	}
	return templates
}
