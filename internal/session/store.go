package session

import (
	"context"
	"database/sql"
)

// WorkspaceRecord is the persisted state of one workspace.
type WorkspaceRecord struct {
	Name   string
	Layout string
	Active bool
	Panes  []PaneRecord
}

// PaneRecord is the persisted state of one pane, ordered within its
// workspace by its slice position.
type PaneRecord struct {
	ID       string
	Title    string
	Floating bool
	Focused  bool
}

// Store reads and writes session snapshots.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Save replaces the persisted session with the given snapshot.
func (s *Store) Save(ctx context.Context, workspaces []WorkspaceRecord) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM panes`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM workspaces`); err != nil {
			return err
		}
		for wi, ws := range workspaces {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO workspaces(name, position, layout, active) VALUES (?, ?, ?, ?)
			`, ws.Name, wi, ws.Layout, ws.Active)
			if err != nil {
				return err
			}
			for pi, p := range ws.Panes {
				_, err := tx.ExecContext(ctx, `
				INSERT INTO panes(id, workspace, title, position, floating, focused)
				VALUES (?, ?, ?, ?, ?, ?)
				`, p.ID, ws.Name, p.Title, pi, p.Floating, p.Focused)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Load returns the persisted snapshot in workspace order. An empty database
// yields an empty slice.
func (s *Store) Load(ctx context.Context) ([]WorkspaceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT name, layout, active FROM workspaces ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkspaceRecord
	for rows.Next() {
		var ws WorkspaceRecord
		if err := rows.Scan(&ws.Name, &ws.Layout, &ws.Active); err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		panes, err := s.loadPanes(ctx, out[i].Name)
		if err != nil {
			return nil, err
		}
		out[i].Panes = panes
	}
	return out, nil
}

func (s *Store) loadPanes(ctx context.Context, workspace string) ([]PaneRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, title, floating, focused FROM panes
	WHERE workspace = ? ORDER BY position
	`, workspace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaneRecord
	for rows.Next() {
		var p PaneRecord
		if err := rows.Scan(&p.ID, &p.Title, &p.Floating, &p.Focused); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
