package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

func (s *Store) Read(ctx context.Context, location string) (*driven.Package, error) {
	pkg := &driven.Package{Assets: make(map[string][]byte)}

	err := s.db.QueryRowContext(ctx,
		"SELECT manifest FROM documents WHERE location = ?", location,
	).Scan(&pkg.Manifest)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%s: %w", location, domain.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, data FROM assets WHERE location = ?", location)
	if err != nil {
		return nil, fmt.Errorf("reading assets of %s: %w", location, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var data []byte
		if err := rows.Scan(&name, &data); err != nil {
			return nil, fmt.Errorf("reading assets of %s: %w", location, err)
		}
		pkg.Assets[name] = data
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading assets of %s: %w", location, err)
	}
	return pkg, nil
}

// Write stores pkg under location in one transaction. Assets missing from
// pkg are deleted; the rest are inserted or overwritten.
func (s *Store) Write(ctx context.Context, location string, pkg *driven.Package) error {
	if pkg == nil {
		return fmt.Errorf("nil package: %w", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing %s: %w", location, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (location, manifest, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(location) DO UPDATE SET
			manifest = excluded.manifest,
			updated_at = excluded.updated_at`,
		location, pkg.Manifest, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("writing %s: %w", location, err)
	}

	stale, err := staleAssets(ctx, tx, location, pkg.Assets)
	if err != nil {
		return err
	}
	for _, name := range stale {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM assets WHERE location = ? AND name = ?", location, name,
		); err != nil {
			return fmt.Errorf("removing asset %s: %w", name, err)
		}
	}

	for name, data := range pkg.Assets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO assets (location, name, data) VALUES (?, ?, ?)
			ON CONFLICT(location, name) DO UPDATE SET data = excluded.data`,
			location, name, data,
		); err != nil {
			return fmt.Errorf("writing asset %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", location, err)
	}
	return nil
}

// staleAssets lists stored asset names under location that keep does not
// contain.
func staleAssets(ctx context.Context, tx *sql.Tx, location string, keep map[string][]byte) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT name FROM assets WHERE location = ?", location)
	if err != nil {
		return nil, fmt.Errorf("listing assets of %s: %w", location, err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing assets of %s: %w", location, err)
		}
		if _, ok := keep[name]; !ok {
			stale = append(stale, name)
		}
	}
	return stale, rows.Err()
}

func (s *Store) Exists(ctx context.Context, location string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM documents WHERE location = ?)", location,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s: %w", location, err)
	}
	return exists, nil
}

// List returns stored locations, most recently written first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT location FROM documents ORDER BY updated_at DESC, location")
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("listing documents: %w", err)
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// Delete removes location and, by cascade, its assets.
func (s *Store) Delete(ctx context.Context, location string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE location = ?", location)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", location, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("deleting %s: %w", location, err)
	} else if n == 0 {
		return fmt.Errorf("%s: %w", location, domain.ErrNotFound)
	}
	return nil
}
