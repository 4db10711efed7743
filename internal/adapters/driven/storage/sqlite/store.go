package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

const dbFile = "library.db"

// pragmas run on every pooled connection.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
}

var _ driven.PackageStore = (*Store)(nil)

// Store is a library database holding many document packages.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens dir/library.db, creating and migrating it as needed. An
// empty dir means ~/.mcmaps/library.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".mcmaps", "library")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(context.Background(), migrations.FS); err != nil {
		db.Close() //nolint:errcheck,gosec // migration error wins
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("Opened library %s", path)
	return s, nil
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Path is the database file.
func (s *Store) Path() string {
	return s.path
}
