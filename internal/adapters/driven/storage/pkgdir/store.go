// Package pkgdir stores map documents as package directories: the manifest
// in Info.json and each image asset as a file under Images/.
package pkgdir

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// Package layout names.
const (
	ManifestFile = "Info.json"
	ImagesDir    = "Images"
)

// Ensure Store implements the interface.
var _ driven.PackageStore = (*Store)(nil)

// Store reads and writes package directories.
// Relative locations resolve against the root directory.
type Store struct {
	root string
}

// NewStore creates a package directory store rooted at root.
// If root is empty, the working directory is used.
func NewStore(root string) *Store {
	if root == "" {
		root = "."
	}
	return &Store{root: root}
}

// Resolve returns the directory a location refers to.
func (s *Store) Resolve(location string) string {
	if filepath.IsAbs(location) {
		return filepath.Clean(location)
	}
	return filepath.Join(s.root, location)
}

// Read loads Info.json and every file under Images/.
func (s *Store) Read(_ context.Context, location string) (*driven.Package, error) {
	dir := s.Resolve(location)

	manifest, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	assets := make(map[string][]byte)
	entries, err := os.ReadDir(filepath.Join(dir, ImagesDir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading images: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, ImagesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", entry.Name(), err)
		}
		assets[entry.Name()] = data
	}

	return &driven.Package{Manifest: manifest, Assets: assets}, nil
}

// Write replaces Info.json, writes every asset, and deletes image files
// that are no longer in the asset map.
func (s *Store) Write(_ context.Context, location string, pkg *driven.Package) error {
	if pkg == nil {
		return domain.ErrInvalidInput
	}
	for name := range pkg.Assets {
		if err := checkAssetName(name); err != nil {
			return err
		}
	}

	dir := s.Resolve(location)
	images := filepath.Join(dir, ImagesDir)
	if err := os.MkdirAll(images, 0755); err != nil {
		return fmt.Errorf("creating package directory: %w", err)
	}

	for name, data := range pkg.Assets {
		if err := writeFileAtomic(filepath.Join(images, name), data); err != nil {
			return fmt.Errorf("writing image %s: %w", name, err)
		}
	}
	if err := writeFileAtomic(filepath.Join(dir, ManifestFile), pkg.Manifest); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	entries, err := os.ReadDir(images)
	if err != nil {
		return fmt.Errorf("reading images: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, ok := pkg.Assets[entry.Name()]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(images, entry.Name())); err != nil {
			return fmt.Errorf("removing orphaned image %s: %w", entry.Name(), err)
		}
		logger.Debug("Removed orphaned image %s", entry.Name())
	}

	return nil
}

// Exists reports whether location holds an Info.json.
func (s *Store) Exists(_ context.Context, location string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.Resolve(location), ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns the packages directly under the root directory.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.root, err)
	}

	var locations []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, entry.Name(), ManifestFile)); err == nil {
			locations = append(locations, entry.Name())
		}
	}
	sort.Strings(locations)
	return locations, nil
}

// checkAssetName rejects names that would escape the Images directory.
func checkAssetName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("asset name %q: %w", name, domain.ErrInvalidInput)
	}
	return nil
}

// writeFileAtomic writes data to a temporary file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
