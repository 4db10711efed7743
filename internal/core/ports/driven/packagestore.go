package driven

import (
	"context"
)

// Package is the persisted form of a document: manifest bytes plus named
// image assets stored beside it.
type Package struct {
	// Manifest is the raw manifest bytes, in whatever revision was written.
	Manifest []byte

	// Assets maps asset names to their bytes.
	Assets map[string][]byte
}

// PackageStore reads and writes document packages addressed by location.
// Stores move bytes only; decoding and migration belong to the core.
type PackageStore interface {
	// Read loads the package at location.
	// Returns domain.ErrNotFound if nothing is stored there.
	Read(ctx context.Context, location string) (*Package, error)

	// Write replaces the package at location. Assets absent from pkg are
	// removed from storage.
	Write(ctx context.Context, location string, pkg *Package) error

	// Exists reports whether a package is stored at location.
	Exists(ctx context.Context, location string) (bool, error)

	// List returns the locations of every stored package, if the store can enumerate them.
	List(ctx context.Context) ([]string, error)
}
