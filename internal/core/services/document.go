package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/manifest"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService loads, edits and persists map documents through a package store.
type DocumentService struct {
	store     driven.PackageStore
	assetName func(ext string) string
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.PackageStore) *DocumentService {
	return &DocumentService{
		store:     store,
		assetName: newAssetName,
	}
}

// newAssetName generates a unique asset name keeping the file extension.
func newAssetName(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if ext == "" {
		return uuid.NewString()
	}
	return uuid.NewString() + "." + ext
}

// Create writes a new, empty document at location.
func (s *DocumentService) Create(
	ctx context.Context, location, name string, settings domain.WorldSettings,
) (*domain.Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("world name is required: %w", domain.ErrInvalidInput)
	}
	exists, err := s.store.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", location, err)
	}
	if exists {
		return nil, fmt.Errorf("document %s: %w", location, domain.ErrAlreadyExists)
	}

	doc := domain.NewDocument(domain.Manifest{
		SchemaVersion: domain.LatestSchemaVersion,
		Name:          name,
		World:         settings,
		Pins:          []domain.Pin{},
	}, nil)
	if err := s.Save(ctx, location, doc); err != nil {
		return nil, err
	}
	logger.Info("Created document %s (%s, seed %d)", location, settings.GeneratorVersion, settings.Seed)
	return doc, nil
}

// Open loads the document at location, migrating older manifests in memory.
// A document with dangling image references still opens; Save refuses it.
func (s *DocumentService) Open(ctx context.Context, location string) (*domain.Document, error) {
	pkg, err := s.store.Read(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	m, err := manifest.Decode(pkg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", location, err)
	}
	doc := domain.NewDocument(m, pkg.Assets)
	if err := doc.Validate(); err != nil {
		logger.Warn("Document %s: %v", location, err)
	}
	logger.Debug("Opened %s: %d pins, %d assets", location, len(doc.Manifest.Pins), len(doc.Assets))
	return doc, nil
}

// Save writes doc to location using the latest manifest revision.
func (s *DocumentService) Save(ctx context.Context, location string, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document: %w", domain.ErrInvalidInput)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("save %s: %w", location, err)
	}
	data, err := manifest.Encode(doc.Manifest)
	if err != nil {
		return fmt.Errorf("encode %s: %w", location, err)
	}
	if err := s.store.Write(ctx, location, &driven.Package{Manifest: data, Assets: doc.Assets}); err != nil {
		return fmt.Errorf("write %s: %w", location, err)
	}
	return nil
}

// AddPin appends pin and returns its index.
func (s *DocumentService) AddPin(ctx context.Context, location string, pin domain.Pin) (int, error) {
	if strings.TrimSpace(pin.Name) == "" {
		return 0, fmt.Errorf("pin name is required: %w", domain.ErrInvalidInput)
	}
	var index int
	err := s.edit(ctx, location, func(doc *domain.Document) error {
		doc.AddPin(pin)
		index = len(doc.Manifest.Pins) - 1
		return nil
	})
	return index, err
}

// RemovePins removes the pins at indices and sweeps orphaned assets.
func (s *DocumentService) RemovePins(ctx context.Context, location string, indices []int) error {
	return s.edit(ctx, location, func(doc *domain.Document) error {
		return doc.RemovePins(indices)
	})
}

// UpdatePin replaces the pin at index.
func (s *DocumentService) UpdatePin(ctx context.Context, location string, index int, pin domain.Pin) error {
	if strings.TrimSpace(pin.Name) == "" {
		return fmt.Errorf("pin name is required: %w", domain.ErrInvalidInput)
	}
	return s.edit(ctx, location, func(doc *domain.Document) error {
		return doc.UpdatePin(index, pin)
	})
}

// AttachImage stores data under a generated name and links it to the pin at index.
func (s *DocumentService) AttachImage(
	ctx context.Context, location string, index int, ext string, data []byte,
) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image: %w", domain.ErrInvalidInput)
	}
	name := s.assetName(ext)
	err := s.edit(ctx, location, func(doc *domain.Document) error {
		return doc.AttachImage(index, name, data)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// EditWorld replaces the world settings.
func (s *DocumentService) EditWorld(ctx context.Context, location string, settings domain.WorldSettings) error {
	return s.edit(ctx, location, func(doc *domain.Document) error {
		doc.EditWorld(settings)
		return nil
	})
}

// PushRecentLocation records p in the document history.
func (s *DocumentService) PushRecentLocation(
	ctx context.Context, location string, p domain.Point,
) (domain.Point, error) {
	var current domain.Point
	err := s.edit(ctx, location, func(doc *domain.Document) error {
		current = doc.PushRecentLocation(p)
		return nil
	})
	return current, err
}

// RemoveRecentLocation removes the recent location at index.
func (s *DocumentService) RemoveRecentLocation(ctx context.Context, location string, index int) error {
	return s.edit(ctx, location, func(doc *domain.Document) error {
		return doc.RemoveRecentLocation(index)
	})
}

// Tags returns the sorted union of the document's pin tags.
func (s *DocumentService) Tags(ctx context.Context, location string) ([]string, error) {
	doc, err := s.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	return doc.AllTags(), nil
}

// List returns the stored document locations, sorted.
func (s *DocumentService) List(ctx context.Context) ([]string, error) {
	locations, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	slices.Sort(locations)
	return locations, nil
}

// edit opens the document, applies fn, and saves the result.
// Nothing is written if fn fails.
func (s *DocumentService) edit(ctx context.Context, location string, fn func(*domain.Document) error) error {
	doc, err := s.Open(ctx, location)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			logger.Debug("Edit of %s rejected: %v", location, err)
		}
		return err
	}
	return s.Save(ctx, location, doc)
}
