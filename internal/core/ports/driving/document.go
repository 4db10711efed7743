package driving

import (
	"context"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// DocumentService opens, edits and saves map documents.
// Every mutating call loads the package, applies the change, and writes it back.
type DocumentService interface {
	// Create writes a new document at location. Fails if one already exists.
	Create(ctx context.Context, location, name string, settings domain.WorldSettings) (*domain.Document, error)

	// Open loads and migrates the document at location.
	Open(ctx context.Context, location string) (*domain.Document, error)

	// Save writes doc to location in the latest manifest revision.
	Save(ctx context.Context, location string, doc *domain.Document) error

	// AddPin appends a pin and returns its index.
	AddPin(ctx context.Context, location string, pin domain.Pin) (int, error)

	// RemovePins removes the pins at indices as a single operation.
	RemovePins(ctx context.Context, location string, indices []int) error

	// UpdatePin replaces the pin at index.
	UpdatePin(ctx context.Context, location string, index int, pin domain.Pin) error

	// AttachImage stores data as a new asset and links it to the pin at index.
	// Returns the generated asset name.
	AttachImage(ctx context.Context, location string, index int, ext string, data []byte) (string, error)

	// EditWorld replaces the world settings.
	EditWorld(ctx context.Context, location string, settings domain.WorldSettings) error

	// PushRecentLocation records p and returns the current location.
	PushRecentLocation(ctx context.Context, location string, p domain.Point) (domain.Point, error)

	// RemoveRecentLocation removes the recent location at index.
	RemoveRecentLocation(ctx context.Context, location string, index int) error

	// Tags returns the sorted union of pin tags.
	Tags(ctx context.Context, location string) ([]string, error)

	// List returns the locations of every document the store can enumerate.
	List(ctx context.Context) ([]string, error)
}
