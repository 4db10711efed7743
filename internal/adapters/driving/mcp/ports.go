// Package mcp serves one map document over the Model Context Protocol:
// search_map, list_pins and add_pin tools plus read-only resources for the
// manifest, recent locations and single pins.
package mcp

import (
	"errors"

	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
)

var (
	ErrMissingSearchService   = errors.New("mcp: search service is required")
	ErrMissingDocumentService = errors.New("mcp: document service is required")
	ErrMissingLocation        = errors.New("mcp: no document to serve")
)

// Ports are the services the tools and resources call.
type Ports struct {
	Search   driving.SearchService
	Document driving.DocumentService

	// Settings supplies the default dimension and structure radius for
	// search_map. Optional.
	Settings driving.SettingsService
}

// Validate reports the first missing required port.
func (p *Ports) Validate() error {
	switch {
	case p.Search == nil:
		return ErrMissingSearchService
	case p.Document == nil:
		return ErrMissingDocumentService
	}
	return nil
}
