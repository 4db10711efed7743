// Package tui is the interactive terminal front end: a menu, a search box
// with result actions, and browsable pin and recent-location lists.
package tui

import (
	"errors"

	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
)

var (
	ErrMissingSearchService   = errors.New("tui: search service is required")
	ErrMissingDocumentService = errors.New("tui: document service is required")
	ErrMissingLocation        = errors.New("tui: no document to open")
)

// Ports are the services the views call. Settings is optional.
type Ports struct {
	Search   driving.SearchService
	Document driving.DocumentService
	Settings driving.SettingsService
}

func NewPorts(
	search driving.SearchService,
	document driving.DocumentService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{Search: search, Document: document, Settings: settings}
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
