package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/manifest"
)

const (
	uriScheme  = "mcmaps://"
	pinsPrefix = uriScheme + "pins/"
	jsonMIME   = "application/json"
)

// RecentOutput is one entry of the recents resource.
type RecentOutput struct {
	Age int     `json:"age"`
	X   float64 `json:"x"`
	Z   float64 `json:"z"`
}

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "manifest",
		Name:        "manifest",
		Description: "The map document manifest: world settings, pins, and recent locations",
		MIMEType:    jsonMIME,
	}, s.handleManifestResource)
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recents",
		Name:        "recents",
		Description: "Recently visited locations, newest first",
		MIMEType:    jsonMIME,
	}, s.handleRecentsResource)
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: pinsPrefix + "{index}",
		Name:        "pin",
		Description: "A single pin by its index in the document",
		MIMEType:    jsonMIME,
	}, s.handlePinResource)
}

// jsonResult wraps already encoded JSON as the sole content of a read.
func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{URI: uri, MIMEType: jsonMIME, Text: string(data)}},
	}
}

func (s *Server) document(ctx context.Context) (*domain.Document, error) {
	doc, err := s.ports.Document.Open(ctx, s.location)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return doc, nil
}

// handleManifestResource returns the manifest exactly as it would be saved.
func (s *Server) handleManifestResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	data, err := manifest.Encode(doc.Manifest)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleRecentsResource lists recent locations newest first. Age 0 is the
// current location.
func (s *Server) handleRecentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	recents := slices.Clone(doc.Manifest.RecentLocations)
	slices.Reverse(recents)

	out := make([]RecentOutput, len(recents))
	for age, p := range recents {
		out[age] = RecentOutput{Age: age, X: p.X, Z: p.Y}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recents: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

func (s *Server) handlePinResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	index, ok := extractPinIndex(uri)
	if !ok {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	pin, err := doc.Pin(index)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	data, err := json.MarshalIndent(pinOutputs([]domain.Pin{pin}, []int{index})[0], "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling pin: %w", err)
	}
	return jsonResult(uri, data), nil
}

// extractPinIndex parses the index out of mcmaps://pins/{index}.
func extractPinIndex(uri string) (int, bool) {
	raw, found := strings.CutPrefix(uri, pinsPrefix)
	if !found {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
