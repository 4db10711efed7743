package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// SearchInput is the input schema for the search_map tool.
type SearchInput struct {
	Query     string `json:"query" jsonschema:"coordinates like '120, -40', a pin name, a structure, or a biome"`
	OriginX   *int32 `json:"origin_x,omitempty" jsonschema:"x coordinate results are ranked from (default: current location)"`
	OriginZ   *int32 `json:"origin_z,omitempty" jsonschema:"z coordinate results are ranked from (default: current location)"`
	Dimension string `json:"dimension,omitempty" jsonschema:"overworld, nether, or end"`
	Radius    int32  `json:"radius,omitempty" jsonschema:"structure search radius in blocks"`
}

// SearchOutput is the output schema for the search_map tool.
type SearchOutput struct {
	Coordinates []PinOutput `json:"coordinates"`
	Pins        []PinOutput `json:"pins"`
	Structures  []PinOutput `json:"structures"`
	Biomes      []PinOutput `json:"biomes"`
	Count       int         `json:"count"`
}

// PinOutput represents a pin or a located feature.
type PinOutput struct {
	Index  *int     `json:"index,omitempty"`
	Name   string   `json:"name"`
	X      float64  `json:"x"`
	Z      float64  `json:"z"`
	Color  string   `json:"color,omitempty"`
	Note   string   `json:"note,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Images []string `json:"images,omitempty"`
}

// ListPinsInput is the input schema for the list_pins tool.
type ListPinsInput struct {
	Tag string `json:"tag,omitempty" jsonschema:"only list pins carrying this tag"`
}

// ListPinsOutput is the output schema for the list_pins tool.
type ListPinsOutput struct {
	World string      `json:"world"`
	Pins  []PinOutput `json:"pins"`
	Tags  []string    `json:"tags"`
	Count int         `json:"count"`
}

// AddPinInput is the input schema for the add_pin tool.
type AddPinInput struct {
	Name  string   `json:"name" jsonschema:"pin name"`
	X     float64  `json:"x" jsonschema:"x coordinate"`
	Z     float64  `json:"z" jsonschema:"z coordinate"`
	Color string   `json:"color,omitempty" jsonschema:"red, orange, yellow, green, blue, indigo, brown, gray, or pink"`
	Note  string   `json:"note,omitempty" jsonschema:"free-form description"`
	Tags  []string `json:"tags,omitempty" jsonschema:"tags to attach"`
}

// AddPinOutput is the output schema for the add_pin tool.
type AddPinOutput struct {
	Index int `json:"index"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_map",
		Description: "Search the map for coordinates, pins, structures, and biomes",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pins",
		Description: "List the pins placed on the map",
	}, s.handleListPins)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_pin",
		Description: "Place a new pin on the map",
	}, s.handleAddPin)
}

// handleSearch handles the search_map tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	doc, err := s.ports.Document.Open(ctx, s.location)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	opts, err := s.searchOptions(doc, input)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	result, err := s.ports.Search.Search(ctx, input.Query, doc, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Coordinates: make([]PinOutput, len(result.Coordinates)),
		Pins:        pinOutputs(result.Pins, nil),
		Structures:  pinOutputs(result.Structures, nil),
		Biomes:      pinOutputs(result.Biomes, nil),
		Count:       result.Count(),
	}
	for i, p := range result.Coordinates {
		output.Coordinates[i] = PinOutput{Name: p.Readout(), X: p.X, Z: p.Y}
	}

	return nil, output, nil
}

// handleListPins handles the list_pins tool invocation.
func (s *Server) handleListPins(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListPinsInput,
) (*mcp.CallToolResult, ListPinsOutput, error) {
	doc, err := s.ports.Document.Open(ctx, s.location)
	if err != nil {
		return nil, ListPinsOutput{}, err
	}

	var indices []int
	var pins []domain.Pin
	for i, pin := range doc.Manifest.Pins {
		if input.Tag != "" && !pin.HasTag(input.Tag) {
			continue
		}
		indices = append(indices, i)
		pins = append(pins, pin)
	}

	return nil, ListPinsOutput{
		World: doc.Manifest.Name,
		Pins:  pinOutputs(pins, indices),
		Tags:  doc.AllTags(),
		Count: len(pins),
	}, nil
}

// handleAddPin handles the add_pin tool invocation.
func (s *Server) handleAddPin(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddPinInput,
) (*mcp.CallToolResult, AddPinOutput, error) {
	color, err := domain.ParsePinColor(input.Color)
	if err != nil {
		return nil, AddPinOutput{}, err
	}

	pin := domain.Pin{
		Position: domain.Point{X: input.X, Y: input.Z},
		Name:     input.Name,
		Color:    color,
		Note:     input.Note,
		Tags:     input.Tags,
	}
	index, err := s.ports.Document.AddPin(ctx, s.location, pin)
	if err != nil {
		return nil, AddPinOutput{}, err
	}
	return nil, AddPinOutput{Index: index}, nil
}

// searchOptions fills unset inputs from settings and the document's current location.
func (s *Server) searchOptions(doc *domain.Document, input SearchInput) (domain.SearchOptions, error) {
	current, _ := doc.Manifest.RecentLocations.Latest()
	origin := current.Rounded().ToOrigin(domain.DefaultOriginY)
	if input.OriginX != nil {
		origin.X = *input.OriginX
	}
	if input.OriginZ != nil {
		origin.Z = *input.OriginZ
	}

	opts := domain.DefaultSearchOptions()
	if s.ports.Settings != nil {
		opts = s.ports.Settings.SearchOptions(origin)
	}
	opts.Origin = origin

	if input.Dimension != "" {
		dim, err := domain.ParseDimension(input.Dimension)
		if err != nil {
			return domain.SearchOptions{}, fmt.Errorf("dimension: %w", err)
		}
		opts.Dimension = dim
	}
	if input.Radius > 0 {
		opts.StructureRadius = input.Radius
	}
	return opts, nil
}

// pinOutputs converts pins, attaching document indices when given.
func pinOutputs(pins []domain.Pin, indices []int) []PinOutput {
	out := make([]PinOutput, len(pins))
	for i, pin := range pins {
		out[i] = PinOutput{
			Name:   pin.Name,
			X:      pin.Position.X,
			Z:      pin.Position.Y,
			Color:  string(pin.Color),
			Note:   pin.Note,
			Tags:   pin.Tags,
			Images: pin.Images,
		}
		if indices != nil {
			index := indices[i]
			out[i].Index = &index
		}
	}
	return out
}
