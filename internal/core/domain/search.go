package domain

// DefaultStructureRadius is the default structure search radius.
const DefaultStructureRadius int32 = 20

// BiomeSearchRadius is the fixed biome search radius.
const BiomeSearchRadius int32 = 8000

// DefaultOriginY is the height a horizontal position is lifted to when it
// becomes a search origin.
const DefaultOriginY int32 = 15

// SearchOptions configures a single search call.
type SearchOptions struct {
	// Origin is the position results are ranked from.
	Origin Point3

	// Dimension is the world layer to query.
	Dimension Dimension

	// StructureRadius is the structure search radius.
	// Zero means DefaultStructureRadius.
	StructureRadius int32
}

// DefaultSearchOptions searches the overworld from the origin.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Dimension:       DimensionOverworld,
		StructureRadius: DefaultStructureRadius,
	}
}

// EffectiveStructureRadius returns the radius to query with.
func (o SearchOptions) EffectiveStructureRadius() int32 {
	if o.StructureRadius <= 0 {
		return DefaultStructureRadius
	}
	return o.StructureRadius
}

// SearchResult groups the matches of one query by source.
// The groups are never interleaved; structures and biomes are each ordered
// by Manhattan distance from the search origin.
type SearchResult struct {
	// Pins are document pins whose names contain the query, in document order.
	Pins []Pin `json:"pins"`

	// Coordinates holds the literal coordinate the query spelled out, if any.
	Coordinates []Point `json:"coordinates"`

	// Biomes are nearby biomes matching the query, nearest first.
	Biomes []Pin `json:"biomes"`

	// Structures are nearby structures matching the query, nearest first.
	Structures []Pin `json:"structures"`
}

// NewSearchResult creates an empty result bundle.
func NewSearchResult() SearchResult {
	return SearchResult{
		Pins:        []Pin{},
		Coordinates: []Point{},
		Biomes:      []Pin{},
		Structures:  []Pin{},
	}
}

// IsEmpty returns true if no group has any match.
func (r SearchResult) IsEmpty() bool {
	return len(r.Pins) == 0 && len(r.Coordinates) == 0 && len(r.Biomes) == 0 && len(r.Structures) == 0
}

// Count returns the total number of matches across all groups.
func (r SearchResult) Count() int {
	return len(r.Pins) + len(r.Coordinates) + len(r.Biomes) + len(r.Structures)
}
