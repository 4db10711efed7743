package catalog

import (
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BiomeKind is a biome the world oracle can locate.
type BiomeKind struct {
	// ID is the canonical identifier, e.g. "cherry_grove".
	ID string

	// Name is the current display name.
	Name string

	// Since is the first game version the biome generates in.
	Since string

	// Renamed lists earlier display names, newest first.
	Renamed []BiomeName
}

// BiomeName is a display name used before a given game version.
type BiomeName struct {
	Before string
	Name   string
}

// Biomes is the fixed biome table.
var Biomes = []BiomeKind{
	{ID: "ocean", Name: "Ocean", Since: "1.0"},
	{ID: "deep_ocean", Name: "Deep Ocean", Since: "1.0"},
	{ID: "warm_ocean", Name: "Warm Ocean", Since: "1.13"},
	{ID: "lukewarm_ocean", Name: "Lukewarm Ocean", Since: "1.13"},
	{ID: "cold_ocean", Name: "Cold Ocean", Since: "1.13"},
	{ID: "frozen_ocean", Name: "Frozen Ocean", Since: "1.0"},
	{ID: "plains", Name: "Plains", Since: "1.0"},
	{ID: "sunflower_plains", Name: "Sunflower Plains", Since: "1.7"},
	{ID: "snowy_plains", Name: "Snowy Plains", Since: "1.0", Renamed: []BiomeName{{"1.18", "Snowy Tundra"}}},
	{ID: "ice_spikes", Name: "Ice Spikes", Since: "1.7"},
	{ID: "desert", Name: "Desert", Since: "1.0"},
	{ID: "swamp", Name: "Swamp", Since: "1.0"},
	{ID: "mangrove_swamp", Name: "Mangrove Swamp", Since: "1.19"},
	{ID: "forest", Name: "Forest", Since: "1.0"},
	{ID: "flower_forest", Name: "Flower Forest", Since: "1.7"},
	{ID: "birch_forest", Name: "Birch Forest", Since: "1.7"},
	{ID: "dark_forest", Name: "Dark Forest", Since: "1.7"},
	{ID: "old_growth_birch_forest", Name: "Old Growth Birch Forest", Since: "1.7", Renamed: []BiomeName{{"1.18", "Tall Birch Forest"}}},
	{ID: "taiga", Name: "Taiga", Since: "1.0"},
	{ID: "snowy_taiga", Name: "Snowy Taiga", Since: "1.7"},
	{ID: "old_growth_pine_taiga", Name: "Old Growth Pine Taiga", Since: "1.7", Renamed: []BiomeName{{"1.18", "Giant Tree Taiga"}}},
	{ID: "savanna", Name: "Savanna", Since: "1.7"},
	{ID: "jungle", Name: "Jungle", Since: "1.0"},
	{ID: "sparse_jungle", Name: "Sparse Jungle", Since: "1.0", Renamed: []BiomeName{{"1.18", "Jungle Edge"}}},
	{ID: "bamboo_jungle", Name: "Bamboo Jungle", Since: "1.14"},
	{ID: "badlands", Name: "Badlands", Since: "1.7", Renamed: []BiomeName{{"1.13", "Mesa"}}},
	{ID: "eroded_badlands", Name: "Eroded Badlands", Since: "1.7"},
	{ID: "meadow", Name: "Meadow", Since: "1.18"},
	{ID: "cherry_grove", Name: "Cherry Grove", Since: "1.20"},
	{ID: "grove", Name: "Grove", Since: "1.18"},
	{ID: "snowy_slopes", Name: "Snowy Slopes", Since: "1.18"},
	{ID: "jagged_peaks", Name: "Jagged Peaks", Since: "1.18"},
	{ID: "frozen_peaks", Name: "Frozen Peaks", Since: "1.18"},
	{ID: "stony_peaks", Name: "Stony Peaks", Since: "1.18"},
	{ID: "windswept_hills", Name: "Windswept Hills", Since: "1.0", Renamed: []BiomeName{{"1.18", "Mountains"}, {"1.13", "Extreme Hills"}}},
	{ID: "river", Name: "River", Since: "1.0"},
	{ID: "frozen_river", Name: "Frozen River", Since: "1.0"},
	{ID: "beach", Name: "Beach", Since: "1.0"},
	{ID: "snowy_beach", Name: "Snowy Beach", Since: "1.7"},
	{ID: "stony_shore", Name: "Stony Shore", Since: "1.7", Renamed: []BiomeName{{"1.18", "Stone Shore"}}},
	{ID: "mushroom_fields", Name: "Mushroom Fields", Since: "1.0"},
	{ID: "dripstone_caves", Name: "Dripstone Caves", Since: "1.18"},
	{ID: "lush_caves", Name: "Lush Caves", Since: "1.18"},
	{ID: "deep_dark", Name: "Deep Dark", Since: "1.19"},
	{ID: "pale_garden", Name: "Pale Garden", Since: "1.21.4"},
	{ID: "nether_wastes", Name: "Nether Wastes", Since: "1.0"},
	{ID: "soul_sand_valley", Name: "Soul Sand Valley", Since: "1.16"},
	{ID: "crimson_forest", Name: "Crimson Forest", Since: "1.16"},
	{ID: "warped_forest", Name: "Warped Forest", Since: "1.16"},
	{ID: "basalt_deltas", Name: "Basalt Deltas", Since: "1.16"},
	{ID: "the_end", Name: "The End", Since: "1.0"},
	{ID: "end_highlands", Name: "End Highlands", Since: "1.9"},
	{ID: "end_midlands", Name: "End Midlands", Since: "1.9"},
	{ID: "small_end_islands", Name: "Small End Islands", Since: "1.9"},
	{ID: "end_barrens", Name: "End Barrens", Since: "1.9"},
}

// LocalizedName returns the display name the biome carried in the given game version.
func (b BiomeKind) LocalizedName(gameVersion string) string {
	v, err := semver.NewVersion(gameVersion)
	if err != nil {
		return b.Name
	}
	name := b.Name
	for _, renamed := range b.Renamed {
		if v.LessThan(semver.MustParse(renamed.Before)) {
			name = renamed.Name
		}
	}
	return name
}

// AvailableIn returns true if the biome generates in the given game version.
func (b BiomeKind) AvailableIn(gameVersion string) bool {
	v, err := semver.NewVersion(gameVersion)
	if err != nil {
		return false
	}
	return !v.LessThan(semver.MustParse(b.Since))
}

// ResolveBiome matches a query against the localized biome names of a game
// version, ignoring case. Biomes that do not generate in that version never match.
func ResolveBiome(query, gameVersion string) (BiomeKind, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return BiomeKind{}, false
	}
	for _, kind := range Biomes {
		if !kind.AvailableIn(gameVersion) {
			continue
		}
		if q == strings.ToLower(kind.LocalizedName(gameVersion)) {
			return kind, true
		}
	}
	return BiomeKind{}, false
}

// BiomeByID returns the biome with the given canonical ID.
func BiomeByID(id string) (BiomeKind, bool) {
	for _, kind := range Biomes {
		if kind.ID == id {
			return kind, true
		}
	}
	return BiomeKind{}, false
}

// Names lists every display name a query can resolve to in gameVersion:
// structure names and the biome names of that version, sorted.
func Names(gameVersion string) []string {
	names := make([]string, 0, len(Structures)+len(Biomes))
	for _, kind := range Structures {
		names = append(names, kind.Name)
	}
	for _, kind := range Biomes {
		if kind.AvailableIn(gameVersion) {
			names = append(names, kind.LocalizedName(gameVersion))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
