// Package catalog lists the structure and biome kinds the world oracle can
// locate and resolves free-text search queries to them.
package catalog

import (
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// StructureKind is a structure the world oracle can locate.
type StructureKind struct {
	// ID is the canonical identifier, e.g. "ocean_monument".
	ID string

	// Name is the display name, e.g. "Ocean Monument".
	Name string

	// Dimension is the dimension the structure generates in.
	Dimension domain.Dimension

	// Color is the pin color search results are drawn with.
	Color domain.PinColor
}

// Structures is the fixed structure table.
var Structures = []StructureKind{
	{"village", "Village", domain.DimensionOverworld, domain.PinColorBrown},
	{"desert_pyramid", "Desert Pyramid", domain.DimensionOverworld, domain.PinColorYellow},
	{"jungle_temple", "Jungle Temple", domain.DimensionOverworld, domain.PinColorGreen},
	{"swamp_hut", "Swamp Hut", domain.DimensionOverworld, domain.PinColorIndigo},
	{"igloo", "Igloo", domain.DimensionOverworld, domain.PinColorGray},
	{"ocean_ruin", "Ocean Ruins", domain.DimensionOverworld, domain.PinColorBlue},
	{"shipwreck", "Shipwreck", domain.DimensionOverworld, domain.PinColorBrown},
	{"ocean_monument", "Ocean Monument", domain.DimensionOverworld, domain.PinColorBlue},
	{"woodland_mansion", "Woodland Mansion", domain.DimensionOverworld, domain.PinColorBrown},
	{"pillager_outpost", "Pillager Outpost", domain.DimensionOverworld, domain.PinColorGray},
	{"ruined_portal", "Ruined Portal", domain.DimensionOverworld, domain.PinColorPink},
	{"ancient_city", "Ancient City", domain.DimensionOverworld, domain.PinColorIndigo},
	{"trail_ruins", "Trail Ruins", domain.DimensionOverworld, domain.PinColorOrange},
	{"trial_chambers", "Trial Chambers", domain.DimensionOverworld, domain.PinColorOrange},
	{"buried_treasure", "Buried Treasure", domain.DimensionOverworld, domain.PinColorYellow},
	{"mineshaft", "Mineshaft", domain.DimensionOverworld, domain.PinColorGray},
	{"desert_well", "Desert Well", domain.DimensionOverworld, domain.PinColorYellow},
	{"amethyst_geode", "Amethyst Geode", domain.DimensionOverworld, domain.PinColorPink},
	{"nether_fortress", "Nether Fortress", domain.DimensionNether, domain.PinColorRed},
	{"bastion_remnant", "Bastion Remnant", domain.DimensionNether, domain.PinColorGray},
	{"end_city", "End City", domain.DimensionEnd, domain.PinColorPink},
}

// ResolveStructure matches a query against structure IDs and display names,
// ignoring case. Underscores in IDs may be typed as spaces.
func ResolveStructure(query string) (StructureKind, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return StructureKind{}, false
	}
	for _, kind := range Structures {
		if q == kind.ID || q == strings.ReplaceAll(kind.ID, "_", " ") || q == strings.ToLower(kind.Name) {
			return kind, true
		}
	}
	return StructureKind{}, false
}

// StructureByID returns the structure with the given canonical ID.
func StructureByID(id string) (StructureKind, bool) {
	for _, kind := range Structures {
		if kind.ID == id {
			return kind, true
		}
	}
	return StructureKind{}, false
}
