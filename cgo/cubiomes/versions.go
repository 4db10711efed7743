package cubiomes

import (
	"strings"
)

// versionKey reduces a game version to the release line cubiomes models,
// e.g. "1.21.3" becomes "1.21". Snapshot and pre-release suffixes are dropped.
func versionKey(version string) string {
	version = strings.TrimSpace(version)
	if i := strings.IndexAny(version, "-+ "); i >= 0 {
		version = version[:i]
	}
	parts := strings.Split(version, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// structureTypes maps structure kind IDs to cubiomes structure names.
// Kinds cubiomes locates by other means are absent and report no hits.
var structureTypes = map[string]string{
	"desert_pyramid":   "Desert_Pyramid",
	"jungle_temple":    "Jungle_Temple",
	"swamp_hut":        "Swamp_Hut",
	"igloo":            "Igloo",
	"village":          "Village",
	"ocean_ruin":       "Ocean_Ruin",
	"shipwreck":        "Shipwreck",
	"ocean_monument":   "Monument",
	"woodland_mansion": "Mansion",
	"pillager_outpost": "Outpost",
	"ruined_portal":    "Ruined_Portal",
	"ancient_city":     "Ancient_City",
	"trail_ruins":      "Trail_Ruins",
	"trial_chambers":   "Trial_Chambers",
	"buried_treasure":  "Treasure",
	"desert_well":      "Desert_Well",
	"amethyst_geode":   "Geode",
	"nether_fortress":  "Fortress",
	"bastion_remnant":  "Bastion",
	"end_city":         "End_City",
}
