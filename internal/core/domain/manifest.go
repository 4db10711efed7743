package domain

import (
	"slices"
)

// LatestSchemaVersion is the newest manifest schema this build understands.
const LatestSchemaVersion = 2

// TagsSchemaVersion is the schema version that introduced pin tags.
const TagsSchemaVersion = 2

// Manifest is the canonical, latest-version description of a map document.
// Older schema revisions never escape the manifest resolver.
type Manifest struct {
	// SchemaVersion is the schema revision the manifest conforms to.
	SchemaVersion int `json:"manifestVersion"`

	// Name is the world's display name.
	Name string `json:"name"`

	// World identifies the generated world.
	World WorldSettings `json:"worldSettings"`

	// Pins are the player-created pins in document order.
	Pins []Pin `json:"pins"`

	// RecentLocations is the history of visited points.
	RecentLocations RecentLocations `json:"recentLocations,omitempty"`
}

// AllTags returns the union of every pin's tags, sorted.
// Manifests older than the tag schema always report no tags.
func (m *Manifest) AllTags() []string {
	if m.SchemaVersion < TagsSchemaVersion {
		return []string{}
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, pin := range m.Pins {
		for _, tag := range pin.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}

// Clone returns a deep copy of the manifest.
func (m Manifest) Clone() Manifest {
	pins := make([]Pin, len(m.Pins))
	for i, pin := range m.Pins {
		pins[i] = pin.Clone()
	}
	m.Pins = pins
	m.RecentLocations = slices.Clone(m.RecentLocations)
	return m
}

// SampleManifest is the template used when creating a new world.
func SampleManifest() Manifest {
	return Manifest{
		SchemaVersion: LatestSchemaVersion,
		Name:          "My World",
		World:         WorldSettings{GeneratorVersion: "1.21.3", Seed: 123},
		Pins:          []Pin{NewPin(Origin, "Spawn")},
	}
}
