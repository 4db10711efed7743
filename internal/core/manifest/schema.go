package manifest

import (
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// schema is the closed set of manifest revisions.
type schema interface {
	schemaVersion() int
}

// Wire structs list their fields alphabetically so the encoder writes sorted keys.

// pinV1 is a pin as written by revision 1.
type pinV1 struct {
	AboutDescription *string       `json:"aboutDescription,omitempty"`
	Color            *string       `json:"color,omitempty"`
	Images           []string      `json:"images,omitempty"`
	Name             *string       `json:"name"`
	Position         *domain.Point `json:"position"`

	// Tags did not exist in revision 1. Hand-edited files may carry them anyway;
	// they are read so the payload still parses and are dropped on upgrade.
	Tags []string `json:"tags,omitempty"`
}

// manifestV1 is the original flat layout with the world settings inlined.
type manifestV1 struct {
	MCVersion       *string        `json:"mcVersion"`
	Name            *string        `json:"name"`
	Pins            []pinV1        `json:"pins"`
	RecentLocations []domain.Point `json:"recentLocations,omitempty"`
	Seed            *int64         `json:"seed"`
}

func (manifestV1) schemaVersion() int { return 1 }

// pinV2 adds tags.
type pinV2 struct {
	AboutDescription *string       `json:"aboutDescription,omitempty"`
	Color            *string       `json:"color,omitempty"`
	Images           []string      `json:"images,omitempty"`
	Name             *string       `json:"name"`
	Position         *domain.Point `json:"position"`
	Tags             []string      `json:"tags,omitempty"`
}

type worldSettingsV2 struct {
	Seed    *int64  `json:"seed"`
	Version *string `json:"version"`
}

// manifestV2 moves the world settings into their own object and versions the file.
type manifestV2 struct {
	ManifestVersion int              `json:"manifestVersion"`
	Name            *string          `json:"name"`
	Pins            []pinV2          `json:"pins"`
	RecentLocations []domain.Point   `json:"recentLocations,omitempty"`
	WorldSettings   *worldSettingsV2 `json:"worldSettings"`
}

func (manifestV2) schemaVersion() int { return 2 }

// upgradeV1 is total: every field of revision 1 has a home in revision 2.
// Pins start with an empty tag set.
func upgradeV1(m manifestV1) manifestV2 {
	pins := make([]pinV2, len(m.Pins))
	for i, pin := range m.Pins {
		pins[i] = pinV2{
			AboutDescription: pin.AboutDescription,
			Color:            pin.Color,
			Images:           pin.Images,
			Name:             pin.Name,
			Position:         pin.Position,
		}
	}

	return manifestV2{
		ManifestVersion: 2,
		Name:            m.Name,
		Pins:            pins,
		RecentLocations: m.RecentLocations,
		WorldSettings: &worldSettingsV2{
			Seed:    m.Seed,
			Version: m.MCVersion,
		},
	}
}

// upgrade applies one migration step. The latest revision upgrades to itself.
func upgrade(s schema) schema {
	switch m := s.(type) {
	case manifestV1:
		return upgradeV1(m)
	default:
		return s
	}
}
