package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// decoders parse a payload strictly as one revision.
var decoders = map[int]func([]byte) (schema, error){
	1: decodeV1,
	2: decodeV2,
}

// errMissingField marks a payload that parsed as JSON but lacks a required key.
var errMissingField = errors.New("missing required field")

// Decode parses manifest bytes of any known revision and returns the
// latest-revision manifest.
//
// Errors wrap domain.ErrUnsupportedVersion when the file claims a revision
// newer than domain.LatestSchemaVersion, and domain.ErrMalformed when the
// payload does not match the revision it claims. No partial manifest is
// ever returned.
func Decode(data []byte) (domain.Manifest, error) {
	version, err := ProbeVersion(data)
	if err != nil {
		return domain.Manifest{}, err
	}

	decode, ok := decoders[version]
	if !ok {
		return domain.Manifest{}, fmt.Errorf("manifest version %d (latest %d): %w",
			version, domain.LatestSchemaVersion, domain.ErrUnsupportedVersion)
	}

	parsed, err := decode(data)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("decoding v%d manifest: %w: %w", version, domain.ErrMalformed, err)
	}

	latest := migrate(parsed)
	manifest, err := collapse(latest)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("decoding v%d manifest: %w: %w", version, domain.ErrMalformed, err)
	}
	return manifest, nil
}

// ProbeVersion reads only the revision marker. An absent or null marker means revision 1.
func ProbeVersion(data []byte) (int, error) {
	var probe struct {
		ManifestVersion *int `json:"manifestVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("probing manifest version: %w: %w", domain.ErrMalformed, err)
	}
	if probe.ManifestVersion == nil {
		return 1, nil
	}

	version := *probe.ManifestVersion
	switch {
	case version < 1:
		return 0, fmt.Errorf("manifest version %d: %w", version, domain.ErrMalformed)
	case version > domain.LatestSchemaVersion:
		return 0, fmt.Errorf("manifest version %d (latest %d): %w",
			version, domain.LatestSchemaVersion, domain.ErrUnsupportedVersion)
	}
	return version, nil
}

// migrate walks the upgrade chain until the latest revision is reached.
func migrate(s schema) manifestV2 {
	for {
		if latest, ok := s.(manifestV2); ok {
			return latest
		}
		from := s.schemaVersion()
		s = upgrade(s)
		logger.Debug("Upgraded manifest v%d -> v%d", from, s.schemaVersion())
	}
}

// Encode writes the manifest as the latest revision with sorted keys and
// two-space indentation.
func Encode(m domain.Manifest) ([]byte, error) {
	wire := expand(m)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Sample returns the new-world template as a latest-revision manifest.
func Sample() domain.Manifest {
	return domain.SampleManifest()
}

func decodeV1(data []byte) (schema, error) {
	var m manifestV1
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	switch {
	case m.MCVersion == nil:
		return nil, fmt.Errorf("mcVersion: %w", errMissingField)
	case m.Name == nil:
		return nil, fmt.Errorf("name: %w", errMissingField)
	case m.Seed == nil:
		return nil, fmt.Errorf("seed: %w", errMissingField)
	case m.Pins == nil:
		return nil, fmt.Errorf("pins: %w", errMissingField)
	}
	for i, pin := range m.Pins {
		if err := checkPin(i, pin.Name, pin.Position); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeV2(data []byte) (schema, error) {
	var m manifestV2
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	switch {
	case m.Name == nil:
		return nil, fmt.Errorf("name: %w", errMissingField)
	case m.WorldSettings == nil:
		return nil, fmt.Errorf("worldSettings: %w", errMissingField)
	case m.WorldSettings.Version == nil:
		return nil, fmt.Errorf("worldSettings.version: %w", errMissingField)
	case m.WorldSettings.Seed == nil:
		return nil, fmt.Errorf("worldSettings.seed: %w", errMissingField)
	case m.Pins == nil:
		// Absent and null both decode to nil; an empty array does not.
		return nil, fmt.Errorf("pins: %w", errMissingField)
	}
	for i, pin := range m.Pins {
		if err := checkPin(i, pin.Name, pin.Position); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func checkPin(index int, name *string, position *domain.Point) error {
	if name == nil {
		return fmt.Errorf("pins[%d].name: %w", index, errMissingField)
	}
	if position == nil {
		return fmt.Errorf("pins[%d].position: %w", index, errMissingField)
	}
	return nil
}

// collapse converts the latest wire revision into the domain manifest.
func collapse(m manifestV2) (domain.Manifest, error) {
	pins := make([]domain.Pin, len(m.Pins))
	for i, wire := range m.Pins {
		color := domain.DefaultPinColor
		if wire.Color != nil {
			c, err := domain.ParsePinColor(*wire.Color)
			if err != nil {
				return domain.Manifest{}, fmt.Errorf("pins[%d].color: %w", i, err)
			}
			color = c
		}

		pin := domain.Pin{
			Position: *wire.Position,
			Name:     *wire.Name,
			Color:    color,
			Images:   dedupe(wire.Images),
			Tags:     dedupe(wire.Tags),
		}
		if wire.AboutDescription != nil {
			pin.Note = *wire.AboutDescription
		}
		pins[i] = pin
	}

	var recents domain.RecentLocations
	if len(m.RecentLocations) > 0 {
		recents = domain.RecentLocations(m.RecentLocations)
	}

	return domain.Manifest{
		SchemaVersion: m.ManifestVersion,
		Name:          *m.Name,
		World: domain.WorldSettings{
			GeneratorVersion: *m.WorldSettings.Version,
			Seed:             *m.WorldSettings.Seed,
		},
		Pins:            pins,
		RecentLocations: recents,
	}, nil
}

// expand converts the domain manifest into the latest wire revision.
func expand(m domain.Manifest) manifestV2 {
	pins := make([]pinV2, len(m.Pins))
	for i, pin := range m.Pins {
		color := string(pin.Color)
		if color == "" {
			color = string(domain.DefaultPinColor)
		}
		wire := pinV2{
			Color:    &color,
			Images:   pin.Images,
			Name:     &pin.Name,
			Position: &pin.Position,
			Tags:     pin.Tags,
		}
		if pin.Note != "" {
			wire.AboutDescription = &pin.Note
		}
		pins[i] = wire
	}

	name := m.Name
	version := m.World.GeneratorVersion
	seed := m.World.Seed
	return manifestV2{
		ManifestVersion: domain.LatestSchemaVersion,
		Name:            &name,
		Pins:            pins,
		RecentLocations: m.RecentLocations,
		WorldSettings: &worldSettingsV2{
			Seed:    &seed,
			Version: &version,
		},
	}
}

// dedupe keeps first occurrences; nil and empty input yield nil.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
