package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/manifest"
)

// Export formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var exportCmd = &cobra.Command{
	Use:   "export [location]",
	Short: "Export a document manifest",
	Long: `Writes the document's manifest in the latest revision.

The json format is byte-for-byte what is stored in Info.json.
The yaml format is a readable summary for sharing and diffing.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// Flags for the export command.
var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatJSON, "output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// yamlManifest is the yaml export layout.
type yamlManifest struct {
	Name            string    `yaml:"name"`
	Version         string    `yaml:"version"`
	Seed            int64     `yaml:"seed"`
	Pins            []yamlPin `yaml:"pins"`
	RecentLocations []yamlXZ  `yaml:"recent_locations,omitempty"`
	Tags            []string  `yaml:"tags,omitempty"`
}

type yamlPin struct {
	Name     string   `yaml:"name"`
	Position yamlXZ   `yaml:"position"`
	Color    string   `yaml:"color"`
	Note     string   `yaml:"note,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Images   []string `yaml:"images,omitempty"`
}

type yamlXZ struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

func newYAMLManifest(m domain.Manifest) yamlManifest {
	out := yamlManifest{
		Name:    m.Name,
		Version: m.World.GeneratorVersion,
		Seed:    m.World.Seed,
		Pins:    make([]yamlPin, 0, len(m.Pins)),
		Tags:    m.AllTags(),
	}
	for _, pin := range m.Pins {
		out.Pins = append(out.Pins, yamlPin{
			Name:     pin.Name,
			Position: yamlXZ{X: pin.Position.X, Z: pin.Position.Y},
			Color:    string(pin.Color),
			Note:     pin.Note,
			Tags:     pin.Tags,
			Images:   pin.Images,
		})
	}
	for _, p := range m.RecentLocations {
		out.RecentLocations = append(out.RecentLocations, yamlXZ{X: p.X, Z: p.Y})
	}
	return out
}

// encodeManifest renders m in format.
func encodeManifest(m domain.Manifest, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		return manifest.Encode(m)
	case formatYAML:
		return yaml.Marshal(newYAMLManifest(m))
	default:
		return nil, fmt.Errorf("unknown format %q (use json or yaml): %w", format, domain.ErrInvalidInput)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	doc, err := documents.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	data, err := encodeManifest(doc.Manifest, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		cmd.Printf("Exported %s to %s\n", doc.Manifest.Name, exportOutput)
		return nil
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}
