package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

var newCmd = &cobra.Command{
	Use:   "new [location]",
	Short: "Create a map document",
	Long: `Creates an empty map document for a world.

The seed and generator version decide which structures and biomes
searches can find, so they should match the world being mapped.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var infoCmd = &cobra.Command{
	Use:   "info [location]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Long:  `Lists the documents in the library database, or the package directories in the working directory.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// Flags for the new command.
var (
	newName    string
	newSeed    int64
	newVersion string
)

func init() {
	sample := domain.SampleManifest()
	newCmd.Flags().StringVar(&newName, "name", sample.Name, "world display name")
	newCmd.Flags().Int64Var(&newSeed, "seed", 0, "world seed")
	newCmd.Flags().StringVar(&newVersion, "version", sample.World.GeneratorVersion, "generator version")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	location := args[0]
	settings := domain.WorldSettings{GeneratorVersion: newVersion, Seed: newSeed}
	doc, err := documents.Create(cmd.Context(), location, newName, settings)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created %q at %s\n", doc.Manifest.Name, location)
	cmd.Printf("  Version: %s\n", settings.GeneratorVersion)
	cmd.Printf("  Seed:    %d\n", settings.Seed)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	location := args[0]
	doc, err := documents.Open(cmd.Context(), location)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	m := doc.Manifest
	cmd.Printf("World: %s\n\n", m.Name)
	cmd.Printf("  Location: %s\n", location)
	cmd.Printf("  Version:  %s\n", m.World.GeneratorVersion)
	cmd.Printf("  Seed:     %d\n", m.World.Seed)
	cmd.Printf("  Schema:   v%d\n", m.SchemaVersion)
	cmd.Printf("  Pins:     %d\n", len(m.Pins))
	cmd.Printf("  Images:   %d\n", len(doc.Assets))

	if tags := doc.AllTags(); len(tags) > 0 {
		cmd.Printf("  Tags:     %s\n", strings.Join(tags, ", "))
	}
	if p, ok := m.RecentLocations.Latest(); ok {
		cmd.Printf("  Current:  %s\n", p.Readout())
	}
	if err := doc.Validate(); err != nil {
		cmd.Printf("\n  Warning: %v\n", err)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	locations, err := documents.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(locations) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for _, location := range locations {
		cmd.Printf("  %s\n", location)
	}
	cmd.Printf("\nTotal: %d documents\n", len(locations))
	return nil
}
