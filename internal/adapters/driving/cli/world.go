package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Manage world settings",
}

var worldEditCmd = &cobra.Command{
	Use:   "edit [location]",
	Short: "Change the seed or generator version",
	Long: `Replaces the world settings. Pins are kept as they are; structure and
biome searches use the new settings from then on.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorldEdit,
}

// Flags for world edit. Empty means unchanged.
var (
	worldSeed    string
	worldVersion string
)

func init() {
	worldEditCmd.Flags().StringVar(&worldSeed, "seed", "", "new world seed")
	worldEditCmd.Flags().StringVar(&worldVersion, "version", "", "new generator version")
	worldCmd.AddCommand(worldEditCmd)
	rootCmd.AddCommand(worldCmd)
}

func runWorldEdit(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	if worldSeed == "" && worldVersion == "" {
		return errors.New("nothing to change: pass --seed or --version")
	}

	location := args[0]
	doc, err := documents.Open(cmd.Context(), location)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	settings := doc.Manifest.World
	if worldSeed != "" {
		seed, err := strconv.ParseInt(worldSeed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", worldSeed, domain.ErrInvalidInput)
		}
		settings.Seed = seed
	}
	if worldVersion != "" {
		settings.GeneratorVersion = worldVersion
	}

	if err := documents.EditWorld(cmd.Context(), location, settings); err != nil {
		return fmt.Errorf("failed to edit world: %w", err)
	}

	cmd.Printf("World settings for %s: version %s, seed %d\n",
		doc.Manifest.Name, settings.GeneratorVersion, settings.Seed)
	return nil
}
