// Package cli provides the mcmaps command-line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// version is set at build time through SetVersion.
var version = "dev"

// Services aggregates the driving ports the commands run against.
type Services struct {
	// Search resolves search queries.
	Search driving.SearchService

	// Documents edits package directories on disk.
	Documents driving.DocumentService

	// Library edits documents stored in the library database. Optional.
	Library driving.DocumentService

	// OpenLibrary opens the library on first use when Library is unset. Optional.
	OpenLibrary func() (driving.DocumentService, error)

	// Settings reads and writes configuration. Optional.
	Settings driving.SettingsService

	// Watch reports changes made by other programs. Optional.
	Watch driving.WatchService

	// Oracle names the world oracle compiled into the binary, for
	// "version --details".
	Oracle string
}

// deps holds the ports wired by the composition root.
var deps = &Services{}

// Global flags.
var (
	verbose    bool
	useLibrary bool
)

var rootCmd = &cobra.Command{
	Use:   "mcmaps",
	Short: "Pin, browse and search Minecraft world maps",
	Long: `mcmaps keeps map documents for procedurally generated Minecraft worlds.

A document records the world's seed and generator version, named pins with
colors, notes, tags and images, and a short history of visited locations.
Searches combine literal coordinates, pin names, and the structures and
biomes the world generator places near a location.

Documents live in package directories (Info.json plus Images/) unless
--library is given, in which case they are stored in the library database.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolVar(&useLibrary, "library", false, "use the library database instead of package directories")
}

// SetServices sets the driving ports used by all commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	deps = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// documentService returns the store selected by the --library flag.
func documentService() (driving.DocumentService, error) {
	if useLibrary {
		if deps.Library == nil && deps.OpenLibrary != nil {
			library, err := deps.OpenLibrary()
			if err != nil {
				return nil, fmt.Errorf("opening library: %w", err)
			}
			deps.Library = library
		}
		if deps.Library == nil {
			return nil, errors.New("library store not configured")
		}
		return deps.Library, nil
	}
	if deps.Documents == nil {
		return nil, errors.New("document service not configured")
	}
	return deps.Documents, nil
}

// styled reports whether cmd writes to a terminal.
func styled(cmd *cobra.Command) bool {
	return isTerminal(cmd.OutOrStdout())
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}
