package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// Setting keys accepted by "settings set".
const (
	settingRadius    = "radius"
	settingDimension = "dimension"
	settingLibrary   = "library"
)

// dimensions lists the choices offered by the wizard.
var dimensions = []domain.Dimension{
	domain.DimensionOverworld,
	domain.DimensionNether,
	domain.DimensionEnd,
}

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Manage application settings",
	Long: `View and configure search defaults and the library location.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  radius     - structure search radius (positive number)
  dimension  - default dimension: overworld, nether or end
  library    - library database directory (empty for the default)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings := deps.Settings
	if settings == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Structure radius: %d\n", settings.StructureRadius())
	cmd.Printf("  Dimension: %s\n", settings.Dimension())
	cmd.Println()

	cmd.Println("[Library]")
	if path := settings.LibraryPath(); path != "" {
		cmd.Printf("  Path: %s\n", path)
	} else {
		cmd.Println("  Path: (default)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings := deps.Settings
	if settings == nil {
		return errors.New("settings service not configured")
	}

	key, value := strings.ToLower(args[0]), args[1]
	switch key {
	case settingRadius:
		radius, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid radius %q: %w", value, domain.ErrInvalidInput)
		}
		if err := settings.SetStructureRadius(int32(radius)); err != nil {
			return err
		}
	case settingDimension:
		dim, err := domain.ParseDimension(value)
		if err != nil {
			return err
		}
		if err := settings.SetDimension(dim); err != nil {
			return err
		}
	case settingLibrary:
		if err := settings.SetLibraryPath(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown setting %q (use radius, dimension or library): %w", args[0], domain.ErrInvalidInput)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	settings := deps.Settings
	if settings == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("mcmaps Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Dimension
	cmd.Println("Step 1: Default Dimension")
	cmd.Println("-------------------------")
	current := 1
	for i, dim := range dimensions {
		if dim == settings.Dimension() {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, dim)
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	dim := dimensions[parseChoice(readLine(reader), len(dimensions), current)-1]
	if err := settings.SetDimension(dim); err != nil {
		return fmt.Errorf("failed to set dimension: %w", err)
	}
	cmd.Printf("Set dimension to: %s\n\n", dim)

	// Step 2: Structure radius
	cmd.Println("Step 2: Structure Search Radius")
	cmd.Println("-------------------------------")
	radius := settings.StructureRadius()
	cmd.Printf("Enter radius [%d]: ", radius)
	if input := readLine(reader); input != "" {
		n, err := strconv.ParseInt(input, 10, 32)
		if err != nil || n <= 0 {
			cmd.Printf("Keeping %d: %q is not a positive number\n", radius, input)
		} else {
			radius = int32(n)
		}
	}
	if err := settings.SetStructureRadius(radius); err != nil {
		return fmt.Errorf("failed to set radius: %w", err)
	}
	cmd.Printf("Set structure radius to: %d\n\n", radius)

	// Step 3: Library path
	cmd.Println("Step 3: Library Location")
	cmd.Println("------------------------")
	path := settings.LibraryPath()
	shown := path
	if shown == "" {
		shown = "default"
	}
	cmd.Printf("Enter directory [%s]: ", shown)
	if input := readLine(reader); input != "" {
		path = input
	}
	if err := settings.SetLibraryPath(path); err != nil {
		return fmt.Errorf("failed to set library path: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
