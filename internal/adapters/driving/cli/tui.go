package cli

import (
	"errors"
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// errNotInteractive is returned when tui runs without a terminal on both
// stdin and stdout.
var errNotInteractive = errors.New("tui needs an interactive terminal")

var tuiCmd = &cobra.Command{
	Use:   "tui [location]",
	Short: "Launch the interactive terminal UI",
	Long: `Browse a map document interactively: a search box with result actions,
the document's pins grouped by color, and the recent locations list.

Controls:
  ↑/k, ↓/j   Navigate
  1-5        Jump to a menu entry
  Enter      Search / Actions
  g          Go to the selected location
  d          Remove the selected pin or location
  t          Cycle the pin tag filter
  Esc        Back
  ?          Help
  q, Ctrl+C  Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("tui panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	documents, err := documentService()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(deps.Search, documents, deps.Settings), args[0])
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !isTerminal(in) || !isTerminal(out) {
		return errNotInteractive
	}

	if err := app.WithContext(cmd.Context()).Run(tea.WithInput(in), tea.WithOutput(out)); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
