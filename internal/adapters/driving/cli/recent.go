package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage recently visited locations",
	Long: `Each document keeps the last 15 locations visited. The newest entry is
the current location, which searches use as their origin.`,
}

var recentPushCmd = &cobra.Command{
	Use:   "push [location] [x,z]",
	Short: "Go to a location",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecentPush,
}

var recentListCmd = &cobra.Command{
	Use:   "list [location]",
	Short: "List recent locations, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecentList,
}

var recentRemoveCmd = &cobra.Command{
	Use:   "remove [location] [index]",
	Short: "Remove a recent location",
	Long:  `Removes a recent location by its stored index, as shown by "recent list".`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRecentRemove,
}

func init() {
	recentCmd.AddCommand(recentPushCmd)
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentRemoveCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentPush(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	p, err := parsePoint(args[1])
	if err != nil {
		return err
	}

	current, err := documents.PushRecentLocation(cmd.Context(), args[0], p)
	if err != nil {
		return fmt.Errorf("failed to record location: %w", err)
	}

	cmd.Printf("Current location: %s\n", current.Readout())
	return nil
}

func runRecentList(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	doc, err := documents.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	recents := doc.Manifest.RecentLocations
	if len(recents) == 0 {
		cmd.Println("No recent locations.")
		return nil
	}

	for i := len(recents) - 1; i >= 0; i-- {
		marker := ""
		if i == len(recents)-1 {
			marker = "  (current)"
		}
		cmd.Printf("  [%d] %s%s\n", i, recents[i].Readout(), marker)
	}
	return nil
}

func runRecentRemove(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	if err := documents.RemoveRecentLocation(cmd.Context(), args[0], index); err != nil {
		return fmt.Errorf("failed to remove location: %w", err)
	}

	cmd.Printf("Removed recent location [%d]\n", index)
	return nil
}
