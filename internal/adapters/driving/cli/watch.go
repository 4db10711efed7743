package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [location] [query]",
	Short: "Follow changes to a document",
	Long: `Watches a package directory for edits made by other programs and reports
them as they happen. Bursts of writes are merged into one report.

With a query, the search is run again after every change and the result
count is printed, which is useful while another tool adds pins.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if deps.Watch == nil {
		return errors.New("watch service not configured")
	}
	if useLibrary {
		return errors.New("watch only supports package directories")
	}
	documents, err := documentService()
	if err != nil {
		return err
	}

	location := args[0]
	query := ""
	if len(args) > 1 {
		query = args[1]
	}

	ctx := cmd.Context()
	if _, err := documents.Open(ctx, location); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	notices, err := deps.Watch.Watch(ctx, location)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s. Press Ctrl+C to stop.\n", location)
	for notice := range notices {
		stamp := time.Now().Format("15:04:05")
		cmd.Printf("[%s] changed: %s\n", stamp, strings.Join(notice.Paths, ", "))

		doc, err := documents.Open(ctx, location)
		if err != nil {
			cmd.Printf("  reload failed: %v\n", err)
			continue
		}
		cmd.Printf("  %s: %d pins\n", doc.Manifest.Name, len(doc.Manifest.Pins))

		if query == "" || deps.Search == nil {
			continue
		}
		opts, err := searchOptions(doc, "", "", 0)
		if err != nil {
			return err
		}
		result, err := deps.Search.Search(ctx, query, doc, opts)
		if err != nil {
			cmd.Printf("  search failed: %v\n", err)
			continue
		}
		cmd.Printf("  %q: %d results\n", query, result.Count())
	}
	return nil
}
