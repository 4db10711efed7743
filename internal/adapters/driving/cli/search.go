package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/list"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// Flags for the search command.
var (
	searchOrigin    string
	searchDimension string
	searchRadius    int32
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [location] [query]",
	Short: "Search a world",
	Long: `Searches a document's world for a query. A query can be any of:

  a coordinate pair such as "100, -50"
  part of a pin name
  a structure such as "village" or "Ancient City"
  a biome such as "Cherry Grove"

Results are grouped by kind; structures and biomes are ordered by distance
from the origin, which defaults to the document's current location.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchOrigin, "origin", "", "search origin as x,z (default: current location)")
	searchCmd.Flags().StringVarP(&searchDimension, "dimension", "d", "", "dimension: overworld, nether or end")
	searchCmd.Flags().Int32VarP(&searchRadius, "radius", "r", 0, "structure search radius")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchOptions builds options for doc from the configured defaults and flags.
func searchOptions(doc *domain.Document, origin, dimension string, radius int32) (domain.SearchOptions, error) {
	center := domain.Origin
	if latest, ok := doc.Manifest.RecentLocations.Latest(); ok {
		center = latest
	}
	if origin != "" {
		p, err := parsePoint(origin)
		if err != nil {
			return domain.SearchOptions{}, err
		}
		center = p
	}

	origin3 := center.Rounded().ToOrigin(domain.DefaultOriginY)
	opts := domain.DefaultSearchOptions()
	opts.Origin = origin3
	if deps.Settings != nil {
		opts = deps.Settings.SearchOptions(origin3)
	}

	if dimension != "" {
		dim, err := domain.ParseDimension(dimension)
		if err != nil {
			return domain.SearchOptions{}, err
		}
		opts.Dimension = dim
	}
	if radius > 0 {
		opts.StructureRadius = radius
	}
	return opts, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if deps.Search == nil {
		return errors.New("search service not configured")
	}
	documents, err := documentService()
	if err != nil {
		return err
	}

	doc, err := documents.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	opts, err := searchOptions(doc, searchOrigin, searchDimension, searchRadius)
	if err != nil {
		return err
	}

	query := args[1]
	result, err := deps.Search.Search(cmd.Context(), query, doc, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}
	return outputSearchTable(cmd, query, result, opts.Origin.Flat())
}

func outputSearchJSON(cmd *cobra.Command, result domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, query string, result domain.SearchResult, origin domain.Point) error {
	if result.IsEmpty() {
		cmd.Println("No results found.")
		return nil
	}

	var s *styles.Styles
	if styled(cmd) {
		s = styles.DefaultStyles()
	}

	cmd.Printf("Results for %q (%d):\n", query, result.Count())
	for _, section := range list.SearchSections(result, origin) {
		cmd.Println()
		title := section.Title
		if s != nil {
			title = s.Section.Render(title)
		}
		cmd.Println(title)
		for _, row := range section.Rows {
			label := row.Label
			if s != nil && row.Color != "" {
				label = s.Marker(row.Color) + " " + label
			}
			cmd.Printf("  %-24s %-20s %s\n", label, row.Point.Readout(), row.Detail)
		}
	}
	return nil
}
