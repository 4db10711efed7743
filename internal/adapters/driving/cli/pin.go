package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage pins",
	Long:  `Add, list, edit, or remove the named pins of a document. Pins are addressed by index.`,
}

var pinAddCmd = &cobra.Command{
	Use:   "add [location] [name]",
	Short: "Add a pin",
	Args:  cobra.ExactArgs(2),
	RunE:  runPinAdd,
}

var pinListCmd = &cobra.Command{
	Use:   "list [location]",
	Short: "List pins",
	Args:  cobra.ExactArgs(1),
	RunE:  runPinList,
}

var pinRemoveCmd = &cobra.Command{
	Use:   "remove [location] [index...]",
	Short: "Remove pins",
	Long: `Removes every listed pin in one edit. Indices refer to the list before removal.
Images no remaining pin uses are deleted.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPinRemove,
}

var pinEditCmd = &cobra.Command{
	Use:   "edit [location] [index]",
	Short: "Edit a pin",
	Long:  `Changes the given fields of a pin. Fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runPinEdit,
}

var pinAttachCmd = &cobra.Command{
	Use:   "attach [location] [index] [image]",
	Short: "Attach an image to a pin",
	Args:  cobra.ExactArgs(3),
	RunE:  runPinAttach,
}

var pinTagsCmd = &cobra.Command{
	Use:   "tags [location]",
	Short: "List every tag used by the document's pins",
	Args:  cobra.ExactArgs(1),
	RunE:  runPinTags,
}

// Flags shared by pin add and pin edit.
var (
	pinAt        string
	pinColor     string
	pinNote      string
	pinTags      []string
	pinName      string
	pinClearTags bool
	pinListTag   string
	pinListJSON  bool
)

func init() {
	pinAddCmd.Flags().StringVar(&pinAt, "at", "", "position as x,z (required)")
	pinAddCmd.Flags().StringVarP(&pinColor, "color", "c", "", "pin color (default blue)")
	pinAddCmd.Flags().StringVar(&pinNote, "note", "", "free-form note")
	pinAddCmd.Flags().StringSliceVarP(&pinTags, "tag", "t", nil, "tag (repeatable)")
	_ = pinAddCmd.MarkFlagRequired("at")

	pinEditCmd.Flags().StringVar(&pinName, "name", "", "new name")
	pinEditCmd.Flags().StringVar(&pinAt, "at", "", "new position as x,z")
	pinEditCmd.Flags().StringVarP(&pinColor, "color", "c", "", "new color")
	pinEditCmd.Flags().StringVar(&pinNote, "note", "", "new note")
	pinEditCmd.Flags().StringSliceVarP(&pinTags, "tag", "t", nil, "replace tags (repeatable)")
	pinEditCmd.Flags().BoolVar(&pinClearTags, "clear-tags", false, "remove every tag")

	pinListCmd.Flags().StringVarP(&pinListTag, "tag", "t", "", "only pins with this tag")
	pinListCmd.Flags().BoolVar(&pinListJSON, "json", false, "output pins as JSON")

	pinCmd.AddCommand(pinAddCmd)
	pinCmd.AddCommand(pinListCmd)
	pinCmd.AddCommand(pinRemoveCmd)
	pinCmd.AddCommand(pinEditCmd)
	pinCmd.AddCommand(pinAttachCmd)
	pinCmd.AddCommand(pinTagsCmd)
	rootCmd.AddCommand(pinCmd)
}

func runPinAdd(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	position, err := parsePoint(pinAt)
	if err != nil {
		return err
	}
	color, err := domain.ParsePinColor(pinColor)
	if err != nil {
		return err
	}

	pin := domain.NewPin(position, args[1])
	pin.Color = color
	pin.Note = pinNote
	pin.Tags = cleanTags(pinTags)

	index, err := documents.AddPin(cmd.Context(), args[0], pin)
	if err != nil {
		return fmt.Errorf("failed to add pin: %w", err)
	}

	cmd.Printf("Added pin [%d] %s at %s\n", index, pin.Name, position.Readout())
	return nil
}

// pinJSON is the JSON form of a listed pin.
type pinJSON struct {
	Index  int      `json:"index"`
	Name   string   `json:"name"`
	X      float64  `json:"x"`
	Z      float64  `json:"z"`
	Color  string   `json:"color"`
	Note   string   `json:"note,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Images []string `json:"images,omitempty"`
}

func runPinList(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	doc, err := documents.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	listed := make([]pinJSON, 0, len(doc.Manifest.Pins))
	for i, pin := range doc.Manifest.Pins {
		if pinListTag != "" && !pin.HasTag(pinListTag) {
			continue
		}
		listed = append(listed, pinJSON{
			Index:  i,
			Name:   pin.Name,
			X:      pin.Position.X,
			Z:      pin.Position.Y,
			Color:  string(pin.Color),
			Note:   pin.Note,
			Tags:   pin.Tags,
			Images: pin.Images,
		})
	}

	if pinListJSON {
		data, err := json.MarshalIndent(listed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pins: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(listed) == 0 {
		cmd.Println("No pins found.")
		return nil
	}

	var s *styles.Styles
	if styled(cmd) {
		s = styles.DefaultStyles()
	}

	cmd.Printf("Pins in %s:\n\n", doc.Manifest.Name)
	for _, pin := range listed {
		color := domain.PinColor(pin.Color)
		label := fmt.Sprintf("%s (%s)", pin.Name, pin.Color)
		if s != nil {
			label = s.Marker(color) + " " + s.Pin(color).Render(pin.Name)
		}
		cmd.Printf("  [%d] %s  %s\n", pin.Index, label, domain.Point{X: pin.X, Y: pin.Z}.Readout())
		if pin.Note != "" {
			cmd.Printf("      %s\n", pin.Note)
		}
		if len(pin.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(pin.Tags, ", "))
		}
		if len(pin.Images) > 0 {
			cmd.Printf("      Images: %d\n", len(pin.Images))
		}
	}
	cmd.Printf("\nTotal: %d pins\n", len(listed))
	return nil
}

func runPinRemove(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	indices, err := parseIndices(args[1:])
	if err != nil {
		return err
	}

	if err := documents.RemovePins(cmd.Context(), args[0], indices); err != nil {
		return fmt.Errorf("failed to remove pins: %w", err)
	}

	cmd.Printf("Removed %d pin(s)\n", len(indices))
	return nil
}

func runPinEdit(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	location := args[0]
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	doc, err := documents.Open(cmd.Context(), location)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	pin, err := doc.Pin(index)
	if err != nil {
		return err
	}

	changed := false
	if pinName != "" {
		pin.Name = pinName
		changed = true
	}
	if pinAt != "" {
		if pin.Position, err = parsePoint(pinAt); err != nil {
			return err
		}
		changed = true
	}
	if pinColor != "" {
		if pin.Color, err = domain.ParsePinColor(pinColor); err != nil {
			return err
		}
		changed = true
	}
	if pinNote != "" {
		pin.Note = pinNote
		changed = true
	}
	if pinClearTags {
		pin.Tags = nil
		changed = true
	} else if len(pinTags) > 0 {
		pin.Tags = cleanTags(pinTags)
		changed = true
	}
	if !changed {
		return errors.New("nothing to change: pass --name, --at, --color, --note, --tag or --clear-tags")
	}

	if err := documents.UpdatePin(cmd.Context(), location, index, pin); err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}

	cmd.Printf("Updated pin [%d] %s\n", index, pin.Name)
	return nil
}

func runPinAttach(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	name, err := documents.AttachImage(cmd.Context(), args[0], index, filepath.Ext(args[2]), data)
	if err != nil {
		return fmt.Errorf("failed to attach image: %w", err)
	}

	cmd.Printf("Attached %s to pin [%d]\n", name, index)
	return nil
}

func runPinTags(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	tags, err := documents.Tags(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if len(tags) == 0 {
		cmd.Println("No tags.")
		return nil
	}
	for _, tag := range tags {
		cmd.Printf("  %s\n", tag)
	}
	return nil
}

// cleanTags trims tags and drops empty ones.
func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
