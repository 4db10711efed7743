package list

import (
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// Row is one selectable line: a pin, a located feature, or a bare point.
type Row struct {
	// Label is the display name.
	Label string

	// Point is the world position the row refers to.
	Point domain.Point

	// Color draws the row's marker. Rows without a colour have no marker.
	Color domain.PinColor

	// Detail is muted trailing text such as tags or distance.
	Detail string

	// Index is the row's position in the document list it came from, or -1.
	Index int

	// Pin is set when the row describes a pin or something that can be saved as one.
	Pin *domain.Pin
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// SearchSections groups a search result bundle for display.
// Groups keep the service's order; empty groups are omitted.
func SearchSections(result domain.SearchResult, origin domain.Point) []Section {
	var sections []Section

	if len(result.Coordinates) > 0 {
		rows := make([]Row, len(result.Coordinates))
		for i, p := range result.Coordinates {
			pin := domain.NewPin(p, p.Readout())
			rows[i] = Row{Label: p.Readout(), Point: p, Index: -1, Detail: Distance(origin, p), Pin: &pin}
		}
		sections = append(sections, Section{Title: "Coordinates", Rows: rows})
	}

	groups := []struct {
		title    string
		pins     []domain.Pin
		saveable bool
	}{
		{"Pins", result.Pins, false},
		{"Structures", result.Structures, true},
		{"Biomes", result.Biomes, true},
	}
	for _, g := range groups {
		if len(g.pins) == 0 {
			continue
		}
		rows := make([]Row, len(g.pins))
		for i, pin := range g.pins {
			rows[i] = pinRow(pin, -1, Distance(origin, pin.Position))
			if !g.saveable {
				rows[i].Pin = nil
			}
		}
		sections = append(sections, Section{Title: g.title, Rows: rows})
	}

	return sections
}

// PinSections lists a document's pins grouped by colour.
// When tag is set only pins carrying it are listed. Row indices are document indices.
func PinSections(pins []domain.Pin, tag string) []Section {
	var filtered []domain.Pin
	indices := make(map[domain.PinColor][]int)
	for i, pin := range pins {
		if tag != "" && !pin.HasTag(tag) {
			continue
		}
		color := pin.Color
		if color == "" {
			color = domain.DefaultPinColor
		}
		filtered = append(filtered, pin)
		indices[color] = append(indices[color], i)
	}

	var sections []Section
	for _, group := range domain.GroupPinsByColor(filtered) {
		rows := make([]Row, len(group.Pins))
		for i, pin := range group.Pins {
			rows[i] = pinRow(pin, indices[group.Color][i], strings.Join(pin.Tags, ", "))
		}
		sections = append(sections, Section{Title: titleCase(string(group.Color)), Rows: rows})
	}
	return sections
}

// RecentSections lists recent locations newest first.
// Row indices are positions in the stored list.
func RecentSections(recents domain.RecentLocations) []Section {
	if len(recents) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(recents))
	for i := len(recents) - 1; i >= 0; i-- {
		row := Row{Label: recents[i].Readout(), Point: recents[i], Index: i}
		if i == len(recents)-1 {
			row.Detail = "current"
		}
		rows = append(rows, row)
	}
	return []Section{{Title: "Recent locations", Rows: rows}}
}

// Distance renders the Manhattan distance between two points in blocks.
func Distance(from, to domain.Point) string {
	return domain.GroupThousands(int64(from.ManhattanDistance(to))) + " blocks"
}

func pinRow(pin domain.Pin, index int, detail string) Row {
	p := pin.Clone()
	return Row{
		Label:  pin.Name,
		Point:  pin.Position,
		Color:  pin.Color,
		Detail: detail,
		Index:  index,
		Pin:    &p,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
