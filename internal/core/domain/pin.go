package domain

import (
	"fmt"
	"slices"
	"strings"
)

// PinColor is one of the fixed colors a pin may be drawn with.
type PinColor string

// Pin colors, in display order.
const (
	PinColorRed    PinColor = "red"
	PinColorOrange PinColor = "orange"
	PinColorYellow PinColor = "yellow"
	PinColorGreen  PinColor = "green"
	PinColorBlue   PinColor = "blue"
	PinColorIndigo PinColor = "indigo"
	PinColorBrown  PinColor = "brown"
	PinColorGray   PinColor = "gray"
	PinColorPink   PinColor = "pink"
)

// DefaultPinColor is used when a pin does not specify a color.
const DefaultPinColor = PinColorBlue

// PinColors lists every pin color in display order.
var PinColors = []PinColor{
	PinColorRed, PinColorOrange, PinColorYellow, PinColorGreen, PinColorBlue,
	PinColorIndigo, PinColorBrown, PinColorGray, PinColorPink,
}

// ParsePinColor parses a color name case-insensitively.
// An empty string yields the default color.
func ParsePinColor(s string) (PinColor, error) {
	if s == "" {
		return DefaultPinColor, nil
	}
	c := PinColor(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown pin color %q: %w", s, ErrInvalidInput)
	}
	return c, nil
}

// IsValid returns true if c is one of the fixed pin colors.
func (c PinColor) IsValid() bool {
	return slices.Contains(PinColors, c)
}

// Pin is a user-placed named marker at a world position.
// Pins have no stable identity; they are addressed by index in the document.
type Pin struct {
	// Position is the pin's world location.
	Position Point `json:"position"`

	// Name is the pin's display name.
	Name string `json:"name"`

	// Color is the pin's color.
	Color PinColor `json:"color"`

	// Images are asset names attached to the pin, in insertion order without duplicates.
	Images []string `json:"images,omitempty"`

	// Note is a free-form player-written description.
	Note string `json:"note,omitempty"`

	// Tags is the pin's tag set. Only meaningful from schema v2 on.
	Tags []string `json:"tags,omitempty"`
}

// NewPin creates a pin with the default color.
func NewPin(position Point, name string) Pin {
	return Pin{Position: position, Name: name, Color: DefaultPinColor}
}

// HasImage returns true if the pin references the named asset.
func (p Pin) HasImage(name string) bool {
	return slices.Contains(p.Images, name)
}

// HasTag returns true if the pin carries the tag.
func (p Pin) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// Clone returns a copy that shares no slices with p.
func (p Pin) Clone() Pin {
	p.Images = slices.Clone(p.Images)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// PinGroup is a set of pins sharing one color.
type PinGroup struct {
	Color PinColor
	Pins  []Pin
}

// GroupPinsByColor groups pins by color in display order.
// Colors with no pins are omitted; document order is kept within a group.
func GroupPinsByColor(pins []Pin) []PinGroup {
	byColor := make(map[PinColor][]Pin)
	for _, pin := range pins {
		color := pin.Color
		if color == "" {
			color = DefaultPinColor
		}
		byColor[color] = append(byColor[color], pin)
	}

	groups := make([]PinGroup, 0, len(byColor))
	for _, color := range PinColors {
		if len(byColor[color]) > 0 {
			groups = append(groups, PinGroup{Color: color, Pins: byColor[color]})
		}
	}
	return groups
}
