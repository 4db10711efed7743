// Package styles holds the TUI palette, the pin colour table and the
// lipgloss styles built from them.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// Theme is the palette every style is derived from.
type Theme struct {
	Accent    lipgloss.Color // titles, the selection background
	Highlight lipgloss.Color // section headings, the active filter
	Text      lipgloss.Color
	Dim       lipgloss.Color // hints, empty states, the status bar
	Alert     lipgloss.Color
	Frame     lipgloss.Color // borders
	Bar       lipgloss.Color // status bar background

	// Pins maps each pin colour to the terminal colour it is drawn with.
	Pins map[domain.PinColor]lipgloss.Color
}

// DefaultTheme is a dark palette with a grass-green accent.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    "#5DA130",
		Highlight: "#6CC3E0",
		Text:      "#E4E1D9",
		Dim:       "#8A8478",
		Alert:     "#E0544B",
		Frame:     "#5A5349",
		Bar:       "#2B2722",
		Pins: map[domain.PinColor]lipgloss.Color{
			domain.PinColorRed:    "#E0544B",
			domain.PinColorOrange: "#F0913A",
			domain.PinColorYellow: "#F2D649",
			domain.PinColorGreen:  "#7BC043",
			domain.PinColorBlue:   "#4A8FE7",
			domain.PinColorIndigo: "#6A5ACD",
			domain.PinColorBrown:  "#8B5A2B",
			domain.PinColorGray:   "#A0A0A0",
			domain.PinColorPink:   "#F28DB2",
		},
	}
}

// Styles are the lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	// InputField frames the query box.
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	// Section heads a group of search results.
	Section lipgloss.Style
}

// NewStyles derives styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Frame)

	return &Styles{
		theme:      theme,
		Title:      fg(theme.Accent).Bold(true),
		Subtitle:   fg(theme.Highlight).Bold(true),
		Normal:     fg(theme.Text),
		Muted:      fg(theme.Dim),
		Selected:   fg(theme.Text).Background(theme.Accent).Bold(true),
		Error:      fg(theme.Alert),
		InputField: frame.Padding(0, 1),
		StatusBar:  fg(theme.Dim).Background(theme.Bar).Padding(0, 1),
		Border:     frame,
		Section:    fg(theme.Highlight).Bold(true).Underline(true),
	}
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Pin styles text in a pin's colour. Unknown colours use the default pin
// colour.
func (s *Styles) Pin(color domain.PinColor) lipgloss.Style {
	c, ok := s.theme.Pins[color]
	if !ok {
		c = s.theme.Pins[domain.DefaultPinColor]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Marker is the coloured bullet drawn before a pin.
func (s *Styles) Marker(color domain.PinColor) string {
	return s.Pin(color).Render("●")
}

// Hints renders key hints as "[key] label" pairs in the muted style. Pairs
// are given flat: Hints("j/k", "navigate", "q", "quit").
func (s *Styles) Hints(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if out != "" {
			out += "  "
		}
		out += "[" + pairs[i] + "] " + pairs[i+1]
	}
	return s.Muted.Render(out)
}
