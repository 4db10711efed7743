// Package status draws the one-line bar at the bottom of the list views:
// the world and current location on the left, key hints on the right.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// State selects the bar's label and hints.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateHelp      State = "help"
	StateResults   State = "results"
	StatePins      State = "pins"
	StateRecents   State = "recents"
)

// counted names what the result count means in each state that shows one.
var counted = map[State]string{
	StateReady:   "results",
	StateResults: "results",
	StatePins:    "pins",
	StateRecents: "locations",
}

// Bar is passive: views push state into it and call View.
type Bar struct {
	styles *styles.Styles
	keys   *keymap.KeyMap

	state   State
	message string
	count   int

	world    string
	location string

	width int
}

func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keys: km, state: StateReady, width: 80}
}

// View renders the bar at its width. Hints are dropped when they do not fit
// beside the left side.
func (b *Bar) View() string {
	left := b.left()
	right := b.hints()

	inner := b.width - b.styles.StatusBar.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right, gap = "", 1
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) left() string {
	var parts []string
	if b.world != "" {
		parts = append(parts, b.styles.Subtitle.Render(b.world))
	}
	if b.location != "" {
		parts = append(parts, b.styles.Normal.Render("@ "+b.location))
	}
	return strings.Join(append(parts, b.label()), "  ")
}

func (b *Bar) label() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateError:
		if b.message == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.message)
	case StateHelp:
		return b.styles.Normal.Render("Help")
	}

	switch noun, ok := counted[b.state]; {
	case b.message != "":
		return b.styles.Normal.Render(b.message)
	case ok && b.count > 0:
		return b.styles.Normal.Render(fmt.Sprintf("%d %s", b.count, noun))
	default:
		return b.styles.Muted.Render("Ready")
	}
}

func (b *Bar) hints() string {
	var bindings []key.Binding
	switch {
	case b.state == StateResults && b.count > 0:
		bindings = b.keys.ResultsHelp()
	case b.state == StatePins:
		bindings = b.keys.PinsHelp()
	case b.state == StateRecents:
		bindings = b.keys.RecentsHelp()
	default:
		bindings = b.keys.ShortHelp()
	}

	hints := make([]string, len(bindings))
	for i, binding := range bindings {
		h := binding.Help()
		hints[i] = h.Key + ": " + h.Desc
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetDocument shows doc's world name and its current location.
func (b *Bar) SetDocument(doc *domain.Document) {
	b.world = doc.Manifest.Name
	b.location = ""
	if p, ok := doc.Manifest.RecentLocations.Latest(); ok {
		b.location = p.Readout()
	}
}

func (b *Bar) SetState(state State) { b.state = state }
func (b *Bar) State() State         { return b.state }

// SetMessage replaces the count label until cleared with "".
func (b *Bar) SetMessage(message string) { b.message = message }
func (b *Bar) Message() string           { return b.message }

func (b *Bar) SetResultCount(n int) { b.count = n }
func (b *Bar) ResultCount() int     { return b.count }

func (b *Bar) SetWidth(width int) { b.width = width }
func (b *Bar) Width() int         { return b.width }

// Clear returns to StateReady with no message or count. The document
// summary is kept.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.count = 0
}
