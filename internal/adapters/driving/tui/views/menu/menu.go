// Package menu is the TUI's landing screen: a summary of the open world and
// the list of views.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// Item is one menu entry. An item with Quit set ends the program instead of
// switching views.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// DefaultItems are the entries shown by NewView, in order. Digit keys 1..n
// select them directly.
var DefaultItems = []Item{
	{Label: "Search", Hint: "coordinates, pins, structures and biomes", View: messages.ViewSearch},
	{Label: "Pins", Hint: "browse by colour, filter by tag", View: messages.ViewPins},
	{Label: "Recent locations", Hint: "where you have been", View: messages.ViewRecents},
	{Label: "Help", Hint: "key bindings", View: messages.ViewHelp},
	{Label: "Quit", Quit: true},
}

// summary is the header drawn above the items.
type summary struct {
	world    string
	detail   string
	location string
}

type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	items  []Item
	cursor int
	doc    *summary
	width  int
	height int
	ready  bool
}

func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keys:   km,
		items:  DefaultItems,
		width:  80,
		height: 24,
	}
}

func (v *View) Init() tea.Cmd { return nil }

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) tea.Cmd {
	switch {
	case keymap.Matches(k, v.keys.Up):
		v.cursor = max(v.cursor-1, 0)
	case keymap.Matches(k, v.keys.Down):
		v.cursor = min(v.cursor+1, len(v.items)-1)
	case keymap.Matches(k, v.keys.Search):
		return v.choose(v.cursor)
	case keymap.Matches(k, v.keys.Help):
		return changeView(messages.ViewHelp)
	case keymap.Matches(k, v.keys.Quit):
		return tea.Quit
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(v.items) {
			v.cursor = n - 1
			return v.choose(v.cursor)
		}
	}
	return nil
}

func (v *View) choose(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return changeView(item.View)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("mcmaps"))
	b.WriteString("\n\n")
	v.writeSummary(&b)
	b.WriteString("\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.cursor {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		if item.Hint != "" && v.width >= 60 {
			b.WriteString("  " + v.styles.Muted.Render(item.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Hints("j/k", "navigate", "enter", "select", "1-9", "jump", "q", "quit"))
	return b.String()
}

func (v *View) writeSummary(b *strings.Builder) {
	if v.doc == nil {
		b.WriteString(v.styles.Muted.Render("No document loaded"))
		b.WriteString("\n")
		return
	}
	header := v.doc.world
	if v.doc.location != "" {
		header += " @ " + v.doc.location
	}
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.doc.detail))
	b.WriteString("\n")
}

// SetDocument updates the header from doc.
func (v *View) SetDocument(doc *domain.Document) {
	m := doc.Manifest
	s := &summary{
		world: m.Name,
		detail: fmt.Sprintf("Java %s · seed %d · %s",
			m.World.GeneratorVersion, m.World.Seed, plural(len(m.Pins), "pin")),
	}
	if p, ok := m.RecentLocations.Latest(); ok {
		s.location = p.Readout()
	}
	v.doc = s
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected is the cursor position.
func (v *View) Selected() int {
	return v.cursor
}
