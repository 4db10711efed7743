// Package pins provides the pin list view for the TUI.
package pins

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/list"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/status"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// View lists the document's pins grouped by colour, optionally filtered
// to a single tag.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ResultList
	statusbar *status.Bar

	pins []domain.Pin
	tags []string
	tag  int // index into tags; -1 means no filter

	width  int
	height int
	ready  bool
}

// NewView creates a new pin list view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	l := list.NewResultList(s)
	l.SetEmptyText("No pins yet. Save one from a search result.")

	bar := status.NewBar(s, km)
	bar.SetState(status.StatePins)

	return &View{
		styles:    s,
		keymap:    km,
		list:      l,
		statusbar: bar,
		tag:       -1,
		width:     80,
		height:    24,
	}
}

// SetDocument refreshes the list from doc, keeping the tag filter when
// the tag still exists.
func (v *View) SetDocument(doc *domain.Document) {
	current := v.Tag()
	v.pins = doc.Manifest.Pins
	v.tags = doc.AllTags()
	v.tag = -1
	for i, t := range v.tags {
		if t == current {
			v.tag = i
		}
	}

	v.statusbar.SetDocument(doc)
	v.refresh()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pin list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(k, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(k, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(k, v.keymap.GoTo), k == "enter":
		if row := v.list.SelectedRow(); row != nil {
			p := row.Point
			return v, func() tea.Msg { return messages.GoTo{Point: p} }
		}
	case keymap.Matches(k, v.keymap.Remove):
		if row := v.list.SelectedRow(); row != nil && row.Index >= 0 {
			index := row.Index
			return v, func() tea.Msg { return messages.PinRemoveRequested{Index: index} }
		}
	case keymap.Matches(k, v.keymap.Tag):
		v.CycleTag()
	}
	return v, nil
}

// CycleTag advances the tag filter: none, then each tag in order, then none.
func (v *View) CycleTag() {
	if len(v.tags) == 0 {
		v.tag = -1
		return
	}
	v.tag++
	if v.tag >= len(v.tags) {
		v.tag = -1
	}
	v.refresh()
}

// Tag returns the active tag filter, or "" when unfiltered.
func (v *View) Tag() string {
	if v.tag < 0 || v.tag >= len(v.tags) {
		return ""
	}
	return v.tags[v.tag]
}

func (v *View) refresh() {
	v.list.SetSections(list.PinSections(v.pins, v.Tag()))
	v.statusbar.SetResultCount(v.list.Count())
	v.statusbar.SetMessage("")
}

// View renders the pin list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	title := v.styles.Title.Render("Pins")
	filter := v.styles.Muted.Render("all tags")
	if t := v.Tag(); t != "" {
		filter = v.styles.Subtitle.Render(fmt.Sprintf("#%s", t))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+filter,
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	)
}

// SetMessage shows a transient message in the status bar.
func (v *View) SetMessage(msg string) {
	v.statusbar.SetMessage(msg)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// SelectedRow returns the currently selected row.
func (v *View) SelectedRow() *list.Row {
	return v.list.SelectedRow()
}
