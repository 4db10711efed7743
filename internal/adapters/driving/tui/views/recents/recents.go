// Package recents provides the recent locations view for the TUI.
package recents

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/list"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/status"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// View lists recent locations, newest first.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ResultList
	statusbar *status.Bar
	ready     bool
}

// NewView creates a new recent locations view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	l := list.NewResultList(s)
	l.SetEmptyText("No recent locations")

	bar := status.NewBar(s, km)
	bar.SetState(status.StateRecents)

	return &View{styles: s, keymap: km, list: l, statusbar: bar}
}

// SetDocument refreshes the list from doc.
func (v *View) SetDocument(doc *domain.Document) {
	recents := doc.Manifest.RecentLocations
	v.list.SetSections(list.RecentSections(recents))
	v.statusbar.SetDocument(doc)
	v.statusbar.SetResultCount(len(recents))
	v.statusbar.SetMessage("")
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the recent locations list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
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
			if row := v.list.SelectedRow(); row != nil {
				index := row.Index
				return v, func() tea.Msg { return messages.RecentRemoveRequested{Index: index} }
			}
		}
	}
	return v, nil
}

// View renders the recent locations list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Recent locations"),
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
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// SelectedRow returns the currently selected row.
func (v *View) SelectedRow() *list.Row {
	return v.list.SelectedRow()
}
