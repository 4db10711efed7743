package search

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/list"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

type action string

const (
	actionGoTo   action = "Go here"
	actionAddPin action = "Save as pin"
	actionCancel action = "Cancel"
)

// actionMenu is the popup opened with enter on a result row. Only rows that
// carry a proposed pin (structures and biomes) offer actionAddPin.
type actionMenu struct {
	row     list.Row
	actions []action
	cursor  int
}

func newActionMenu(row list.Row) *actionMenu {
	actions := []action{actionGoTo, actionCancel}
	if row.Pin != nil {
		actions = []action{actionGoTo, actionAddPin, actionCancel}
	}
	return &actionMenu{row: row, actions: actions}
}

func (m *actionMenu) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), len(m.actions)-1)
}

// run turns the highlighted action into a request for the app. Cancel
// yields nil.
func (m *actionMenu) run() tea.Cmd {
	switch m.actions[m.cursor] {
	case actionGoTo:
		return goTo(m.row.Point)
	case actionAddPin:
		pin := m.row.Pin.Clone()
		return func() tea.Msg { return messages.PinRequested{Pin: pin} }
	default:
		return nil
	}
}

func (m *actionMenu) render(s *styles.Styles) string {
	lines := []string{s.Subtitle.Render(m.row.Label)}
	for i, a := range m.actions {
		if i == m.cursor {
			lines = append(lines, s.Selected.Render("> "+string(a)))
		} else {
			lines = append(lines, s.Normal.Render("  "+string(a)))
		}
	}
	return s.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func goTo(p domain.Point) tea.Cmd {
	return func() tea.Msg { return messages.GoTo{Point: p} }
}
