// Package input is the search box: a bubbles textinput with query history
// on up/down and tab completion of structure, biome and pin names.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
)

const placeholder = "120, -40 · pin name · village · cherry grove"

type SearchInput struct {
	field   textinput.Model
	styles  *styles.Styles
	width   int
	history history
}

func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = placeholder
	field.CharLimit = 256
	field.Width = 50
	field.ShowSuggestions = true
	field.Focus()

	return &SearchInput{field: field, styles: s, width: 50}
}

func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update walks the history on up and down and passes every other message to
// the text field. Tab accepts the shown completion.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // only history keys are intercepted
		switch key.Type {
		case tea.KeyUp:
			s.Previous()
			return s, nil
		case tea.KeyDown:
			s.Next()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Find: ")
	box := s.styles.InputField.Render(s.field.View())
	//nolint:misspell // lipgloss spells it Center
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box)
}

func (s *SearchInput) Value() string         { return s.field.Value() }
func (s *SearchInput) SetValue(value string) { s.field.SetValue(value) }

// SetCompletions replaces the words offered for tab completion.
func (s *SearchInput) SetCompletions(words []string) {
	s.field.SetSuggestions(words)
}

// Completions returns the words offered for tab completion.
func (s *SearchInput) Completions() []string {
	return s.field.AvailableSuggestions()
}

// Remember records a submitted query.
func (s *SearchInput) Remember(query string) {
	s.history.add(query)
}

// History returns the remembered queries, oldest first.
func (s *SearchInput) History() []string {
	return s.history.entries
}

// Previous shows the previous remembered query.
func (s *SearchInput) Previous() {
	if q, ok := s.history.back(s.field.Value()); ok {
		s.show(q)
	}
}

// Next shows the following remembered query, or the unsent draft after the
// newest one.
func (s *SearchInput) Next() {
	if q, ok := s.history.forward(); ok {
		s.show(q)
	}
}

func (s *SearchInput) show(q string) {
	s.field.SetValue(q)
	s.field.CursorEnd()
}

func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }
func (s *SearchInput) Blur()          { s.field.Blur() }
func (s *SearchInput) Focused() bool  { return s.field.Focused() }

// SetWidth sizes the field to width, less room for the label and border.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-10, 20)
}

func (s *SearchInput) Width() int { return s.width }

// Reset clears the field and stops browsing history.
func (s *SearchInput) Reset() {
	s.field.Reset()
	s.history.rewind()
}
