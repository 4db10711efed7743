package input

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
)

func typeString(in *SearchInput, s string) {
	for _, r := range s {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Empty(t, input.History())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	assert.NotNil(t, NewSearchInput(nil).Init())
}

func TestSearchInput_Typing(t *testing.T) {
	input := NewSearchInput(nil)

	typeString(input, "120, -40")

	assert.Equal(t, "120, -40", input.Value())
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	assert.Contains(t, input.View(), "Find:")
}

func TestSearchInput_Remember(t *testing.T) {
	t.Run("ignores empty and consecutive repeats", func(t *testing.T) {
		input := NewSearchInput(nil)
		input.Remember("village")
		input.Remember("village")
		input.Remember("")
		input.Remember("base")
		input.Remember("village")

		assert.Equal(t, []string{"village", "base", "village"}, input.History())
	})

	t.Run("is bounded", func(t *testing.T) {
		input := NewSearchInput(nil)
		for i := range maxHistory + 5 {
			input.Remember(fmt.Sprintf("q%d", i))
		}

		history := input.History()
		assert.Len(t, history, maxHistory)
		assert.Equal(t, "q5", history[0])
	})
}

func TestSearchInput_HistoryNavigation(t *testing.T) {
	input := NewSearchInput(nil)
	input.Remember("village")
	input.Remember("ocean")
	typeString(input, "dra")

	input.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ocean", input.Value())

	input.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "village", input.Value())

	// Already at the oldest entry.
	input.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "village", input.Value())

	input.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ocean", input.Value())

	input.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "dra", input.Value())

	// Past the end is a no-op.
	input.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "dra", input.Value())
}

func TestSearchInput_FocusAndBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	tests := []struct {
		width      int
		inputWidth int
	}{
		{width: 100, inputWidth: 90},
		{width: 25, inputWidth: 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("width %d", tt.width), func(t *testing.T) {
			input := NewSearchInput(nil)
			input.SetWidth(tt.width)
			assert.Equal(t, tt.width, input.Width())
			assert.Equal(t, tt.inputWidth, input.field.Width)
		})
	}
}

func TestSearchInput_Reset(t *testing.T) {
	input := NewSearchInput(nil)
	input.Remember("village")
	input.Previous()

	input.Reset()

	assert.Equal(t, "", input.Value())
	input.Previous()
	assert.Equal(t, "village", input.Value())
}

func TestSearchInput_TabCompletes(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetCompletions([]string{"Village", "Cherry Grove"})
	assert.Equal(t, []string{"Village", "Cherry Grove"}, input.Completions())

	typeString(input, "Vil")
	input.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "Village", input.Value())
}

func TestHistory_BoundedAndDeduplicated(t *testing.T) {
	var h history
	for i := 0; i < maxHistory+5; i++ {
		h.add(string(rune('a' + i%26)))
		h.add(string(rune('a' + i%26)))
	}

	assert.Len(t, h.entries, maxHistory)
	assert.Equal(t, len(h.entries), h.cursor)

	prev, ok := h.back("draft")
	require.True(t, ok)
	assert.Equal(t, h.entries[len(h.entries)-1], prev)

	next, ok := h.forward()
	require.True(t, ok)
	assert.Equal(t, "draft", next)

	_, ok = h.forward()
	assert.False(t, ok)
}
