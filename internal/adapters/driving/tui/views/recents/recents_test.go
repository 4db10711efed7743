package recents

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

func newReadyView() *View {
	doc := domain.SampleDocument()
	doc.Manifest.RecentLocations = domain.RecentLocations{{X: 1, Y: 1}, {X: 2000, Y: -2}}
	v := NewView(nil, nil)
	v.SetDimensions(100, 30)
	v.SetDocument(doc)
	return v
}

func TestView_NewestFirst(t *testing.T) {
	v := newReadyView()

	row := v.SelectedRow()
	require.NotNil(t, row)
	assert.Equal(t, domain.Point{X: 2000, Y: -2}, row.Point)
	assert.Equal(t, 1, row.Index)

	view := v.View()
	assert.Contains(t, view, "Recent locations")
	assert.Contains(t, view, "2,000, -2")
	assert.Contains(t, view, "current")
	assert.Contains(t, view, "2 locations")
}

func TestView_Empty(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(100, 30)
	v.SetDocument(domain.SampleDocument())

	assert.Contains(t, v.View(), "No recent locations")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Nil(t, cmd)
}

func TestView_Keys(t *testing.T) {
	t.Run("remove second row", func(t *testing.T) {
		v := newReadyView()
		v.Update(tea.KeyMsg{Type: tea.KeyDown})

		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

		require.NotNil(t, cmd)
		assert.Equal(t, messages.RecentRemoveRequested{Index: 0}, cmd())
	})

	t.Run("go to", func(t *testing.T) {
		v := newReadyView()

		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.NotNil(t, cmd)
		assert.Equal(t, messages.GoTo{Point: domain.Point{X: 2000, Y: -2}}, cmd())
	})

	t.Run("back", func(t *testing.T) {
		v := newReadyView()

		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

		require.NotNil(t, cmd)
		assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
	})
}
