// Package keymap holds the TUI key bindings and the hint sets each view
// shows in its status bar.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is shared by every view. Search and Actions both use enter; which
// applies depends on whether the query box has focus.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up   key.Binding
	Down key.Binding

	Search    key.Binding // submit the query
	NewSearch key.Binding // clear results and refocus the query box
	Actions   key.Binding // open the action menu for a result

	GoTo   key.Binding // push the selected row as the current location
	Remove key.Binding // delete the selected pin or recent location
	Tag    key.Binding // cycle the pin list's tag filter
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:   bind("↑/k", "up", "up", "k"),
		Down: bind("↓/j", "down", "down", "j"),

		Search:    bind("enter", "search", "enter"),
		NewSearch: bind("n", "new search", "n"),
		Actions:   bind("enter", "actions", "enter"),

		GoTo:   bind("g", "go here", "g"),
		Remove: bind("d", "remove", "d", "delete"),
		Tag:    bind("t", "filter tag", "t"),
	}
}

// ShortHelp is shown while typing a query or with an empty result list.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Back}
}

func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.GoTo, k.Actions, k.Back}
}

func (k *KeyMap) PinsHelp() []key.Binding {
	return []key.Binding{k.GoTo, k.Tag, k.Remove, k.Back}
}

func (k *KeyMap) RecentsHelp() []key.Binding {
	return []key.Binding{k.GoTo, k.Remove, k.Back}
}

// FullHelp groups every binding in columns.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.GoTo},
		{k.Search, k.Actions, k.NewSearch},
		{k.Tag, k.Remove},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches reports whether the key press named keyStr (tea.KeyMsg.String)
// triggers binding. Disabled bindings never match.
func Matches(keyStr string, binding key.Binding) bool {
	return binding.Enabled() && slices.Contains(binding.Keys(), keyStr)
}
