// Package search provides the search box view for the TUI.
package search

import (
	"context"
	"errors"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/input"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/list"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/components/status"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/core/catalog"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
)

var (
	ErrNoSearchService = errors.New("search view: no search service")
	ErrNoDocument      = errors.New("search view: document not loaded yet")
)

type mode int

const (
	typing mode = iota
	browsing
)

// View is the query box over the grouped result list. Results are ranked
// from the current location at the time of the search.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService   driving.SearchService
	settingsService driving.SettingsService
	ctx             context.Context
	document        *domain.Document

	width, height int
	ready         bool
	err           error
	result        domain.SearchResult
	origin        domain.Point
	mode          mode
	// actions is non-nil while the action menu is open in browsing mode.
	actions *actionMenu
}

// NewView creates a new search view. settingsService may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		input:           input.NewSearchInput(s),
		list:            list.NewResultList(s),
		statusbar:       status.NewBar(s, km),
		searchService:   searchService,
		settingsService: settingsService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
		result:          domain.NewSearchResult(),
	}
}

func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// completions offers every catalog name valid for doc's world plus its pin
// names.
func completions(doc *domain.Document) []string {
	words := catalog.Names(doc.Manifest.World.GeneratorVersion)
	for _, pin := range doc.Manifest.Pins {
		words = append(words, pin.Name)
	}
	slices.Sort(words)
	return slices.Compact(words)
}

// SetDocument sets the document searched against.
func (v *View) SetDocument(doc *domain.Document) {
	v.document = doc
	v.statusbar.SetDocument(doc)
	v.input.SetCompletions(completions(doc))
}

func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.fail(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case v.actions != nil:
		return v.handleActionMenuKey(msg)
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case v.mode == typing:
		return v.typingKey(msg)
	default:
		return v, v.browsingKey(msg)
	}
}

func (v *View) typingKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	query := strings.TrimSpace(v.input.Value())
	if query == "" {
		return v, nil
	}
	v.input.Remember(query)
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")
	return v, v.search(query)
}

func (v *View) browsingKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch {
	case msg.Type == tea.KeyEnter:
		if row := v.list.SelectedRow(); row != nil {
			v.actions = newActionMenu(*row)
		}
	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(key, v.keymap.GoTo):
		if row := v.list.SelectedRow(); row != nil {
			return goTo(row.Point)
		}
	case keymap.Matches(key, v.keymap.NewSearch):
		v.mode = typing
		v.input.Reset()
		return v.input.Focus()
	}
	return nil
}

func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyEnter:
		menu := v.actions
		v.actions = nil
		return v, menu.run()
	case tea.KeyEsc:
		v.actions = nil
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.actions.move(-1)
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.actions.move(1)
	}
	return v, nil
}

// Options centres a search on the document's current location. Settings,
// when present, supply the dimension and structure radius.
func (v *View) Options() domain.SearchOptions {
	var current domain.Point
	if v.document != nil {
		current, _ = v.document.Manifest.RecentLocations.Latest()
	}
	origin := current.Rounded().ToOrigin(domain.DefaultOriginY)
	if v.settingsService != nil {
		return v.settingsService.SearchOptions(origin)
	}
	opts := domain.DefaultSearchOptions()
	opts.Origin = origin
	return opts
}

func (v *View) search(query string) tea.Cmd {
	doc, opts := v.document, v.Options()
	v.origin = opts.Origin.Flat()
	return func() tea.Msg {
		switch {
		case v.searchService == nil:
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		case doc == nil:
			return messages.ErrorOccurred{Err: ErrNoDocument}
		}
		result, err := v.searchService.Search(v.ctx, query, doc, opts)
		return messages.SearchCompleted{Query: query, Result: result, Err: err}
	}
}

func (v *View) fail(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}
	v.err = nil
	v.result = msg.Result
	v.list.SetSections(list.SearchSections(msg.Result, v.origin))
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(msg.Result.Count())

	// An empty bundle leaves the query box focused for another try.
	if !msg.Result.IsEmpty() {
		v.mode = browsing
		v.input.Blur()
	}
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	parts := []string{v.styles.Title.Render("Search"), "", v.input.View(), ""}
	if v.err != nil {
		parts = append(parts, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	parts = append(parts, v.list.View())
	if v.actions != nil {
		parts = append(parts, "", v.actions.render(v.styles))
	}
	parts = append(parts, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chrome is the number of lines around the result list.
const chrome = 10

func (v *View) SetDimensions(width, height int) {
	v.width, v.height = width, height
	v.ready = true
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-chrome)
	v.statusbar.SetWidth(width)
}

func (v *View) Ready() bool                 { return v.ready }
func (v *View) Query() string               { return v.input.Value() }
func (v *View) SetQuery(query string)       { v.input.SetValue(query) }
func (v *View) Result() domain.SearchResult { return v.result }
func (v *View) SelectedRow() *list.Row      { return v.list.SelectedRow() }
func (v *View) Err() error                  { return v.err }
func (v *View) InputFocused() bool          { return v.mode == typing }
func (v *View) ActionMenuVisible() bool     { return v.actions != nil }

// SetMessage shows a transient message in the status bar.
func (v *View) SetMessage(msg string) { v.statusbar.SetMessage(msg) }

// Reset returns to an empty query box. Query history survives.
func (v *View) Reset() {
	v.mode = typing
	v.input.Focus()
	v.input.Reset()
	v.list.SetSections(nil)
	v.result = domain.NewSearchResult()
	v.actions = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(0)
}
