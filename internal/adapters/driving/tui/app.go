package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/keymap"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/messages"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/views/menu"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/views/pins"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/views/recents"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/views/search"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// App is the root tea.Model. It owns the views and is the only place the
// document service is called from; after every edit it reloads the document
// and hands the fresh copy to each view.
type App struct {
	ports    *Ports
	location string
	ctx      context.Context
	styles   *styles.Styles

	menuView    *menu.View
	searchView  *search.View
	pinsView    *pins.View
	recentsView *recents.View
	currentView messages.ViewType

	document *domain.Document
	// notice waits for the reload that follows a successful edit.
	notice string
	err    error

	width, height int
	ready         bool
}

var _ tea.Model = (*App)(nil)

// NewApp builds the app for the document at location. Nothing is opened
// until Init runs.
func NewApp(ports *Ports, location string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if location == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingLocation)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		location:    location,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, km),
		searchView:  search.NewView(s, km, ports.Search, ports.Settings),
		pinsView:    pins.NewView(s, km),
		recentsView: recents.NewView(s, km),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for document calls and searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("mcmaps - "+a.location),
		a.loadDocument(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forwardKey(msg)

	case messages.DocumentLoaded:
		a.handleDocumentLoaded(msg)
		return a, nil

	case messages.GoTo, messages.PinRequested, messages.PinRemoveRequested, messages.RecentRemoveRequested:
		return a, a.request(msg)

	case messages.DocumentChanged:
		if msg.Err != nil {
			a.err = msg.Err
			a.setNotice("Error: " + msg.Err.Error())
			return a, nil
		}
		a.notice = msg.Description
		return a, a.loadDocument()

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSearch {
			a.searchView.Reset()
			return a, a.searchView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blinks and the like only matter to the search box.
	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

// request performs an edit asked for by a view.
func (a *App) request(msg tea.Msg) tea.Cmd {
	docs := a.ports.Document
	switch msg := msg.(type) {
	case messages.GoTo:
		return a.edit("Moved to "+msg.Point.Readout(), func() error {
			_, err := docs.PushRecentLocation(a.ctx, a.location, msg.Point)
			return err
		})
	case messages.PinRequested:
		return a.edit(fmt.Sprintf("Saved pin %q", msg.Pin.Name), func() error {
			_, err := docs.AddPin(a.ctx, a.location, msg.Pin)
			return err
		})
	case messages.PinRemoveRequested:
		return a.edit("Removed pin", func() error {
			return docs.RemovePins(a.ctx, a.location, []int{msg.Index})
		})
	case messages.RecentRemoveRequested:
		return a.edit("Removed location", func() error {
			return docs.RemoveRecentLocation(a.ctx, a.location, msg.Index)
		})
	}
	return nil
}

func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewPins:
		a.pinsView, cmd = a.pinsView.Update(msg)
	case messages.ViewRecents:
		a.recentsView, cmd = a.recentsView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) loadDocument() tea.Cmd {
	return func() tea.Msg {
		doc, err := a.ports.Document.Open(a.ctx, a.location)
		return messages.DocumentLoaded{Document: doc, Err: err}
	}
}

// edit runs fn as a command; the result comes back as DocumentChanged.
func (a *App) edit(description string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return messages.DocumentChanged{Description: description, Err: fn()}
	}
}

func (a *App) handleDocumentLoaded(msg messages.DocumentLoaded) {
	if msg.Err != nil {
		a.err = msg.Err
		a.setNotice("Error: " + msg.Err.Error())
		return
	}

	a.err = nil
	a.document = msg.Document
	a.menuView.SetDocument(msg.Document)
	a.searchView.SetDocument(msg.Document)
	a.pinsView.SetDocument(msg.Document)
	a.recentsView.SetDocument(msg.Document)

	if a.notice != "" {
		a.setNotice(a.notice)
		a.notice = ""
	}
}

// setNotice shows text in every view's status bar.
func (a *App) setNotice(text string) {
	a.searchView.SetMessage(text)
	a.pinsView.SetMessage(text)
	a.recentsView.SetMessage(text)
}

func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewPins:
		return a.pinsView.View()
	case messages.ViewRecents:
		return a.recentsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// Run blocks until the program exits. opts are appended after the
// alternate screen and the app context.
func (a *App) Run(opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	p := tea.NewProgram(a, opts...)
	_, err := p.Run()
	return err
}

func (a *App) Document() *domain.Document     { return a.document }
func (a *App) CurrentView() messages.ViewType { return a.currentView }
func (a *App) Err() error                     { return a.err }
func (a *App) Ready() bool                    { return a.ready }

// SetDimensions resizes every view. The first call marks the app ready.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.pinsView.SetDimensions(width, height)
	a.recentsView.SetDimensions(width, height)
}
