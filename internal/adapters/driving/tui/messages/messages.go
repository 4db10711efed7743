// Package messages holds the tea.Msg types passed between the app and its
// views. Views never edit the document themselves; they send one of the
// request messages below and the app answers with DocumentChanged.
package messages

import (
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// ViewType identifies a screen of the app.
type ViewType int

const (
	ViewMenu ViewType = iota
	ViewSearch
	ViewPins
	ViewRecents
	ViewHelp
)

var viewNames = [...]string{
	ViewMenu:    "menu",
	ViewSearch:  "search",
	ViewPins:    "pins",
	ViewRecents: "recents",
	ViewHelp:    "help",
}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// ViewChanged switches the active screen.
type ViewChanged struct {
	View ViewType
}

// DocumentLoaded carries the result of (re)opening the document.
type DocumentLoaded struct {
	Document *domain.Document
	Err      error
}

// SearchCompleted carries a result bundle for Query.
type SearchCompleted struct {
	Query  string
	Result domain.SearchResult
	Err    error
}

// Requests.
type (
	// GoTo makes Point the current location.
	GoTo struct{ Point domain.Point }

	PinRequested          struct{ Pin domain.Pin }
	PinRemoveRequested    struct{ Index int }
	RecentRemoveRequested struct{ Index int }
)

// DocumentChanged answers a request. Description is shown in the status
// bar once the document has been reloaded.
type DocumentChanged struct {
	Description string
	Err         error
}

// ErrorOccurred reports a failure that did not come from an edit.
type ErrorOccurred struct {
	Err error
}

type Quit struct{}
