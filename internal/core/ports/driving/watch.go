package driving

import "context"

// ChangeNotice reports that a package was modified by another program.
type ChangeNotice struct {
	// Location is the package that changed.
	Location string

	// Paths lists the changed files since the previous notice, without duplicates.
	Paths []string
}

// WatchService turns raw storage events into throttled change notices.
type WatchService interface {
	// Watch emits a notice per burst of changes until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, location string) (<-chan ChangeNotice, error)
}
