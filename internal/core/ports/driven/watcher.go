package driven

import "context"

// PackageEvent reports that a package changed on storage.
type PackageEvent struct {
	// Location is the package that changed.
	Location string

	// Path is the file inside the package that triggered the event.
	Path string
}

// PackageWatcher notifies about changes made to a package by other programs.
type PackageWatcher interface {
	// Watch emits events until ctx is cancelled. The channel is closed on return.
	Watch(ctx context.Context, location string) (<-chan PackageEvent, error)

	// Close releases watcher resources.
	Close() error
}
