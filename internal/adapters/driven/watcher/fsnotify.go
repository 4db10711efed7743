// Package watcher reports changes other programs make to package directories.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/pkgdir"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// Ensure FSNotifyWatcher implements the interface.
var _ driven.PackageWatcher = (*FSNotifyWatcher)(nil)

// watchedOps are the operations that change a package's contents.
const watchedOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// FSNotifyWatcher implements driven.PackageWatcher using fsnotify.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
	resolve func(location string) string
	once    sync.Once
}

// NewFSNotifyWatcher creates a new package watcher. The resolve function maps
// a location to its package directory; nil treats locations as paths.
func NewFSNotifyWatcher(resolve func(location string) string) (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if resolve == nil {
		resolve = filepath.Clean
	}
	return &FSNotifyWatcher{watcher: w, resolve: resolve}, nil
}

// Watch monitors the package's manifest and Images directory.
func (w *FSNotifyWatcher) Watch(ctx context.Context, location string) (<-chan driven.PackageEvent, error) {
	dir := w.resolve(location)
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}
	images := filepath.Join(dir, pkgdir.ImagesDir)
	if err := w.watcher.Add(images); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	logger.Debug("Watching %s", dir)

	events := make(chan driven.PackageEvent, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !relevant(dir, event) {
					continue
				}
				// Images/ may be created after the watch started
				if event.Name == images && event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(images); err == nil && info.IsDir() {
						_ = w.watcher.Add(images)
					}
				}

				select {
				case events <- driven.PackageEvent{Location: location, Path: event.Name}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error on %s: %v", dir, err)
			}
		}
	}()

	return events, nil
}

// Close stops the watcher.
func (w *FSNotifyWatcher) Close() error {
	var err error
	w.once.Do(func() { err = w.watcher.Close() })
	return err
}

// relevant reports whether event touches the manifest or an image.
// Hidden files, including in-flight temporary writes, are ignored.
func relevant(dir string, event fsnotify.Event) bool {
	if event.Op&watchedOps == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch filepath.Dir(event.Name) {
	case filepath.Clean(dir):
		return name == pkgdir.ManifestFile || name == pkgdir.ImagesDir
	case filepath.Join(dir, pkgdir.ImagesDir):
		return true
	default:
		return false
	}
}
