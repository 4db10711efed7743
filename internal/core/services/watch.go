package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// DefaultWatchInterval is the minimum gap between two change notices.
const DefaultWatchInterval = 500 * time.Millisecond

// ErrNoWatcher is returned when no package watcher is configured.
var ErrNoWatcher = errors.New("package watching is not available")

// WatchService throttles package events into change notices.
// The first event of a quiet period is reported immediately; events that
// arrive within the interval after a notice are merged into the next one.
type WatchService struct {
	watcher  driven.PackageWatcher
	interval time.Duration
}

// NewWatchService creates a watch service. A non-positive interval uses the default.
func NewWatchService(watcher driven.PackageWatcher, interval time.Duration) *WatchService {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &WatchService{watcher: watcher, interval: interval}
}

// Watch starts watching location and returns the throttled notice stream.
func (s *WatchService) Watch(ctx context.Context, location string) (<-chan driving.ChangeNotice, error) {
	if s.watcher == nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWatcher, domain.ErrNotImplemented)
	}

	events, err := s.watcher.Watch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", location, err)
	}

	// One slot so the final flush on cancel does not need a waiting reader.
	out := make(chan driving.ChangeNotice, 1)
	limiter := rate.NewLimiter(rate.Every(s.interval), 1)

	go func() {
		defer close(out)

		var pending []string
		var timer *time.Timer
		var fire <-chan time.Time

		stopTimer := func() {
			if timer != nil {
				timer.Stop()
			}
		}
		defer stopTimer()

		add := func(path string) {
			if !slices.Contains(pending, path) {
				pending = append(pending, path)
			}
		}

		// flush hands over whatever is pending without blocking. Events
		// already queued by the watcher are included.
		flush := func() {
			for drained := false; !drained; {
				select {
				case ev, ok := <-events:
					if !ok {
						drained = true
						break
					}
					add(ev.Path)
				default:
					drained = true
				}
			}
			if len(pending) == 0 {
				return
			}
			select {
			case out <- driving.ChangeNotice{Location: location, Paths: pending}:
			default:
				logger.Debug("watch: dropped %d pending paths for %s", len(pending), location)
			}
		}

		emit := func() bool {
			notice := driving.ChangeNotice{Location: location, Paths: pending}
			pending = nil
			select {
			case out <- notice:
				logger.Debug("watch: %s changed (%d files)", location, len(notice.Paths))
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				flush()
				return

			case ev, ok := <-events:
				if !ok {
					if len(pending) > 0 {
						emit()
					}
					return
				}
				add(ev.Path)
				if fire == nil {
					timer = time.NewTimer(limiter.Reserve().Delay())
					fire = timer.C
				}

			case <-fire:
				fire = nil
				if !emit() {
					return
				}
			}
		}
	}()

	return out, nil
}
