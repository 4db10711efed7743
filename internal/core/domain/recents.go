package domain

import "fmt"

// MaxRecentLocations is the capacity of the recent locations history.
const MaxRecentLocations = 15

// RecentLocations is a bounded, chronological history of visited points.
// The oldest entry is first; duplicates are permitted.
type RecentLocations []Point

// Push appends p, evicting the oldest entries past the cap.
// It returns p so callers can adopt it as the current location.
func (r *RecentLocations) Push(p Point) Point {
	locations := append(*r, p)
	if over := len(locations) - MaxRecentLocations; over > 0 {
		locations = append(locations[:0:0], locations[over:]...)
	}
	*r = locations
	return p
}

// Remove deletes the entry at index.
func (r *RecentLocations) Remove(index int) error {
	if index < 0 || index >= len(*r) {
		return fmt.Errorf("recent location %d of %d: %w", index, len(*r), ErrIndexOutOfRange)
	}
	locations := *r
	*r = append(locations[:index:index], locations[index+1:]...)
	return nil
}

// Latest returns the newest entry.
func (r RecentLocations) Latest() (Point, bool) {
	if len(r) == 0 {
		return Point{}, false
	}
	return r[len(r)-1], true
}
