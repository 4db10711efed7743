// Package domain is the map document model: positions and pins, the
// versioned manifest with its recent-location ring, the document that
// pairs a manifest with image assets, and the grouped search result.
//
// It imports nothing outside the standard library. Every other package in
// the module may import it; it imports none of them.
package domain
