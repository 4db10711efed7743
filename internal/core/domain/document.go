package domain

import (
	"fmt"
	"maps"
	"slices"
)

// Document is an open map document: the latest-version manifest plus the
// image assets its pins refer to by name.
//
// Every image a pin references must exist in Assets. Assets no pin
// references are tolerated until the next pin removal sweeps them.
type Document struct {
	Manifest Manifest
	Assets   map[string][]byte
}

// NewDocument creates a document from a manifest and its assets.
func NewDocument(manifest Manifest, assets map[string][]byte) *Document {
	if assets == nil {
		assets = make(map[string][]byte)
	}
	return &Document{Manifest: manifest, Assets: assets}
}

// SampleDocument creates a document from the new-world template.
func SampleDocument() *Document {
	return NewDocument(SampleManifest(), nil)
}

// AddPin appends a pin. Pins are not deduplicated.
func (d *Document) AddPin(pin Pin) {
	if pin.Color == "" {
		pin.Color = DefaultPinColor
	}
	d.Manifest.Pins = append(d.Manifest.Pins, pin)
}

// Pin returns the pin at index.
func (d *Document) Pin(index int) (Pin, error) {
	if err := d.checkPinIndex(index); err != nil {
		return Pin{}, err
	}
	return d.Manifest.Pins[index], nil
}

// RemovePin removes the pin at index and deletes every asset no remaining
// pin references.
func (d *Document) RemovePin(index int) error {
	return d.RemovePins([]int{index})
}

// RemovePins removes the pins at the given offsets into the current pin
// sequence, then sweeps unreferenced assets once against the survivors.
// Duplicate offsets are ignored. No pin is removed if any offset is invalid.
func (d *Document) RemovePins(indices []int) error {
	drop := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		if err := d.checkPinIndex(index); err != nil {
			return err
		}
		drop[index] = struct{}{}
	}

	kept := make([]Pin, 0, len(d.Manifest.Pins)-len(drop))
	for i, pin := range d.Manifest.Pins {
		if _, ok := drop[i]; !ok {
			kept = append(kept, pin)
		}
	}
	d.Manifest.Pins = kept
	d.sweepAssets()
	return nil
}

// UpdatePin replaces the pin at index and sweeps assets the old pin alone referenced.
func (d *Document) UpdatePin(index int, pin Pin) error {
	if err := d.checkPinIndex(index); err != nil {
		return err
	}
	if pin.Color == "" {
		pin.Color = DefaultPinColor
	}
	d.Manifest.Pins[index] = pin
	d.sweepAssets()
	return nil
}

// AttachImage stores data under name and appends name to the pin's images.
func (d *Document) AttachImage(index int, name string, data []byte) error {
	if err := d.checkPinIndex(index); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("empty asset name: %w", ErrInvalidInput)
	}
	d.Assets[name] = data

	pin := &d.Manifest.Pins[index]
	if !pin.HasImage(name) {
		pin.Images = append(slices.Clone(pin.Images), name)
	}
	return nil
}

// EditWorld replaces the world settings. Any geometry derived from the old
// settings is stale afterwards.
func (d *Document) EditWorld(settings WorldSettings) {
	d.Manifest.World = settings
}

// PushRecentLocation records a visit and returns the point as the new current location.
func (d *Document) PushRecentLocation(p Point) Point {
	return d.Manifest.RecentLocations.Push(p)
}

// RemoveRecentLocation deletes the recent location at index.
func (d *Document) RemoveRecentLocation(index int) error {
	return d.Manifest.RecentLocations.Remove(index)
}

// AllTags returns the union of every pin's tags.
func (d *Document) AllTags() []string {
	return d.Manifest.AllTags()
}

// PinsWithTag returns the pins carrying tag, in document order.
func (d *Document) PinsWithTag(tag string) []Pin {
	var pins []Pin
	for _, pin := range d.Manifest.Pins {
		if pin.HasTag(tag) {
			pins = append(pins, pin)
		}
	}
	return pins
}

// ReferencedAssets returns the set of asset names referenced by any pin.
func (d *Document) ReferencedAssets() map[string]struct{} {
	live := make(map[string]struct{})
	for _, pin := range d.Manifest.Pins {
		for _, name := range pin.Images {
			live[name] = struct{}{}
		}
	}
	return live
}

// Validate reports the first pin image with no matching asset.
func (d *Document) Validate() error {
	for i, pin := range d.Manifest.Pins {
		for _, name := range pin.Images {
			if _, ok := d.Assets[name]; !ok {
				return fmt.Errorf("pin %d (%s) references %q: %w", i, pin.Name, name, ErrDanglingAsset)
			}
		}
	}
	return nil
}

// AssetNames returns the stored asset names, sorted.
func (d *Document) AssetNames() []string {
	return slices.Sorted(maps.Keys(d.Assets))
}

// sweepAssets recomputes the live reference set from the current pins and
// deletes everything else.
func (d *Document) sweepAssets() {
	live := d.ReferencedAssets()
	for name := range d.Assets {
		if _, ok := live[name]; !ok {
			delete(d.Assets, name)
		}
	}
}

func (d *Document) checkPinIndex(index int) error {
	if index < 0 || index >= len(d.Manifest.Pins) {
		return fmt.Errorf("pin %d of %d: %w", index, len(d.Manifest.Pins), ErrIndexOutOfRange)
	}
	return nil
}
