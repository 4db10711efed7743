package driven

// ConfigStore is the key/value store behind SettingsService.
//
// Keys are dotted lower-case paths ("search.structure_radius"). File-backed
// stores group keys sharing a prefix into one table.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	// GetString reads key as a string. Numbers are formatted; missing keys
	// and non-scalar values read as "".
	GetString(key string) string

	// GetInt reads key as an int. Numeric strings are parsed; missing keys
	// and anything unparseable read as 0.
	GetInt(key string) int

	// Set validates key, stores value and persists it before returning.
	Set(key string, value any) error

	// Keys lists the stored keys, sorted.
	Keys() []string

	// Load re-reads the backing storage, replacing cached values.
	Load() error

	// Path identifies the backing storage.
	Path() string
}
