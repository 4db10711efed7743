package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/config"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Used by tests and by sessions that
// must not touch ~/.mcmaps.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	seed   map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return NewSeededConfigStore(nil)
}

// NewSeededConfigStore returns a store holding a copy of seed. Load restores
// the seed, discarding later writes.
func NewSeededConfigStore(seed map[string]any) *ConfigStore {
	s := &ConfigStore{seed: maps.Clone(seed)}
	_ = s.Load()
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	return config.String(v)
}

func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	return config.Int(v)
}

func (s *ConfigStore) Set(key string, value any) error {
	if err := config.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = maps.Clone(s.seed)
	if s.values == nil {
		s.values = make(map[string]any)
	}
	return nil
}

func (s *ConfigStore) Path() string { return ":memory:" }
