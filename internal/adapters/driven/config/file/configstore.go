package file

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/config"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

// ConfigDirEnv overrides the default config directory.
const ConfigDirEnv = "MCMAPS_CONFIG_DIR"

const fileName = "config.toml"

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists settings to a TOML file. Dotted keys are stored as
// tables, so "search.structure_radius" lives under [search].
//
// An environment variable named by config.EnvName shadows the file for
// reads. Set still writes the file.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
	getenv func(string) (string, bool)
}

// NewConfigStore opens dir/config.toml, creating dir if needed. An empty dir
// resolves to $MCMAPS_CONFIG_DIR, then ~/.mcmaps.
func NewConfigStore(dir string) (*ConfigStore, error) {
	dir, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	s := &ConfigStore{
		path:   filepath.Join(dir, fileName),
		getenv: os.LookupEnv,
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if env := os.Getenv(ConfigDirEnv); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home dir: %w", err)
	}
	return filepath.Join(home, ".mcmaps"), nil
}

func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.getenv(config.EnvName(key)); ok {
		return v, true
	}
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

// Keys lists keys stored in the file. Environment overrides are not included.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Set stores value and rewrites the file. On a write failure the previous
// value is restored.
func (s *ConfigStore) Set(key string, value any) error {
	if err := config.ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.write(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// write marshals the values and swaps them into place through a temp file in
// the same directory. Caller holds mu.
func (s *ConfigStore) write() error {
	data, err := toml.Marshal(unflatten(s.values))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error wins
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load re-reads the file. A missing file is an empty configuration.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	tables := make(map[string]any)
	if err := toml.Unmarshal(data, &tables); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.values = flatten(tables)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Path() string { return s.path }

// flatten turns nested tables into dotted keys: {"a": {"b": 1}} becomes
// {"a.b": 1}.
func flatten(tables map[string]any) map[string]any {
	out := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if sub, ok := v.(map[string]any); ok {
				walk(k, sub)
				continue
			}
			out[k] = v
		}
	}
	walk("", tables)
	return out
}

// unflatten reverses flatten. Keys are visited in sorted order, so when "a"
// holds a value any "a.*" key is dropped.
func unflatten(flat map[string]any) map[string]any {
	root := make(map[string]any)
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		table, leaf := root, key
		for {
			head, rest, nested := strings.Cut(leaf, ".")
			if !nested {
				break
			}
			next, ok := table[head].(map[string]any)
			if !ok {
				if _, taken := table[head]; taken {
					table = nil
					break
				}
				next = make(map[string]any)
				table[head] = next
			}
			table, leaf = next, rest
		}
		if table != nil {
			table[leaf] = flat[key]
		}
	}
	return root
}
