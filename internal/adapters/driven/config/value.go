// Package config holds the key and value rules shared by every ConfigStore
// adapter, so the TOML file and the in-memory store agree on what a key
// looks like and how stored values read back.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// EnvPrefix prefixes environment variables that override stored keys.
const EnvPrefix = "MCMAPS_"

// ValidateKey reports whether key is a dotted path of lower-case segments,
// e.g. "search.structure_radius".
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty config key", domain.ErrInvalidInput)
	}
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return fmt.Errorf("%w: config key %q has an empty segment", domain.ErrInvalidInput, key)
		}
		for _, r := range segment {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
				return fmt.Errorf("%w: config key %q contains %q", domain.ErrInvalidInput, key, r)
			}
		}
	}
	return nil
}

// EnvName maps a key to its override variable:
// "search.structure_radius" becomes MCMAPS_SEARCH_STRUCTURE_RADIUS.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// String renders a stored scalar. Strings pass through, numbers and booleans
// are formatted; anything else reads as "".
func String(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int reads a stored value as an int. TOML decodes integers as int64 and
// environment overrides arrive as strings, so both are accepted. Floats must
// be whole numbers.
func Int(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0
		}
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
