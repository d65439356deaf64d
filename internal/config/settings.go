package config

import (
	"slices"

	kmaps "github.com/knadh/koanf/maps"
)

// Settings is a flat mapping from setting name to value. Nested mappings are
// stored as map[string]any.
type Settings map[string]any

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	if s == nil {
		return Settings{}
	}
	return Settings(kmaps.Copy(s))
}

// Pop removes key from s and returns its previous value.
func (s Settings) Pop(key string) (any, bool) {
	value, ok := s[key]
	if ok {
		delete(s, key)
	}
	return value, ok
}

// Keys returns the setting names in sorted order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Update copies every top-level entry of overrides into s without recursing.
func (s Settings) Update(overrides Settings) {
	for key, value := range overrides {
		s[key] = value
	}
}

// Merge folds overrides into target in place. Only when both sides hold a
// mapping for the same key does it recurse; any other value in overrides
// (scalar, sequence, nil, or a mapping facing a non-mapping) replaces the
// target value. Keys present only in target are left alone.
func Merge(target, overrides Settings) {
	normalize(target)
	normalize(overrides)
	kmaps.Merge(overrides, target)
}

// normalize rewrites nested Settings and map[any]any values as
// map[string]any, the only mapping type the merge recurses into.
func normalize(m map[string]any) {
	for key, value := range m {
		if nested, ok := value.(Settings); ok {
			value = map[string]any(nested)
			m[key] = value
		}
		if nested, ok := value.(map[string]any); ok {
			normalize(nested)
		}
	}
	kmaps.IntfaceKeysToStrings(m)
}
