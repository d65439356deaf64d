package config

import (
	"maps"
	"slices"
)

// DefaultURL is the vault address used when no source provides one.
const DefaultURL = "http://localhost:8200"

// Defaults is the baseline record of recognized settings. Its values are never
// mutated; Settings hands out a fresh mapping on every call.
type Defaults struct {
	values map[string]any
}

// BuiltinDefaults returns the record vault-cli ships with.
func BuiltinDefaults() Defaults {
	return Defaults{values: map[string]any{
		"base_path":      nil,
		"login_cert":     nil,
		"login_cert_key": nil,
		"password":       nil,
		"token":          nil,
		"url":            DefaultURL,
		"username":       nil,
		"verify":         true,
		"ca_bundle":      nil,
		"safe_write":     false,
		"follow":         true,
		"select_config":  nil,
		"configs":        nil,
	}}
}

// NewDefaults builds a record from flat scalar values. The input is copied.
func NewDefaults(values map[string]any) Defaults {
	return Defaults{values: maps.Clone(values)}
}

// Settings returns a new mapping seeded with the default values.
func (d Defaults) Settings() Settings {
	out := make(Settings, len(d.values))
	for name, value := range d.values {
		out[name] = value
	}
	return out
}

// Has reports whether name is a recognized setting.
func (d Defaults) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// IsBool reports whether the default for name is boolean-typed.
func (d Defaults) IsBool(name string) bool {
	_, ok := d.values[name].(bool)
	return ok
}

// Names returns the recognized setting names in sorted order.
func (d Defaults) Names() []string {
	return slices.Sorted(maps.Keys(d.values))
}

func (d Defaults) isZero() bool {
	return d.values == nil
}
