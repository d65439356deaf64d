package config

import (
	"slices"
	"strings"
)

const (
	selectConfigKey = "select_config"
	configsKey      = "configs"
)

// SelectProfile consumes the select_config and configs keys. When a profile
// is selected, its values are deep-merged over a copy of values. Both keys
// are absent from the result whether or not a profile was selected.
func SelectProfile(values Settings) (Settings, error) {
	out := values.Clone()

	selected, _ := out.Pop(selectConfigKey)
	configs, _ := out.Pop(configsKey)

	if isFalsy(selected) {
		return out, nil
	}

	name, ok := selected.(string)
	if !ok {
		return nil, settingsErrorf("select_config is not a string: %q", formatValue(selected))
	}

	var profiles map[string]any
	switch KindOf(configs) {
	case KindMapping:
		profiles, _ = asMapping(configs)
	default:
		return nil, settingsErrorf("configs is not a mapping: %q", formatValue(configs))
	}

	profile, ok := profiles[name]
	if !ok {
		available := make([]string, 0, len(profiles))
		for key := range profiles {
			available = append(available, key)
		}
		slices.Sort(available)
		return nil, settingsErrorf("cannot find configuration %q, available: %s", name, strings.Join(available, ", "))
	}

	switch KindOf(profile) {
	case KindMapping:
		overrides, _ := asMapping(profile)
		Merge(out, Settings(overrides))
		return out, nil
	default:
		return nil, settingsErrorf("config with key %q is a %s, expected a mapping: %q", name, KindOf(profile), formatValue(profile))
	}
}
