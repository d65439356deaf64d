package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
)

// EnvPrefix prefixes every environment variable vault-cli reads.
const EnvPrefix = "VAULT_CLI"

// EnvironSnapshot captures the current VAULT_CLI_* environment variables,
// keyed by their unmodified names.
func EnvironSnapshot() (map[string]string, error) {
	raw, err := env.Provider(EnvPrefix+"_", "", nil).Read()
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	environ := make(map[string]string, len(raw))
	for key, value := range raw {
		environ[key] = fmt.Sprint(value)
	}
	return environ, nil
}

// DecodeEnv turns VAULT_CLI_<NAME> variables into Settings. Names not known
// to defaults are ignored. Settings whose default is a boolean are decoded
// with LoadBool; all others keep the raw string.
func DecodeEnv(environ map[string]string, defaults Defaults) (Settings, error) {
	prefix := EnvPrefix + "_"
	result := Settings{}

	for key, raw := range environ {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(key[len(prefix):])
		if !defaults.Has(name) {
			continue
		}

		if !defaults.IsBool(name) {
			result[name] = raw
			continue
		}
		value, err := LoadBool(raw)
		if err != nil {
			return nil, err
		}
		result[name] = value
	}

	return result, nil
}

// coerceBools decodes string values of boolean-typed settings with LoadBool,
// so YAML 1.1 spellings such as "yes" and "no" keep working. Values LoadBool
// rejects are left as they are.
func coerceBools(values Settings, defaults Defaults) {
	for name, value := range values {
		raw, ok := value.(string)
		if !ok || !defaults.IsBool(name) {
			continue
		}
		if decoded, err := LoadBool(raw); err == nil {
			values[name] = decoded
		}
	}
}

// LoadBool interprets value as a boolean, ignoring case.
func LoadBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "t", "1", "yes", "y":
		return true, nil
	case "false", "f", "0", "no", "n":
		return false, nil
	}
	return false, settingsErrorf("value %q could not be interpreted as boolean", value)
}
