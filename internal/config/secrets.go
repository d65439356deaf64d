package config

import "go.uber.org/zap"

// SecretSettings may be sourced from a file through a <name>_file setting.
var SecretSettings = []string{"password", "token"}

// SecretFileKey returns the companion key that points name at a file.
func SecretFileKey(name string) string {
	return name + "_file"
}

// ResolveSecretFiles replaces each secret setting with the content of the
// file named by its <name>_file companion, which is removed from the result.
// A file value always wins over a direct value. Read errors are returned
// unwrapped.
func ResolveSecretFiles(values Settings, reader *FileReader, logger *zap.Logger) (Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := values.Clone()

	for _, name := range SecretSettings {
		raw, ok := out.Pop(SecretFileKey(name))
		if !ok || isFalsy(raw) {
			continue
		}
		path, ok := raw.(string)
		if !ok {
			return nil, settingsErrorf("%s is not a string: %q", SecretFileKey(name), formatValue(raw))
		}

		logger.Info("reading setting value from file", zap.String("setting", name), zap.String("path", path))
		content, err := reader.Read(path)
		if err != nil {
			return nil, err
		}
		out[name] = content
	}

	return out, nil
}
