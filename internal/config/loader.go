package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader reads a single YAML config file into Settings.
type Loader struct {
	Fs     afero.Fs
	Logger *zap.Logger
}

// NewLoader returns a Loader reading from fsys.
func NewLoader(fsys afero.Fs, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Fs: fsys, Logger: logger}
}

// Load reads the file at path. The boolean is false when the file does not
// exist or cannot be read; both cases are logged and are not errors. An empty
// document yields empty Settings. Hyphens in top-level keys become
// underscores. Malformed YAML and documents that are not a mapping are errors.
func (l *Loader) Load(path string) (Settings, bool, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		l.Logger.Warn("cannot expand config file path (skipping)", zap.String("path", path), zap.Error(err))
		return nil, false, nil
	}

	data, err := afero.ReadFile(l.Fs, expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no config file (skipping)", zap.String("path", path))
			return nil, false, nil
		}
		l.Logger.Warn("config file exists but cannot be read, have you checked permissions? (skipping)",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false, nil
	}

	settings, err := parseDocument(data)
	if err != nil {
		return nil, false, fmt.Errorf("parse config file %s: %w", path, err)
	}
	l.Logger.Info("read yaml config file",
		zap.String("path", path),
		zap.Strings("keys", settings.Keys()),
	)
	return settings, true, nil
}

// parseDocument decodes a YAML document whose root must be a mapping or null.
func parseDocument(data []byte) (Settings, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Settings{}, nil
	}

	root := doc.Content[0]
	switch nodeKind(root) {
	case KindNull:
		return Settings{}, nil
	case KindMapping:
	default:
		return nil, settingsErrorf("config file root is a %s, expected a mapping", nodeKind(root))
	}

	var raw map[string]any
	if err := root.Decode(&raw); err != nil {
		return nil, err
	}
	return dashToUnderscores(raw), nil
}

func nodeKind(n *yaml.Node) Kind {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return nodeKind(n.Alias)
	}
	switch n.Kind {
	case yaml.MappingNode:
		return KindMapping
	case yaml.SequenceNode:
		return KindSequence
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return KindNull
		}
		return KindScalar
	default:
		return KindNull
	}
}

func dashToUnderscores(raw map[string]any) Settings {
	out := make(Settings, len(raw))
	for key, value := range raw {
		out[strings.ReplaceAll(key, "-", "_")] = value
	}
	normalize(out)
	return out
}
