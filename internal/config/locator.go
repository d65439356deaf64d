package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultConfigDir holds drop-in YAML files, read before the static files.
const DefaultConfigDir = "/etc/vault.d"

// DefaultStaticFiles are the well-known config paths, by increasing priority.
var DefaultStaticFiles = []string{"/etc/vault.yml", "~/.vault.yml", "./.vault.yml"}

// Locator computes the ordered list of config files to read.
type Locator struct {
	Fs          afero.Fs
	Dir         string
	StaticFiles []string
	Logger      *zap.Logger
}

// NewLocator returns a Locator for the standard vault-cli paths.
func NewLocator(fsys afero.Fs, logger *zap.Logger) *Locator {
	return &Locator{
		Fs:          fsys,
		Dir:         DefaultConfigDir,
		StaticFiles: slices.Clone(DefaultStaticFiles),
		Logger:      logger,
	}
}

// CandidateFiles returns every *.yml and *.yaml file below Dir in sorted
// path order, followed by StaticFiles. Later entries take precedence.
// A missing Dir contributes nothing.
func (l *Locator) CandidateFiles() []string {
	files := l.dropInFiles()
	slices.Sort(files)
	return append(files, l.StaticFiles...)
}

func (l *Locator) dropInFiles() []string {
	if l.Dir == "" {
		return nil
	}
	var files []string
	err := afero.Walk(l.Fs, l.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				l.logger().Debug("skipping unreadable config path", zap.String("path", path), zap.Error(err))
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if name := info.Name(); strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		l.logger().Debug("config directory walk stopped", zap.String("dir", l.Dir), zap.Error(err))
	}
	return files
}

func (l *Locator) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

