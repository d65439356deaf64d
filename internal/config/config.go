package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/vault-cli/internal/storage"
)

// FileLocator produces the candidate config files, lowest priority first.
type FileLocator interface {
	CandidateFiles() []string
}

// Resolver aggregates every settings source.
// Precedence: secret files > selected profile > explicit overrides >
// environment > YAML files > defaults
type Resolver struct {
	fs       afero.Fs
	logger   *zap.Logger
	locator  FileLocator
	environ  func() (map[string]string, error)
	stdin    io.Reader
	cache    storage.Cache
	defaults Defaults
}

// Option configures the behaviour of NewResolver.
type Option func(*Resolver)

// WithFs sets the filesystem config and secret files are read from.
func WithFs(fsys afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithLogger sets the logger used by every resolution step.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithLocator overrides the candidate file list source.
func WithLocator(locator FileLocator) Option {
	return func(r *Resolver) {
		r.locator = locator
	}
}

// WithEnviron overrides the environment snapshot source (primarily for tests).
func WithEnviron(environ func() (map[string]string, error)) Option {
	return func(r *Resolver) {
		r.environ = environ
	}
}

// WithStdin sets the reader consumed when a secret file path is "-".
func WithStdin(stdin io.Reader) Option {
	return func(r *Resolver) {
		r.stdin = stdin
	}
}

// WithCache sets the cache of merged file contents.
func WithCache(cache storage.Cache) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithDefaults replaces the built-in defaults record.
func WithDefaults(defaults Defaults) Option {
	return func(r *Resolver) {
		r.defaults = defaults
	}
}

// NewResolver constructs a Resolver. Without options it reads the standard
// config locations from the OS filesystem, the process environment and
// os.Stdin, and owns a fresh in-memory cache.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:       afero.NewOsFs(),
		logger:   zap.NewNop(),
		environ:  EnvironSnapshot,
		stdin:    os.Stdin,
		cache:    storage.NewMemoryCache(),
		defaults: BuiltinDefaults(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.defaults.isZero() {
		r.defaults = BuiltinDefaults()
	}
	if r.locator == nil {
		r.locator = NewLocator(r.fs, r.logger)
	}
	return r
}

// Load resolves settings once with a fresh Resolver.
func Load(overrides Settings) (Settings, error) {
	return NewResolver().Resolve(overrides)
}

// CandidateFiles returns the config files Resolve would read, in order.
func (r *Resolver) CandidateFiles() []string {
	return r.locator.CandidateFiles()
}

// Resolve builds the final settings. overrides holds explicit values such as
// CLI flags; nil is allowed.
func (r *Resolver) Resolve(overrides Settings) (Settings, error) {
	values, err := r.FromFiles(r.CandidateFiles())
	if err != nil {
		return nil, err
	}

	environ, err := r.environ()
	if err != nil {
		return nil, err
	}
	fromEnv, err := DecodeEnv(environ, r.defaults)
	if err != nil {
		return nil, err
	}
	values.Update(fromEnv)

	// Explicit overrides have the highest precedence among ordinary settings.
	values.Update(overrides)

	values, err = SelectProfile(values)
	if err != nil {
		return nil, err
	}

	reader := &FileReader{Fs: r.fs, Stdin: r.stdin}
	return ResolveSecretFiles(values, reader, r.logger)
}

// FromFiles returns the defaults with every readable file in paths merged on
// top, in order. Missing and unreadable files are skipped. The result for a
// given path list is cached; callers always receive their own copy.
func (r *Resolver) FromFiles(paths []string) (Settings, error) {
	if cached, ok := r.cache.Get(paths); ok {
		r.logger.Debug("using cached config file contents", zap.Int("files", len(paths)))
		return Settings(cached), nil
	}

	values := r.defaults.Settings()
	loader := NewLoader(r.fs, r.logger)
	for _, path := range paths {
		fileValues, ok, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config files: %w", err)
		}
		if !ok {
			continue
		}
		coerceBools(fileValues, r.defaults)
		// Every file is read: later files override earlier ones.
		Merge(values, fileValues)
	}

	r.cache.Set(paths, values)
	return values, nil
}
