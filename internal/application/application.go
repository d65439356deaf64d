package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/vault-cli/internal/config"
	"github.com/eugenenazirov/vault-cli/internal/storage"
)

// App encapsulates the settings resolver and its dependencies.
type App struct {
	cache    *storage.MemoryCache
	resolver *config.Resolver
	logger   *zap.Logger
}

// New wires a cache and resolver. opts are applied after the defaults, so
// callers may replace the filesystem, environment or locator.
func New(logger *zap.Logger, opts ...config.Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache := storage.NewMemoryCache()

	resolverOpts := []config.Option{
		config.WithLogger(logger),
		config.WithCache(cache),
	}
	resolverOpts = append(resolverOpts, opts...)

	return &App{
		cache:    cache,
		resolver: config.NewResolver(resolverOpts...),
		logger:   logger,
	}
}

// Settings resolves the final settings with the given flag overrides.
func (a *App) Settings(overrides *config.CLIOverrides) (config.Settings, error) {
	settings, err := a.resolver.Resolve(overrides.Map())
	if err != nil {
		return nil, fmt.Errorf("resolve settings: %w", err)
	}
	hits, misses := a.cache.Stats()
	a.logger.Debug("settings resolved",
		zap.Strings("keys", settings.Keys()),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return settings, nil
}

// ConfigFiles returns the candidate config files in merge order.
func (a *App) ConfigFiles() []string {
	return a.resolver.CandidateFiles()
}

// WriteSettings renders settings as YAML. Secrets are masked unless
// showSecrets is set.
func (a *App) WriteSettings(w io.Writer, settings config.Settings, showSecrets bool) error {
	if !showSecrets {
		settings = config.Sanitize(settings)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(settings)); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}

// WriteConfigFiles prints one candidate config file per line.
func (a *App) WriteConfigFiles(w io.Writer) error {
	for _, path := range a.ConfigFiles() {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return nil
}
