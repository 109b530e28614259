// Package cli implements the nullsign command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nullsign/nullsign/pkg/buildinfo"
	"github.com/nullsign/nullsign/pkg/cache"
	"github.com/nullsign/nullsign/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "nullsign"

	// envRedisURL selects a shared redis artifact cache when set.
	envRedisURL = "NULLSIGN_REDIS_URL"

	// envMongoURI selects a shared mongodb artifact cache when set.
	envMongoURI = "NULLSIGN_MONGO_URI"

	// envCacheScope prefixes artifact keys, keeping branches or projects
	// apart on a shared cache backend.
	envCacheScope = "NULLSIGN_CACHE_SCOPE"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "nullsign",
		Short:        "Nullsign generates the empty-set symbol as a set of SVG assets",
		Long:         `Nullsign is a CLI tool that renders the circle-with-slash glyph in several stylistic variants, resolving geometry from base defaults, typeface presets, and explicit overrides.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if scope := os.Getenv(envCacheScope); scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope+":")
	}

	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache picks the artifact cache backend. Shared backends (redis, mongo)
// are selected via environment; the default is a per-user file cache.
func newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(envRedisURL); url != "" {
		return cache.NewRedisCache(ctx, url)
	}
	if uri := os.Getenv(envMongoURI); uri != "" {
		return cache.NewMongoCache(ctx, uri, appName, "artifacts")
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/nullsign/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
