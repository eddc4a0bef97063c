package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkdraw/pkg/cache"
	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "linkdraw"

	// configFile is the file picked up from the working directory when
	// --config is not given.
	configFile = "linkdraw.toml"
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

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags are the cache flags shared by render, layout, inspect and serve.
type cacheFlags struct {
	noCache bool
	redis   string
}

// newRunner creates a pipeline runner for CLI use. A non-empty scope
// prefixes every cache key the runner writes.
func (c *CLI) newRunner(ctx context.Context, flags cacheFlags, scope string) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, flags)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), scope)
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache picks the cache backend: none, Redis when a URL is given, or
// the file cache under the user cache directory.
func newCache(ctx context.Context, flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	if flags.redis != "" {
		rc, err := cache.NewRedisCache(ctx, flags.redis)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis")
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory (~/.cache/linkdraw/ on Linux).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig decodes a TOML file into opts. Flags that were set explicitly
// are applied afterwards by the caller. A missing default config file is
// not an error.
func loadConfig(path string, opts *pipeline.Options) error {
	if path == "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil
		}
		path = configFile
	}
	if _, err := toml.DecodeFile(path, opts); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
