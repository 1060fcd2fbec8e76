// Package cli implements the slidedeck command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidedeck/pkg/buildinfo"
	"github.com/matzehuels/slidedeck/pkg/cache"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/observability"
	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

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
	out    console
}

// New creates a CLI logging to w. Status lines go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: console{w: os.Stdout}}
}

// SetLogLevel updates the logger's level. Debug level also turns on the
// pipeline, cache and HTTP hook logging.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "slidedeck",
		Short: "Slidedeck renders slide decks from TOML or YAML",
		Long: `Slidedeck assembles a declarative deck description into widescreen slides and writes
them as PowerPoint, SVG, PNG, PDF or a JSON element dump. Without a deck file it builds
the built-in "Digital Black Board" presentation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.flowCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. url selects the cache
// backend (see cache.Open); empty means the local file cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool, url string) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache, url)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool, url string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url != "" {
		return cache.Open(ctx, url)
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Deck Helpers
// =============================================================================

// loadDeck reads path, or the built-in deck when path is empty.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Default()
	}
	d, _, err := deck.Load(path)
	return d, err
}

// outputPath picks the presentation path: the flag, then the deck's own
// output setting, then the built-in name.
func outputPath(flag string, d *deck.Deck) string {
	switch {
	case flag != "":
		return flag
	case d != nil && d.Output != "":
		return d.Output
	}
	return deck.DefaultOutput
}

// deckLabel names a deck in terminal output.
func deckLabel(path string) string {
	if path == "" {
		return "built-in deck"
	}
	return path
}
