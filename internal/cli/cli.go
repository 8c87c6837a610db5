// Package cli implements the tabview command-line interface.
//
// The CLI exercises the layout engine from the shell: canvases are
// described as TOML files, commands run the engine over them, and results
// come back as JSON on stdout. The main commands are:
//
//   - arrange: pack a canvas (or a bare item count) into a grid
//   - push: run push-away over a canvas seeded at one item
//   - defaults: print the stock engine tuning as a TOML document
//
// All commands support --verbose (-v) for debug-level logging; status and
// progress go to stderr so stdout stays machine-readable.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/autonome/tabview/pkg/buildinfo"
	"github.com/autonome/tabview/pkg/config"
)

// appName is the application name used for display and completions.
const appName = "tabview"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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
		Use:          appName,
		Short:        "Tabview arranges rectangular panels on a canvas",
		Long:         `Tabview is the command-line surface of a spatial layout engine: it packs rectangular panels into grids, snaps dragged edges to alignment lines, and pushes overlapping panels apart while keeping everything inside a bounded canvas.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.pushCommand())
	root.AddCommand(c.defaultsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the engine tuning for a command: an explicit
// --config file wins, otherwise the stock defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.LoadFile(path)
}
