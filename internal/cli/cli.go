package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the command name.
	appName = "lvtree"

	// stdinPath selects standard input as the edge source.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version; main may override it via ldflags.
var Version = "dev"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Resolved per run by the root command's PersistentPreRunE.
	cfg config.Config

	// Global flag values.
	configPath string
	verbose    bool
	delimiter  string
	plain      bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "lvtree builds rooted trees from edge lists and queries them",
		Long:              `lvtree reads parent→child edges, validates that they form a single rooted tree, and renders, traverses or queries it.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lvtree/config.toml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.delimiter, "delimiter", "d", "", "token delimiter on edge lines (overrides config)")
	flags.BoolVar(&c.plain, "plain", false, "disable colored output")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.lcaCommand())
	root.AddCommand(c.generationCommand())
	root.AddCommand(c.parentCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.browseCommand())

	return root
}

// setup resolves configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Resolve(c.configPath)
	if err != nil {
		return err
	}

	// 1. Flags win over the file
	if c.delimiter != "" {
		cfg.Delimiter = c.delimiter
	}
	if c.plain {
		cfg.Color = false
	}
	c.cfg = cfg

	// 2. Log level: --verbose, else the configured level
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if path != "" {
		c.Logger.Debug("config loaded", "path", path)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// ui returns the output helper for cmd.
func (c *CLI) ui(cmd *cobra.Command) *ui {
	return &ui{w: cmd.OutOrStdout(), color: c.cfg.Color}
}
