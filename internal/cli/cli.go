package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackedcards/pkg/buildinfo"
	"github.com/matzehuels/stackedcards/pkg/config"
	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/observability"
	"github.com/matzehuels/stackedcards/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for output files and display.
const appName = "stackedcards"

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

	configPath string
	debug      bool
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
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
		Use:          appName,
		Short:        "Stackedcards renders a stacked-cards carousel",
		Long:         `Stackedcards is a horizontally paged carousel whose cards scale, rotate and stack as you scroll. Browse it in the terminal, or render single frames to SVG and JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			if c.debug {
				c.SetLogLevel(LogDebug)
			}
			c.registerHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stackedcards/config.toml)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "log every card transform, drag and snap")

	// Register all subcommands
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.debug {
		cfg.Debug.Transforms = true
	}
	c.cfg = cfg
	return nil
}

// registerHooks installs log-backed hooks when transform debugging is on.
func (c *CLI) registerHooks() {
	if !c.cfg.Debug.Transforms {
		return
	}
	h := newLogHooks(c.Logger)
	observability.SetCarouselHooks(h)
	observability.SetRenderHooks(h)
}

// newDeck builds the configured deck.
func (c *CLI) newDeck() (*deck.Deck, error) {
	return c.cfg.NewDeck()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// pipelineOptions seeds pipeline options from the loaded config.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Viewport:  c.cfg.Viewport(),
		Carousel:  c.cfg.CarouselOptions(),
		Page:      pipeline.NoPage,
		Indicator: c.cfg.View.ShowIndicator,
		Logger:    c.Logger,
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
