// Package cli implements the framewright command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/buildinfo"
	"github.com/framewright/framewright/pkg/config"
	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/pipeline"
	"github.com/framewright/framewright/pkg/workbench"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "framewright"

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
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "framewright",
		Short:        "Framewright computes picture frame cut dimensions",
		Long:         `Framewright turns artwork measurements into a complete cutting plan: frame rail lengths, matboard and glass dimensions, tape-friendly fractional readings, and face drawings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file path (default ~/.config/framewright/config.toml)")

	// Register all subcommands
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.tapeCommand())
	root.AddCommand(c.matCommand())
	root.AddCommand(c.sizesCommand())
	root.AddCommand(c.designsCommand())
	root.AddCommand(c.shareCommand())
	root.AddCommand(c.backupCommand())
	root.AddCommand(c.designerCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Store Access
// =============================================================================

// loadConfig loads the configuration once and caches it for the process.
// An explicit --config path takes precedence over the default location.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}

	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	c.cfg = &cfg
	return cfg, nil
}

// openStore opens the workbench store selected by configuration.
// The caller owns the store and must close it.
func (c *CLI) openStore(ctx context.Context) (workbench.Store, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return nil, config.Config{}, err
	}
	return st, cfg, nil
}

// newRunner creates a pipeline runner backed by the configured store.
// The returned cleanup function closes the store.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, func(), error) {
	st, _, err := c.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := st.Close(); err != nil {
			c.Logger.Debug("close store", "error", err)
		}
	}
	return pipeline.NewRunner(st, c.Logger), cleanup, nil
}

// =============================================================================
// Paths
// =============================================================================

// workbenchDir returns the directory used by the file storage backend.
func workbenchDir(cfg config.Config) (string, error) {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "workbench"), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{pipeline.DefaultFormat}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// parseDenominators parses a comma-separated graduation list like "32,16,8".
func parseDenominators(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var dens []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid tape graduation %q", part)
		}
		dens = append(dens, n)
	}
	return dens, nil
}
