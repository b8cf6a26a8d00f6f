// Package cli implements the cratescout command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cratescout/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cratescout"
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

	// Out receives command results (status lines, tables, JSON).
	Out io.Writer
	// Err receives progress decoration such as the spinner.
	Err io.Writer

	getenv func(string) string
}

// New creates a new CLI instance with a default logger writing to w.
// Results go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand performs a search.
func (c *CLI) RootCommand() *cobra.Command {
	flags := &searchFlags{}

	root := &cobra.Command{
		Use:   "cratescout",
		Short: "cratescout finds GitHub repositories that depend on a Cargo package",
		Long: `cratescout searches GitHub code for Cargo.toml manifests that mention a
package and lists the repositories they belong to.

Credentials are read from GITHUB_API_KEY and GITHUB_USERNAME, or from the
[github] section of ~/.config/cratescout/config.toml. A key that already
names its scheme (for example "token ghp_...") is sent as the Authorization
header unchanged; a bare key is sent as "Bearer <key>".`,
		Example: `  cratescout --name serde
  cratescout -n tokio -c 25
  cratescout -n rand --format json`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags.register(root)

	// Register all subcommands
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
