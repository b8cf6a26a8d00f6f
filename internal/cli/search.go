package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cratescout/pkg/config"
	"github.com/matzehuels/cratescout/pkg/errors"
	"github.com/matzehuels/cratescout/pkg/integrations/github"
	"github.com/matzehuels/cratescout/pkg/render"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// envAPIURL overrides the GitHub API root, e.g. for GitHub Enterprise.
const envAPIURL = "GITHUB_API_URL"

// searchFlags holds the flags shared by the root command and "search".
type searchFlags struct {
	name          string
	count         int
	format        string
	noDescription bool
	interactive   bool
	configPath    string
	apiURL        string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Cargo package name to search for (required)")
	cmd.Flags().IntVarP(&f.count, "count", "c", github.DefaultCount, "number of results to request")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().BoolVar(&f.noDescription, "no-description", false, "omit the description column")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "pick a result and open it in the browser")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/cratescout/config.toml)")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "GitHub API root (default "+github.DefaultBaseURL+")")
	_ = cmd.Flags().MarkHidden("api-url")
	_ = cmd.MarkFlagRequired("name")
}

// searchCommand creates the "search" subcommand. It behaves exactly like
// running the root command.
func (c *CLI) searchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find repositories whose Cargo.toml mentions a package",
		Long: `Search GitHub code for Cargo.toml files that mention a package and list the
repositories they belong to.

A single page of results is requested, oldest indexed first. Nothing is
retried: any failure (missing credentials, network error, non-200 status,
malformed response) ends the command with an error and no table.

Examples:
  cratescout search -n serde
  cratescout search -n tokio -c 50 --no-description
  cratescout search -n rand -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, flags *searchFlags) error {
	ctx := cmd.Context()

	if err := errors.ValidatePackageName(flags.name); err != nil {
		return err
	}
	if err := errors.ValidateCount(flags.count); err != nil {
		return err
	}
	if flags.format != formatTable && flags.format != formatJSON {
		return errors.New(errors.ErrCodeUnsupported, "unknown format %q (use %s or %s)", flags.format, formatTable, formatJSON)
	}
	if flags.interactive && flags.format != formatTable {
		return errors.New(errors.ErrCodeUnsupported, "--interactive cannot be combined with --format %s", flags.format)
	}

	creds, err := config.Loader{Path: flags.configPath, Getenv: c.getenv}.Load()
	if err != nil {
		return err
	}

	client, err := github.NewSearchClient(creds, github.WithBaseURL(c.apiURL(flags)))
	if err != nil {
		return err
	}

	query := github.SearchQuery{Package: flags.name, Count: flags.count}
	url, err := client.SearchURL(query)
	if err != nil {
		return err
	}

	// Status lines would corrupt JSON on stdout, so they only go to the log.
	if flags.format == formatTable {
		printInfo(c.Out, "Searching for repositories that use %s in their Cargo.toml...", StyleHighlight.Render(flags.name))
		printDetail(c.Out, "%s", url)
	}
	c.Logger.Debug("Sending search request", "url", url, "user_agent", creds.ClientID)

	start := time.Now()
	spinner := newSpinnerWithContext(ctx, c.Err, "Querying GitHub code search...")
	spinner.Start()

	res, err := client.Search(ctx, query)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			c.Logger.Info("Search interrupted")
			return fmt.Errorf("search %s: %w", flags.name, err)
		}
		spinner.StopWithError(fmt.Sprintf("Search failed (%s)", errors.GetCode(err)))
		c.Logger.Debug("Search failed", "code", errors.GetCode(err), "status", errors.StatusCode(err), "reason", errors.UserMessage(err))
		return fmt.Errorf("search %s: %w", flags.name, err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Found %d repositories (%s)", res.Len(), time.Since(start).Round(time.Millisecond)))
	if res.Incomplete {
		c.Logger.Warn("GitHub reported incomplete results; the search timed out server-side")
	}

	if flags.format == formatJSON {
		return render.JSON(c.Out, flags.name, res)
	}

	var opts []render.TableOption
	if flags.noDescription {
		opts = append(opts, render.WithoutDescription())
	}
	fmt.Fprint(c.Out, render.Table(res, opts...))

	if flags.interactive && res.Len() > 0 {
		return c.pickAndOpen(res)
	}
	return nil
}

// apiURL resolves the API root: flag, then environment, then the default.
func (c *CLI) apiURL(flags *searchFlags) string {
	if flags.apiURL != "" {
		return flags.apiURL
	}
	if u := c.getenv(envAPIURL); u != "" {
		return u
	}
	return github.DefaultBaseURL
}
