package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cratescout/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect credential configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configCheckCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Fprintln(c.Out, path)
			return nil
		},
	}
}

// configCheckCommand creates the "config check" subcommand. It resolves
// credentials the same way a search does, without contacting GitHub.
func (c *CLI) configCheckCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that credentials are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := config.Loader{Path: path, Getenv: c.getenv}.Load()
			if err != nil {
				return err
			}

			source := "environment"
			if c.getenv(config.EnvAPIKey) == "" || c.getenv(config.EnvUsername) == "" {
				source = path
				if source == "" {
					source, _ = config.DefaultPath()
				}
			}

			printSuccess(c.Out, "Credentials found")
			printKeyValue(c.Out, "User-Agent", creds.ClientID)
			printKeyValue(c.Out, "Token", maskToken(creds.APIKey))
			printKeyValue(c.Out, "Source", source)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "config file (default ~/.config/cratescout/config.toml)")
	return cmd
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
