package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hackolade/plugin-migrate/internal/branding"
	"github.com/hackolade/plugin-migrate/internal/config"
	"github.com/hackolade/plugin-migrate/internal/console"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` moves the dependencies of a plugin's forward- and reverse-engineering
sub-projects into the root package.json and sets the repository up with the shared
build, format, lint, and git hook tooling.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return config.BindFlag(config.KeyNoColor, cmd.Root().PersistentFlags().Lookup("no-color"))
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		newLogger().Errorf("Error: %v", err)
	}
	return err
}

// newLogger returns the status logger for the current settings.
func newLogger() *console.StyledLogger {
	return console.New(os.Stderr, !config.GetBool(config.KeyNoColor))
}
