package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackolade/plugin-migrate/internal/config"
	"github.com/hackolade/plugin-migrate/internal/console"
	"github.com/hackolade/plugin-migrate/internal/manifest"
)

func init() {
	addOptionFlags(mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge [path]",
	Short: "Only move sub-project dependencies into the root package.json",
	Long: `Move the dependencies of forward_engineering/package.json and
reverse_engineering/package.json into the root package.json and reset its
lint-staged, simple-git-hooks, and scripts blocks. Nothing is installed,
removed, or run.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindOptionFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, err := resolveRepoPath(args)
		if err != nil {
			return err
		}

		logger := console.New(cmd.OutOrStdout(), !config.GetBool(config.KeyNoColor))
		m, err := newMigrator(logger, nil)
		if err != nil {
			return err
		}

		root, err := m.FillRoot(repoPath)
		if err != nil {
			return err
		}

		deps, err := root.Dependencies()
		if err != nil {
			return err
		}
		logger.Success(mergeSummary(root, len(deps)))
		return nil
	},
}

// mergeSummary describes the rewritten root manifest. The version clause is
// left out when the manifest has none.
func mergeSummary(root *manifest.Manifest, deps int) string {
	msg := fmt.Sprintf("Root package.json now declares %d dependencies", deps)
	if version, ok := root.Version(); ok && version != "" {
		msg += fmt.Sprintf(" (version %s)", version)
	}
	return msg
}
