package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackolade/plugin-migrate/internal/doctor"
)

var (
	checkRuntime   bool
	checkManifests bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node, npm, npx, and git are available")
	doctorCmd.Flags().BoolVar(&checkManifests, "check-manifests", false, "Validate the root and sub-project package.json files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [path]",
	Short: "Check that a repository can be migrated",
	Long:  `Run diagnostic checks on the local Node.js tooling and the repository's manifests.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, err := resolveRepoPath(args)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		c := &doctor.Checker{}

		// If no specific flag, run all checks.
		if !checkRuntime && !checkManifests {
			return c.Run(w, repoPath)
		}

		var missing int
		if checkRuntime {
			missing = c.CheckRuntime(w)
		}
		if checkManifests {
			if err := c.CheckManifests(w, repoPath); err != nil {
				return err
			}
		}
		if missing > 0 {
			return fmt.Errorf("%d required binaries not found", missing)
		}
		return nil
	},
}
