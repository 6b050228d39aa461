package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hackolade/plugin-migrate/internal/command"
	"github.com/hackolade/plugin-migrate/internal/config"
	"github.com/hackolade/plugin-migrate/internal/console"
	"github.com/hackolade/plugin-migrate/internal/migrate"
	"github.com/hackolade/plugin-migrate/internal/preset"
)

var (
	migrateSkipTooling bool
	migrateConfigsDir  string
)

func init() {
	addOptionFlags(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateSkipTooling, "skip-tooling", false, "Skip installing tooling and running prettier/eslint")
	migrateCmd.Flags().StringVar(&migrateConfigsDir, "configs-dir", "", "Copy required configs from this directory instead of the bundled set")
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [path]",
	Short: "Migrate a plugin repository to the shared tooling",
	Long: `Move all sub-project dependencies into the root package.json, remove stale
node_modules and package-lock.json files, install the dev tooling and git hooks,
copy the required configs, and run prettier and ESLint.

The repository path defaults to the current directory.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindOptionFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, err := resolveRepoPath(args)
		if err != nil {
			return err
		}

		configs, err := requiredConfigs(migrateConfigsDir)
		if err != nil {
			return err
		}

		logger := console.New(cmd.OutOrStdout(), !config.GetBool(config.KeyNoColor))
		m, err := newMigrator(logger, configs)
		if err != nil {
			return err
		}
		m.Options.SkipTooling = migrateSkipTooling

		logger.Infof("Migrating plugin repository %s", repoPath)

		result, err := m.Run(cmd.Context(), repoPath)
		if err != nil {
			return err
		}
		if result.Warnings != nil {
			logger.Warnf("Finished with warnings: %v", result.Warnings)
		}
		return nil
	},
}

// addOptionFlags registers the manifest option flags shared by migrate and merge.
func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("exact-versions", true, "Pin moved dependency ranges to exact versions")
	cmd.Flags().Bool("bump-patch", true, "Increment the root package.json patch version")
}

// bindOptionFlags binds the running command's option flags to their settings.
// Binding happens per run because migrate and merge share the keys.
func bindOptionFlags(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlag(config.KeyExactVersions, cmd.Flags().Lookup("exact-versions")); err != nil {
		return err
	}
	return config.BindFlag(config.KeyBumpPatch, cmd.Flags().Lookup("bump-patch"))
}

func newMigrator(logger console.Logger, configs fs.FS) (*migrate.Migrator, error) {
	p, err := preset.Default()
	if err != nil {
		return nil, fmt.Errorf("loading tooling preset: %w", err)
	}
	return &migrate.Migrator{
		Logger:  logger,
		Runner:  &command.ExecRunner{},
		Preset:  p,
		Configs: configs,
		Options: migrate.Options{
			ExactVersions: config.GetBool(config.KeyExactVersions),
			BumpPatch:     config.GetBool(config.KeyBumpPatch),
		},
	}, nil
}

// requiredConfigs returns the config tree to copy: dir when set, otherwise
// the bundled one.
func requiredConfigs(dir string) (fs.FS, error) {
	if dir == "" {
		return preset.RequiredConfigs(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("configs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("configs directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// resolveRepoPath returns the absolute repository path from the optional
// positional argument, defaulting to the current directory.
func resolveRepoPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving repository path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("repository path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("repository path %s is not a directory", abs)
	}
	return abs, nil
}
