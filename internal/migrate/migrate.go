package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/hackolade/plugin-migrate/internal/command"
	"github.com/hackolade/plugin-migrate/internal/console"
	"github.com/hackolade/plugin-migrate/internal/manifest"
	"github.com/hackolade/plugin-migrate/internal/platform"
	"github.com/hackolade/plugin-migrate/internal/preset"
)

const (
	nodeModulesDir  = "node_modules"
	packageLockFile = "package-lock.json"
)

// Options toggles the optional parts of a migration.
type Options struct {
	// ExactVersions pins moved dependency ranges to exact versions.
	ExactVersions bool
	// BumpPatch increments the root manifest's patch version.
	BumpPatch bool
	// SkipTooling skips the install, git hook, format, and lint commands.
	SkipTooling bool
}

// Migrator migrates plugin repositories to the shared tooling layout.
type Migrator struct {
	Logger  console.Logger
	Runner  command.Runner
	Preset  *preset.Preset
	Configs fs.FS // Copied over the repository root; nil skips the copy.
	Options Options
}

// Result describes a completed migration.
type Result struct {
	RepoPath string
	Manifest *manifest.Manifest
	Removed  []string // Paths that existed and were removed.
	Copied   []string // Template files copied into the repository.
	Warnings error    // Best-effort step failures, nil when there were none.
}

// StepError reports a critical command that failed.
type StepError struct {
	Step    string
	Command command.Command
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: failed to execute %s: %v", e.Step, e.Command, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Merger returns the manifest merger configured from the migrator's options.
func (m *Migrator) Merger() *manifest.Merger {
	return &manifest.Merger{
		ExactVersions: m.Options.ExactVersions,
		BumpPatch:     m.Options.BumpPatch,
		Auxiliary:     m.Preset.Auxiliary(),
	}
}

// FillRoot runs only the manifest consolidation step.
func (m *Migrator) FillRoot(repoPath string) (*manifest.Manifest, error) {
	m.Logger.Info("Moving all dependencies to root package.json file and add additional configs")
	root, err := m.Merger().FillRoot(repoPath)
	if err != nil {
		return nil, fmt.Errorf("filling root manifest: %w", err)
	}
	return root, nil
}

// Run migrates the repository at repoPath. It stops at the first fatal
// error: a manifest that cannot be read or written, a filesystem failure, or
// a failed install or git hook command (returned as *StepError).
func (m *Migrator) Run(ctx context.Context, repoPath string) (*Result, error) {
	result := &Result{RepoPath: repoPath}

	root, err := m.FillRoot(repoPath)
	if err != nil {
		return nil, err
	}
	result.Manifest = root

	subProjects := []string{manifest.ForwardEngineeringDir, manifest.ReverseEngineeringDir}

	m.Logger.Info("Removing node_modules from FE and RE folders")
	if err := m.remove(result, repoPath, subProjects, nodeModulesDir); err != nil {
		return nil, err
	}

	m.Logger.Info("Removing package-lock.json if exists from FE and RE folders")
	if err := m.remove(result, repoPath, subProjects, packageLockFile); err != nil {
		return nil, err
	}

	if m.Options.SkipTooling {
		m.Logger.Warn("Skipping dev dependency and git hook installation")
	} else {
		m.Logger.Info("Installing dev dependencies")
		if err := m.runCritical(ctx, "installing dev dependencies", m.Preset.InstallCommand(repoPath)); err != nil {
			return nil, err
		}

		m.Logger.Info("Installing git hooks")
		if err := m.runCritical(ctx, "installing git hooks", m.Preset.GitHooksCommand(repoPath)); err != nil {
			return nil, err
		}
	}

	if m.Configs != nil {
		m.Logger.Info("Copying required configs to plugin repository")
		copied, err := platform.CopyFS(m.Configs, repoPath)
		if err != nil {
			return nil, fmt.Errorf("copying required configs: %w", err)
		}
		result.Copied = copied
	}

	if !m.Options.SkipTooling {
		var warnings *multierror.Error

		m.Logger.Info("Running prettier for JS and JSON files")
		if err := m.runBestEffort(ctx, m.Preset.FormatCommand(repoPath)); err != nil {
			warnings = multierror.Append(warnings, err)
		}

		m.Logger.Info("Running ESLint")
		if err := m.runBestEffort(ctx, m.Preset.LintCommand(repoPath)); err != nil {
			warnings = multierror.Append(warnings, err)
		}

		result.Warnings = warnings.ErrorOrNil()
	}

	m.Logger.Success("Migration successfully finished!!! 💪")
	return result, nil
}

func (m *Migrator) remove(result *Result, repoPath string, subProjects []string, name string) error {
	for _, sub := range subProjects {
		path := filepath.Join(repoPath, sub, name)
		removed, err := platform.RemoveAll(path)
		if err != nil {
			return err
		}
		if removed {
			result.Removed = append(result.Removed, path)
		}
	}
	return nil
}

// runCritical runs a command whose failure aborts the migration.
func (m *Migrator) runCritical(ctx context.Context, step string, cmd command.Command) error {
	if err := m.run(ctx, cmd); err != nil {
		m.Logger.Error(fmt.Sprintf("Failed to execute %s: %v", cmd, err))
		return &StepError{Step: step, Command: cmd, Err: err}
	}
	return nil
}

// runBestEffort runs a command whose failure is logged and returned for the
// result's warnings only.
func (m *Migrator) runBestEffort(ctx context.Context, cmd command.Command) error {
	if err := m.run(ctx, cmd); err != nil {
		m.Logger.Error(fmt.Sprintf("Failed to execute %s: %v", cmd, err))
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

func (m *Migrator) run(ctx context.Context, cmd command.Command) error {
	out, err := m.Runner.Run(ctx, cmd)
	switch {
	case command.Succeeded(out, err):
		return nil
	case err != nil:
		return err
	case out == nil:
		return fmt.Errorf("no result from runner")
	default:
		return fmt.Errorf("exit status %d", out.ExitCode)
	}
}
