// Package doctor reports whether a machine and a plugin repository are ready
// for migration: the Node.js tooling the migration shells out to, and the
// root and sub-project manifests it rewrites.
package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hackolade/plugin-migrate/internal/manifest"
)

// RequiredBinaries are the tools invoked during a migration.
var RequiredBinaries = []string{"node", "npm", "npx", "git"}

// Checker runs the diagnostic checks.
type Checker struct {
	// LookPath resolves a binary name; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// CheckRuntime reports each required binary. It returns the number of
// missing binaries.
func (c *Checker) CheckRuntime(w io.Writer) int {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	fmt.Fprintln(w, "Runtime check:")
	missing := 0
	for _, name := range RequiredBinaries {
		path, err := lookPath(name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
			missing++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	}
	return missing
}

// CheckManifests validates the root manifest and both sub-project manifests
// of the repository. A missing sub-project manifest is reported but is not a
// failure; a missing root manifest is.
func (c *Checker) CheckManifests(w io.Writer, repoPath string) error {
	fmt.Fprintf(w, "Manifest check: %s\n", repoPath)

	var failed []string
	if !checkManifest(w, filepath.Join(repoPath, manifest.FileName), true) {
		failed = append(failed, manifest.FileName)
	}
	for _, sub := range []string{manifest.ForwardEngineeringDir, manifest.ReverseEngineeringDir} {
		path := manifest.SubProjectManifestPath(repoPath, sub)
		if !checkManifest(w, path, false) {
			failed = append(failed, filepath.Join(sub, manifest.FileName))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d manifest(s) failed validation: %v", len(failed), failed)
	}
	return nil
}

// Run performs every check and fails when a binary is missing or a manifest
// is invalid.
func (c *Checker) Run(w io.Writer, repoPath string) error {
	missing := c.CheckRuntime(w)
	manifestErr := c.CheckManifests(w, repoPath)

	var errs []error
	if missing > 0 {
		errs = append(errs, fmt.Errorf("%d required binaries not found", missing))
	}
	if manifestErr != nil {
		errs = append(errs, manifestErr)
	}
	return errors.Join(errs...)
}

func checkManifest(w io.Writer, path string, required bool) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			fmt.Fprintf(w, "  [FAIL] %s does not exist\n", path)
			return false
		}
		fmt.Fprintf(w, "  [MISS] %s does not exist (nothing to move)\n", path)
		return true
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		return false
	}

	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}

	deps, err := m.Dependencies()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s (%d dependencies)\n", path, len(deps))
	return true
}
