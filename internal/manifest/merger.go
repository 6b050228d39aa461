package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sub-project directories whose dependencies are moved to the root manifest.
const (
	ForwardEngineeringDir = "forward_engineering"
	ReverseEngineeringDir = "reverse_engineering"
)

// Merger moves sub-project dependencies into a repository's root manifest.
type Merger struct {
	// ExactVersions pins every extracted version range with NormalizeVersion.
	ExactVersions bool
	// BumpPatch increments the root manifest's patch version.
	BumpPatch bool
	// Auxiliary is written over the root manifest's tooling blocks.
	Auxiliary AuxiliaryConfig
}

// subProject is a loaded sub-project manifest whose dependencies have not yet
// been stripped from disk. A nil manifest means the file does not exist.
type subProject struct {
	path     string
	manifest *Manifest
	deps     DependencyMap
}

// loadSubProject reads the manifest at path and its dependencies without
// writing anything.
func (mg *Merger) loadSubProject(path string) (*subProject, error) {
	sp := &subProject{path: path, deps: DependencyMap{}}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return sp, nil
		}
		return nil, fmt.Errorf("checking manifest %s: %w", path, err)
	}

	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	deps, err := m.Dependencies()
	if err != nil {
		return nil, fmt.Errorf("reading dependencies of %s: %w", path, err)
	}
	if mg.ExactVersions {
		deps = deps.Exact()
	}

	sp.manifest = m
	sp.deps = deps
	return sp, nil
}

// strip rewrites the sub-project manifest without its dependencies key.
func (sp *subProject) strip() error {
	if sp.manifest == nil {
		return nil
	}
	stripped := sp.manifest.Clone()
	stripped.Delete(KeyDependencies)
	return stripped.Save(sp.path)
}

// ExtractDependencies returns the dependencies declared by the manifest at
// path and rewrites that manifest without its dependencies key. A missing file
// yields an empty map and is left untouched.
func (mg *Merger) ExtractDependencies(path string) (DependencyMap, error) {
	sp, err := mg.loadSubProject(path)
	if err != nil {
		return nil, err
	}
	if err := sp.strip(); err != nil {
		return nil, err
	}
	return sp.deps, nil
}

// MergeDependenciesIntoRoot extracts the forward-engineering dependencies,
// then the reverse-engineering ones, and returns a copy of root whose
// dependencies are their union. Reverse-engineering versions win collisions.
// Both manifests are read before either is rewritten, so a bad manifest
// leaves both untouched.
func (mg *Merger) MergeDependenciesIntoRoot(root *Manifest, fePath, rePath string) (*Manifest, error) {
	fe, err := mg.loadSubProject(fePath)
	if err != nil {
		return nil, fmt.Errorf("extracting forward-engineering dependencies: %w", err)
	}
	re, err := mg.loadSubProject(rePath)
	if err != nil {
		return nil, fmt.Errorf("extracting reverse-engineering dependencies: %w", err)
	}

	out := root.Clone()
	if err := out.Set(KeyDependencies, MergeDependencies(fe.deps, re.deps)); err != nil {
		return nil, err
	}

	if err := fe.strip(); err != nil {
		return nil, fmt.Errorf("rewriting forward-engineering manifest: %w", err)
	}
	if err := re.strip(); err != nil {
		return nil, fmt.Errorf("rewriting reverse-engineering manifest: %w", err)
	}
	return out, nil
}

// FillRoot runs the whole manifest pipeline against the repository at
// repoPath and writes the resulting root manifest back in place.
func (mg *Merger) FillRoot(repoPath string) (*Manifest, error) {
	rootPath := filepath.Join(repoPath, FileName)
	root, err := Load(rootPath)
	if err != nil {
		return nil, err
	}

	// Bump before any sub-project is rewritten so a bad version aborts the
	// migration without losing extracted dependencies.
	if mg.BumpPatch {
		root, err = BumpPatchVersion(root)
		if err != nil {
			return nil, fmt.Errorf("bumping version of %s: %w", rootPath, err)
		}
	}

	merged, err := mg.MergeDependenciesIntoRoot(root,
		SubProjectManifestPath(repoPath, ForwardEngineeringDir),
		SubProjectManifestPath(repoPath, ReverseEngineeringDir),
	)
	if err != nil {
		return nil, err
	}

	result, err := ApplyAuxiliaryConfig(merged, mg.Auxiliary)
	if err != nil {
		return nil, err
	}

	if err := result.Save(rootPath); err != nil {
		return nil, err
	}
	return result, nil
}

// SubProjectManifestPath returns the manifest path of a sub-project directory.
func SubProjectManifestPath(repoPath, subProject string) string {
	return filepath.Join(repoPath, subProject, FileName)
}
