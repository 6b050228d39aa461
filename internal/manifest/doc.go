// Package manifest reads, rewrites, and merges npm package.json manifests of a
// plugin repository. It moves the dependencies declared by the forward- and
// reverse-engineering sub-projects into the root manifest, optionally pins
// version ranges and bumps the root patch version, and resets the standard
// tooling blocks (lint-staged, simple-git-hooks, scripts). Top-level key order
// and untouched values are preserved byte for byte so rewrites produce minimal
// diffs.
package manifest
