// Package migrate runs the plugin repository migration: it consolidates the
// sub-project manifests into the root manifest, removes stale install
// artifacts, installs the standard development tooling and git hooks, copies
// the required configuration files, and runs the formatter and linter. Steps
// run sequentially; installer failures abort the migration while formatter
// and linter failures are only reported.
package migrate
