// Package command defines the Runner interface used to invoke external tools
// (npm, npx) during a migration, and an ExecRunner implementation that runs
// them as blocking subprocesses with their output passed through to the
// terminal.
package command
