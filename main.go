package main

import (
	"dev-migrate/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The dev-migrate project is a machine migration tool for developer workstations that:
//   - Before a reinstall, scans the local workspace for git repositories with
//     uncommitted changes and exports the installed application set via winget
//     so the machine state can be reproduced later
//   - On a fresh machine, installs a declared list of applications (or replays
//     a previously exported winget manifest), applies declared global git
//     configuration, and clones a declared list of repositories, optionally
//     wiring an "upstream" remote for forks
//   - Reads its three record lists (applications, git settings, repositories)
//     from plain text files, with an optional YAML master config that points
//     at them and supplies defaults
//
// Error handling strategy:
//   - Almost nothing is fatal. Missing config files, an unreachable winget or
//     git binary, and per-record failures (one bad URL, one failed install)
//     all degrade to warnings; each phase tallies its results and the run
//     continues to a final summary
//   - The external tools themselves (winget, git) are never reimplemented;
//     every operation is a single synchronous shell-out whose exit status is
//     classified and reported
func main() {
	cmd.Execute()
}
