package cmd

import (
	"github.com/spf13/cobra"

	"dev-migrate/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath is the optional master config file naming the three record
// files and the defaults. When absent, built-in defaults apply.
var configPath string

// rootCmd is the base command for the CLI tool `dev-migrate`.
// The real work lives in the two subcommands: `export` captures machine
// state before a reinstall, `setup` provisions a fresh machine.
var rootCmd = &cobra.Command{
	Use:   "dev-migrate",
	Short: "Developer machine migration tool",

	// PersistentPreRun runs before any subcommand and initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers global flags and starts command execution. Both
// subcommands are best-effort: per-record failures are tallied and
// reported, not escalated, so the process exits 0 after a completed run.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to master configuration file")

	_ = rootCmd.Execute()
}
