package logger

import (
	"github.com/fatih/color" // Colored console output for the different log levels
)

// Colorized printing functions for the log levels used across all phases.
// These are package-level variables holding functions that behave like
// fmt.Printf, but with text colored appropriately for the level.

// Info logs informational messages in green color.
// Used for successful installs, clones, and phase summaries.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Used for skipped phases, missing optional files, and per-record problems
// that do not stop the run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Used for failed external commands, with captured diagnostic output attached.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned during Init based on the --debug flag; the default no-op
// keeps call sites safe even before Init runs.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, enabling or disabling debug logging.
// When enabled, Debug prints cyan-colored messages; when disabled, Debug is
// a no-op that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
