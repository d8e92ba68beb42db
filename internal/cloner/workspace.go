package cloner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"dev-migrate/internal/logger"
)

// systemPrefixes are directory prefixes never accepted as a clone
// workspace, compared case-insensitively. Covers the Windows system
// locations the tool primarily targets plus the unix equivalents.
var systemPrefixes = []string{
	`c:\windows`,
	`c:\program files`,
	`c:\program files (x86)`,
	`c:\programdata`,
	"/bin",
	"/boot",
	"/etc",
	"/proc",
	"/sbin",
	"/sys",
	"/usr",
	"/var",
}

var driveRootPattern = regexp.MustCompile(`^[A-Za-z]:[\\/]?$`)

// invalidPathChars are characters no host filesystem accepts in a path.
const invalidPathChars = `<>"|?*`

// ValidateWorkspace checks a candidate workspace path as a pure string,
// independent of the host OS, so a Windows path is judged by Windows rules
// even when validated elsewhere. It rejects empty paths, paths containing
// invalid filesystem characters, bare drive roots, and anything under a
// recognized system directory.
func ValidateWorkspace(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("workspace path is empty")
	}
	if strings.ContainsAny(path, invalidPathChars) {
		return fmt.Errorf("workspace path %q contains invalid characters", path)
	}
	for _, r := range path {
		if r < 0x20 {
			return fmt.Errorf("workspace path %q contains control characters", path)
		}
	}
	if path == "/" || path == `\` || driveRootPattern.MatchString(path) {
		return fmt.Errorf("workspace path %q is a bare drive root", path)
	}

	lower := strings.ToLower(path)
	backslashed := strings.ReplaceAll(lower, "/", `\`)
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(lower, prefix) || strings.HasPrefix(backslashed, prefix) {
			return fmt.Errorf("workspace path %q is inside system directory %q", path, prefix)
		}
	}
	return nil
}

// ResolveWorkspace turns the requested workspace into a validated absolute
// path, falling back to fallback (the built-in default) when the requested
// path is rejected. A leading ~ is expanded to the home directory.
func ResolveWorkspace(requested, fallback string) string {
	path := requested
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], string(os.PathSeparator)))
		}
	}

	if err := ValidateWorkspace(path); err != nil {
		logger.Warn("[WARN] %v, falling back to %s\n", err, fallback)
		return fallback
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		logger.Warn("[WARN] Cannot resolve workspace %q, falling back to %s: %v\n", path, fallback, err)
		return fallback
	}
	return abs
}

// EnsureWorkspace creates the workspace directory if it does not exist.
func EnsureWorkspace(path string) error {
	return os.MkdirAll(path, 0755)
}
