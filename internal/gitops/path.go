package gitops

import (
	"os"
	"path/filepath"
	"strings"

	"dev-migrate/internal/logger"
)

// knownGitDirs returns the directories a fresh winget install of Git is
// likely to have dropped its executables into. Only directories that
// actually exist are returned.
func knownGitDirs() []string {
	candidates := []string{
		`C:\Program Files\Git\cmd`,
		`C:\Program Files\Git\bin`,
		`C:\Program Files (x86)\Git\cmd`,
	}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		candidates = append(candidates, filepath.Join(localAppData, "Programs", "Git", "cmd"))
	}

	var found []string
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			found = append(found, dir)
		}
	}
	return found
}

// RefreshSessionPath appends any discovered Git installation directories to
// this process's PATH so a git installed moments ago by the app phase is
// reachable in the git and clone phases without a shell restart. The change
// is not persisted beyond the process.
func RefreshSessionPath() {
	current := os.Getenv("PATH")

	for _, dir := range knownGitDirs() {
		if strings.Contains(strings.ToLower(current), strings.ToLower(dir)) {
			continue
		}
		current = current + string(os.PathListSeparator) + dir
		logger.Debug("[DEBUG] Added %s to session PATH\n", dir)
	}

	_ = os.Setenv("PATH", current)
}
