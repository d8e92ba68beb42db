// Package scanner walks the workspace before a migration and reports which
// git repositories still have uncommitted work. The scan is purely
// informational; it never blocks the export.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"dev-migrate/internal/logger"
)

// StatusRunner is the slice of the git client the scan needs.
type StatusRunner interface {
	StatusShort(ctx context.Context, dir string) (string, error)
}

// Summary aggregates one workspace scan.
type Summary struct {
	Clean   int
	Changed int
	Errors  int
}

// repoDirs returns the immediate subdirectories of workspace that carry a
// .git marker. The marker may be a directory or a file (worktrees and
// submodules use a file), so only existence is checked.
func repoDirs(workspace string) ([]string, error) {
	entries, err := os.ReadDir(workspace)
	if err != nil {
		return nil, err
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(workspace, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			repos = append(repos, dir)
		}
	}
	return repos, nil
}

// Scan classifies every repository under workspace as clean, changed or
// errored by running a short-format status in each. Changed paths are
// echoed per repository, and a final advisory reminds the user to commit
// and push before wiping the machine.
func Scan(ctx context.Context, git StatusRunner, workspace string) Summary {
	var sum Summary

	repos, err := repoDirs(workspace)
	if err != nil {
		logger.Warn("[WARN] Cannot read workspace %s: %v\n", workspace, err)
		return sum
	}
	logger.Info("[INFO] Scanning %d repositories under %s\n", len(repos), workspace)

	for _, dir := range repos {
		name := filepath.Base(dir)

		output, err := git.StatusShort(ctx, dir)
		if err != nil {
			logger.Error("[ERROR] Status failed for %s: %v\n", name, err)
			sum.Errors++
			continue
		}

		if strings.TrimSpace(output) == "" {
			logger.Debug("[DEBUG] %s is clean\n", name)
			sum.Clean++
			continue
		}

		logger.Warn("[WARN] %s has uncommitted changes:\n", name)
		for _, l := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
			logger.Warn("[WARN]   %s: %s\n", name, strings.TrimSpace(l))
		}
		sum.Changed++
	}

	logger.Info("[INFO] Scan complete: %d clean, %d with changes, %d errors\n", sum.Clean, sum.Changed, sum.Errors)
	if sum.Changed > 0 {
		logger.Warn("[WARN] Commit and push the %d changed repositories before reinstalling\n", sum.Changed)
	}
	return sum
}
