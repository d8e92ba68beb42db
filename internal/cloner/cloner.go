// Package cloner clones the declared repository list into a validated
// workspace, wiring an "upstream" remote for forks that declare one.
package cloner

import (
	"context"
	"os"
	"path/filepath"

	"dev-migrate/internal/config"
	"dev-migrate/internal/logger"
)

// GitCloner is the slice of the git client the clone phase needs.
type GitCloner interface {
	Clone(ctx context.Context, workspace, url string) error
	AddUpstream(ctx context.Context, repoDir, url string) error
}

// Summary tallies one clone phase. A repo counts as cloned even when its
// upstream remote could not be added afterwards; the clone itself succeeded.
type Summary struct {
	Cloned int
	Failed int
}

// CloneAll clones every declared repository into the workspace. Invalid
// URLs and failed clones are counted and logged without stopping the loop.
// The clone runs with the child process working directory set to the
// workspace, so the parent's working directory is never touched.
func CloneAll(ctx context.Context, git GitCloner, workspace string, repos []config.Repo) Summary {
	var sum Summary

	logger.Info("[INFO] Cloning %d repositories into %s:\n", len(repos), workspace)
	for _, r := range repos {
		if r.UpstreamURL != "" {
			logger.Info("[INFO]   %s (upstream %s)\n", r.URL, r.UpstreamURL)
		} else {
			logger.Info("[INFO]   %s\n", r.URL)
		}
	}

	for _, r := range repos {
		if !ValidRepoURL(r.URL) {
			logger.Warn("[WARN] Skipping %q: not a recognized repository URL\n", r.URL)
			sum.Failed++
			continue
		}

		logger.Info("[INFO] Cloning %s...\n", r.URL)
		if err := git.Clone(ctx, workspace, r.URL); err != nil {
			logger.Error("[ERROR] Clone failed for %s: %v\n", r.URL, err)
			sum.Failed++
			continue
		}
		sum.Cloned++

		if r.UpstreamURL == "" {
			continue
		}

		repoDir := filepath.Join(workspace, RepoDirName(r.URL))
		if _, err := os.Stat(repoDir); err != nil {
			logger.Warn("[WARN] Clone directory %s not found, cannot add upstream\n", repoDir)
			continue
		}
		if err := git.AddUpstream(ctx, repoDir, r.UpstreamURL); err != nil {
			logger.Warn("[WARN] Could not add upstream remote to %s: %v\n", repoDir, err)
			continue
		}
		logger.Info("[INFO] Added upstream %s to %s\n", r.UpstreamURL, RepoDirName(r.URL))
	}

	logger.Info("[INFO] Clone phase complete: %d cloned, %d failed\n", sum.Cloned, sum.Failed)
	return sum
}
