// Package gitops wraps the external git binary. Every operation is one
// synchronous command invocation; git's own state machine is never
// reimplemented here.
package gitops

import (
	"bytes"
	"context"
	"os/exec"
)

// Client runs git commands. The zero value is not usable; construct with
// NewClient, which locates the git binary on PATH.
type Client struct {
	// GitPath is the resolved path of the git executable. Empty when git
	// was not found on PATH at construction time.
	GitPath string

	// run executes one git invocation and returns its stdout. Tests
	// replace it to simulate git without a real binary.
	run func(ctx context.Context, dir string, args ...string) (string, error)
}

// NewClient creates a git client. Availability is checked lazily via
// Available so that a missing git binary degrades the dependent phase to a
// warning instead of failing construction.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	c := &Client{GitPath: gitPath}
	c.run = c.execute
	return c
}

// execute runs git with the given arguments, with the child's working
// directory set to dir when non-empty. The parent process working directory
// is never changed.
func (c *Client) execute(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), NewGitError(args, stderr.String(), err)
	}
	return stdout.String(), nil
}

// Available reports whether the git binary can be invoked at all.
func (c *Client) Available(ctx context.Context) bool {
	if c.GitPath == "" {
		return false
	}
	_, err := c.run(ctx, "", "--version")
	return err == nil
}

// StatusShort returns `git status --short` output for the repository at dir.
// Empty output means a clean working tree.
func (c *Client) StatusShort(ctx context.Context, dir string) (string, error) {
	return c.run(ctx, dir, "status", "--short")
}

// Clone clones url into the workspace directory. git derives the target
// folder name from the URL, so the clone lands directly under workspace.
func (c *Client) Clone(ctx context.Context, workspace, url string) error {
	_, err := c.run(ctx, workspace, "clone", url)
	return err
}

// AddUpstream adds a remote named "upstream" inside the repository at repoDir.
func (c *Client) AddUpstream(ctx context.Context, repoDir, url string) error {
	_, err := c.run(ctx, repoDir, "remote", "add", "upstream", url)
	return err
}

// SetGlobal sets one global git configuration key.
func (c *Client) SetGlobal(ctx context.Context, key, value string) error {
	_, err := c.run(ctx, "", "config", "--global", key, value)
	return err
}
