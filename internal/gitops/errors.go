package gitops

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitError carries the exit code and captured stderr of a failed git
// invocation so callers can log the diagnostic text alongside their own
// per-record status line.
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	err      error
}

// NewGitError builds a GitError from command arguments, captured stderr and
// the error returned by exec. The exit code is -1 when the process never
// ran (e.g. binary missing).
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		Args:     args,
		ExitCode: exitCode,
		Stderr:   stderr,
		err:      err,
	}
}

func (e *GitError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), msg)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.err)
}

func (e *GitError) Unwrap() error {
	return e.err
}
