// Package winget wraps the Windows Package Manager CLI. Installation,
// export and import are all delegated to the external binary; this package
// only builds argument lists and classifies exit codes.
package winget

import (
	"context"
	"errors"
	"os/exec"
)

// winget reports a handful of conditions through negative HRESULT exit
// codes. Only the two we classify are listed; everything else non-zero is
// a generic failure. These sentinels are specific to current winget
// releases and must be revalidated when targeting another version.
const (
	codeAlreadyInstalled int32 = -1978335189 // 0x8A15002B APPINSTALLER_CLI_ERROR_PACKAGE_ALREADY_INSTALLED
	codeNoPackageFound   int32 = -1978335212 // 0x8A150014 APPINSTALLER_CLI_ERROR_NO_APPLICATIONS_FOUND
)

// InstallResult is the classification of one install attempt.
type InstallResult int

const (
	ResultInstalled InstallResult = iota
	ResultAlreadyInstalled
	ResultNotFound
	ResultFailed
)

// String returns the human-readable bucket name used in summaries.
func (r InstallResult) String() string {
	switch r {
	case ResultInstalled:
		return "installed"
	case ResultAlreadyInstalled:
		return "already installed"
	case ResultNotFound:
		return "no matching package"
	default:
		return "failed"
	}
}

// classify maps a raw exit code onto an InstallResult. The code is
// normalized through int32 because the OS reports the HRESULT as an
// unsigned value while winget documents it as a negative number.
func classify(code int) InstallResult {
	switch int32(uint32(code)) {
	case 0:
		return ResultInstalled
	case codeAlreadyInstalled:
		return ResultAlreadyInstalled
	case codeNoPackageFound:
		return ResultNotFound
	default:
		return ResultFailed
	}
}

// Client runs winget commands. Construct with NewClient.
type Client struct {
	// Path is the resolved winget executable, empty when not found on PATH.
	Path string

	// run executes one invocation and returns the combined output, the
	// exit code, and an error only when the process could not run at all.
	// Tests replace it to simulate winget.
	run func(ctx context.Context, args ...string) (string, int, error)
}

// NewClient creates a winget client. A missing binary is not an error here;
// callers check Available and degrade their phase to a warning.
func NewClient() *Client {
	path, _ := exec.LookPath("winget")

	c := &Client{Path: path}
	c.run = c.execute
	return c
}

func (c *Client) execute(ctx context.Context, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, c.Path, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(output), exitErr.ExitCode(), nil
		}
		return string(output), -1, err
	}
	return string(output), 0, nil
}

// Available reports whether the winget binary was found on PATH.
func (c *Client) Available() bool {
	return c.Path != ""
}

// Install installs one package by identifier, suppressing all interactive
// prompts and accepting agreements so the run never blocks on input.
// The returned output is the captured diagnostic text for the failure case.
func (c *Client) Install(ctx context.Context, id string) (InstallResult, string) {
	output, code, err := c.run(ctx, "install", "--id", id, "-e",
		"--accept-package-agreements", "--accept-source-agreements", "--disable-interactivity")
	if err != nil {
		return ResultFailed, err.Error()
	}
	return classify(code), output
}

// Export writes the installed package manifest to outPath.
func (c *Client) Export(ctx context.Context, outPath string) (string, error) {
	output, code, err := c.run(ctx, "export", "-o", outPath, "--accept-source-agreements")
	if err != nil {
		return output, err
	}
	if code != 0 {
		return output, &CommandError{Code: code, Output: output}
	}
	return output, nil
}

// Import replays a previously exported manifest in a single winget call.
// Packages missing from current sources are skipped rather than failing
// the whole import.
func (c *Client) Import(ctx context.Context, path string) (string, error) {
	output, code, err := c.run(ctx, "import", "-i", path,
		"--accept-package-agreements", "--accept-source-agreements", "--ignore-unavailable")
	if err != nil {
		return output, err
	}
	if code != 0 {
		return output, &CommandError{Code: code, Output: output}
	}
	return output, nil
}
