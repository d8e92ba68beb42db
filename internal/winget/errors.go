package winget

import (
	"fmt"
	"strings"
)

// CommandError is a winget invocation that ran but exited non-zero, with
// its captured output attached for the per-phase failure report.
type CommandError struct {
	Code   int
	Output string
}

func (e *CommandError) Error() string {
	if msg := strings.TrimSpace(e.Output); msg != "" {
		return fmt.Sprintf("winget exited with code %d: %s", e.Code, msg)
	}
	return fmt.Sprintf("winget exited with code %d", e.Code)
}
