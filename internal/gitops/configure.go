package gitops

import (
	"context"

	"dev-migrate/internal/config"
	"dev-migrate/internal/logger"
)

// ConfigSetter is the slice of Client the configure phase needs.
type ConfigSetter interface {
	SetGlobal(ctx context.Context, key, value string) error
}

// ConfigureResult tallies the configure phase.
type ConfigureResult struct {
	Applied int
	Failed  int
}

// ApplySettings applies each declared git setting globally. A failing key is
// reported and counted but never stops the remaining settings.
func ApplySettings(ctx context.Context, git ConfigSetter, settings []config.GitSetting) ConfigureResult {
	var res ConfigureResult

	for _, s := range settings {
		logger.Debug("[DEBUG] git config --global %s %q\n", s.Key, s.Value)

		if err := git.SetGlobal(ctx, s.Key, s.Value); err != nil {
			logger.Error("[ERROR] Failed to set %s: %v\n", s.Key, err)
			res.Failed++
			continue
		}

		logger.Info("[INFO] Set %s = %s\n", s.Key, s.Value)
		res.Applied++
	}

	return res
}
