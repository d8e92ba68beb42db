package winget

import (
	"context"
	"os"
	"path/filepath"

	"dev-migrate/internal/config"
	"dev-migrate/internal/logger"
)

// Installer is the slice of Client the list-mode install phase needs.
type Installer interface {
	Install(ctx context.Context, id string) (InstallResult, string)
}

// InstallSummary tallies one install phase by result bucket.
type InstallSummary struct {
	Installed        int
	AlreadyInstalled int
	NotFound         int
	Failed           int
}

// Attempted returns how many installs were actually run.
func (s InstallSummary) Attempted() int {
	return s.Installed + s.AlreadyInstalled + s.NotFound + s.Failed
}

// InstallAll installs each declared application in order. Every entry is
// attempted exactly once; failures are classified, counted and logged, and
// the loop continues with the next entry.
func InstallAll(ctx context.Context, pm Installer, apps []config.App) InstallSummary {
	var sum InstallSummary

	for _, app := range apps {
		logger.Info("[INFO] Installing %s (%s)...\n", app.Name, app.ID)

		result, output := pm.Install(ctx, app.ID)
		switch result {
		case ResultInstalled:
			logger.Info("[INFO] %s installed\n", app.Name)
			sum.Installed++
		case ResultAlreadyInstalled:
			logger.Info("[INFO] %s is already installed\n", app.Name)
			sum.AlreadyInstalled++
		case ResultNotFound:
			logger.Warn("[WARN] No package matching %s found\n", app.ID)
			sum.NotFound++
		default:
			logger.Error("[ERROR] Failed to install %s\nOutput: %s\n", app.Name, output)
			sum.Failed++
		}
	}

	return sum
}

// ResolveImportFile resolves the import-mode manifest path: an absolute
// path is taken as given, anything else is relative to baseDir (the
// directory the binary lives in, where the export from the old machine is
// expected to sit). ok is false when the resolved file does not exist,
// which skips the whole install phase.
func ResolveImportFile(path, baseDir string) (string, bool) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}
