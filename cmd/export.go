package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dev-migrate/internal/config"
	"dev-migrate/internal/gitops"
	"dev-migrate/internal/logger"
	"dev-migrate/internal/scanner"
	"dev-migrate/internal/winget"
)

// Flags for the export command. Empty string means "use the configured
// default".
var (
	exportWorkspace string
	exportOutput    string
	skipScan        bool
	skipExport      bool
)

// exportCmd is the pre-migration entry point: scan the workspace for
// repositories with uncommitted work, then export the installed package
// set via winget so it can be replayed on the fresh machine.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Capture machine state before a reinstall (repo scan + winget export)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)
		ctx := context.Background()

		if skipScan {
			logger.Warn("[WARN] Skipping repository scan (--skip-scan)\n")
		} else {
			runScan(ctx, cfg)
		}

		if skipExport {
			logger.Warn("[WARN] Skipping package export (--skip-export)\n")
		} else {
			runExport(ctx, cfg)
		}
	},
}

// runScan checks every git repository under the workspace for uncommitted
// changes. Informational only; a dirty repo never blocks the export.
func runScan(ctx context.Context, cfg config.Config) {
	workspace := exportWorkspace
	if workspace == "" {
		workspace = cfg.Workspace
	}

	git := gitops.NewClient()
	if !git.Available(ctx) {
		logger.Warn("[WARN] git not found, skipping repository scan\n")
		return
	}

	scanner.Scan(ctx, git, workspace)
}

// runExport shells out to winget to write the package manifest, then reads
// it back for the count summary. A summary failure is swallowed; the export
// itself already succeeded.
func runExport(ctx context.Context, cfg config.Config) {
	outPath := exportOutput
	if outPath == "" {
		outPath = cfg.ExportFile
	}

	pm := winget.NewClient()
	if !pm.Available() {
		logger.Warn("[WARN] winget not found, skipping package export\n")
		return
	}

	logger.Info("[INFO] Exporting installed packages to %s...\n", outPath)
	if output, err := pm.Export(ctx, outPath); err != nil {
		logger.Error("[ERROR] Package export failed: %v\nOutput: %s\n", err, output)
		return
	}

	if count, err := winget.CountPackages(outPath); err != nil {
		logger.Warn("[WARN] Export written to %s (package count summary unavailable: %v)\n", outPath, err)
	} else {
		logger.Info("[INFO] Exported %d packages to %s\n", count, outPath)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportWorkspace, "workspace", "", "Workspace directory to scan for repositories")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Path for the winget export manifest")
	exportCmd.Flags().BoolVar(&skipScan, "skip-scan", false, "Skip the repository scan")
	exportCmd.Flags().BoolVar(&skipExport, "skip-export", false, "Skip the winget package export")

	rootCmd.AddCommand(exportCmd)
}
