package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dev-migrate/internal/cloner"
	"dev-migrate/internal/config"
	"dev-migrate/internal/gitops"
	"dev-migrate/internal/logger"
	"dev-migrate/internal/winget"
)

// Flags for the setup command. Path flags left empty fall back to the
// configured defaults.
var (
	appsFile       string
	gitConfigFile  string
	reposFile      string
	importFile     string
	setupWorkspace string
	skipApps       bool
	skipGit        bool
	skipRepos      bool
)

// setupCmd is the fresh-machine entry point. It runs three phases in
// order, each independently skippable: install applications, apply global
// git configuration, clone declared repositories. Phases degrade to
// warnings when their external tool is missing; the run always reaches
// the end.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision a fresh machine (apps, git config, repositories)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)
		ctx := context.Background()

		if skipApps {
			logger.Warn("[WARN] Skipping application install (--skip-apps)\n")
		} else {
			runInstallApps(ctx, cfg)
			// A just-installed git is not on the inherited PATH yet;
			// pick up its install directories for the rest of this run.
			gitops.RefreshSessionPath()
		}

		if skipGit {
			logger.Warn("[WARN] Skipping git configuration (--skip-git)\n")
		} else {
			runConfigureGit(ctx, cfg)
		}

		if skipRepos {
			logger.Warn("[WARN] Skipping repository clone (--skip-repos)\n")
		} else {
			runCloneRepos(ctx, cfg)
		}
	},
}

// runInstallApps installs applications in one of two modes: replay a
// previously exported winget manifest when --import-file is given,
// otherwise install each entry of the application list individually.
func runInstallApps(ctx context.Context, cfg config.Config) {
	pm := winget.NewClient()
	if !pm.Available() {
		logger.Warn("[WARN] winget not found, skipping application install\n")
		return
	}

	if importFile != "" {
		path, ok := winget.ResolveImportFile(importFile, config.BaseDir())
		if !ok {
			logger.Error("[ERROR] Import file %s does not exist, skipping application install\n", path)
			return
		}

		logger.Info("[INFO] Importing packages from %s...\n", path)
		if output, err := pm.Import(ctx, path); err != nil {
			logger.Error("[ERROR] Package import failed: %v\nOutput: %s\n", err, output)
			return
		}
		logger.Info("[INFO] Package import complete\n")
		return
	}

	path := appsFile
	if path == "" {
		path = cfg.AppsFile
	}

	apps := config.LoadApps(path)
	if len(apps) == 0 {
		return
	}

	sum := winget.InstallAll(ctx, pm, apps)
	logger.Info("[INFO] Application phase complete: %d installed, %d already installed, %d not found, %d failed\n",
		sum.Installed, sum.AlreadyInstalled, sum.NotFound, sum.Failed)
}

// runConfigureGit applies each declared global git setting.
func runConfigureGit(ctx context.Context, cfg config.Config) {
	git := gitops.NewClient()
	if !git.Available(ctx) {
		logger.Warn("[WARN] git not found, skipping git configuration\n")
		return
	}

	path := gitConfigFile
	if path == "" {
		path = cfg.GitConfigFile
	}

	settings := config.LoadGitSettings(path)
	if len(settings) == 0 {
		return
	}

	res := gitops.ApplySettings(ctx, git, settings)
	logger.Info("[INFO] Git configuration complete: %d applied, %d failed\n", res.Applied, res.Failed)
}

// runCloneRepos resolves and creates the workspace, then clones the
// declared repository list into it.
func runCloneRepos(ctx context.Context, cfg config.Config) {
	git := gitops.NewClient()
	if !git.Available(ctx) {
		logger.Warn("[WARN] git not found, skipping repository clone\n")
		return
	}

	requested := setupWorkspace
	if requested == "" {
		requested = cfg.Workspace
	}

	workspace := cloner.ResolveWorkspace(requested, config.DefaultWorkspace())
	if err := cloner.EnsureWorkspace(workspace); err != nil {
		logger.Error("[ERROR] Cannot create workspace %s, skipping repository clone: %v\n", workspace, err)
		return
	}

	path := reposFile
	if path == "" {
		path = cfg.ReposFile
	}

	repos := config.LoadRepos(path)
	if len(repos) == 0 {
		return
	}

	cloner.CloneAll(ctx, git, workspace, repos)
}

func init() {
	setupCmd.Flags().StringVar(&appsFile, "apps", "", "Path to the application list file")
	setupCmd.Flags().StringVar(&gitConfigFile, "git-config", "", "Path to the git settings file")
	setupCmd.Flags().StringVar(&reposFile, "repos", "", "Path to the repository list file")
	setupCmd.Flags().StringVar(&importFile, "import-file", "", "Replay a winget export manifest instead of the application list")
	setupCmd.Flags().StringVar(&setupWorkspace, "workspace", "", "Directory to clone repositories into")
	setupCmd.Flags().BoolVar(&skipApps, "skip-apps", false, "Skip the application install phase")
	setupCmd.Flags().BoolVar(&skipGit, "skip-git", false, "Skip the git configuration phase")
	setupCmd.Flags().BoolVar(&skipRepos, "skip-repos", false, "Skip the repository clone phase")

	rootCmd.AddCommand(setupCmd)
}
