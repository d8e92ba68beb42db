package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dev-migrate/internal/logger"
)

// Default file names, resolved relative to the directory the binary lives
// in so the tool can be carried onto a fresh machine together with its
// record files.
const (
	defaultAppsFile   = "apps.txt"
	defaultGitFile    = "gitconfig.txt"
	defaultReposFile  = "repos.txt"
	defaultExportFile = "winget-export.json"

	// defaultWorkspaceName is the subfolder of the home directory used as
	// the clone destination when no workspace is configured.
	defaultWorkspaceName = "source"
)

// BaseDir returns the directory containing the running executable, falling
// back to the current directory if it cannot be determined.
func BaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// DefaultWorkspace returns the invoking user's home directory plus the fixed
// workspace subfolder.
func DefaultWorkspace() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultWorkspaceName
	}
	return filepath.Join(home, defaultWorkspaceName)
}

// Defaults returns the built-in configuration used when no config.yaml is
// present: record files next to the binary, workspace under the home
// directory, export manifest in the current directory.
func Defaults() Config {
	base := BaseDir()
	return Config{
		AppsFile:      filepath.Join(base, defaultAppsFile),
		GitConfigFile: filepath.Join(base, defaultGitFile),
		ReposFile:     filepath.Join(base, defaultReposFile),
		Workspace:     DefaultWorkspace(),
		ExportFile:    defaultExportFile,
	}
}

// Load reads the optional master config file and merges it over Defaults().
// The master file holds paths and defaults only; the record lists themselves
// stay in the plain text files it points at. A missing or unreadable master
// file is not an error, it just means the defaults apply.
func Load(configFile string) Config {
	cfg := Defaults()

	raw, err := os.ReadFile(configFile)
	if err != nil {
		logger.Debug("[DEBUG] No master config at %s, using defaults\n", configFile)
		return cfg
	}

	// wrapper mirrors the file layout: everything lives under a `config:` key.
	var wrapper struct {
		Config Config `yaml:"config"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		logger.Warn("[WARN] Failed to parse %s, using defaults: %v\n", configFile, err)
		return cfg
	}

	if wrapper.Config.AppsFile != "" {
		cfg.AppsFile = wrapper.Config.AppsFile
	}
	if wrapper.Config.GitConfigFile != "" {
		cfg.GitConfigFile = wrapper.Config.GitConfigFile
	}
	if wrapper.Config.ReposFile != "" {
		cfg.ReposFile = wrapper.Config.ReposFile
	}
	if wrapper.Config.Workspace != "" {
		cfg.Workspace = wrapper.Config.Workspace
	}
	if wrapper.Config.ExportFile != "" {
		cfg.ExportFile = wrapper.Config.ExportFile
	}
	return cfg
}

// readRecords reads a record file and reports its parse diagnostics.
// A missing file degrades to a warning and an empty record set, matching
// the rule that no missing input is fatal.
func readRecords[T any](path, kind string, parse func(string) ([]T, []Diagnostic)) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("[WARN] %s file %s not found, nothing to do\n", kind, path)
		return nil
	}

	records, diags := parse(string(raw))
	for _, d := range diags {
		logger.Warn("[WARN] %s:%d: invalid %s entry %q (%s)\n", path, d.Line, kind, d.Text, d.Reason)
	}
	logger.Debug("[DEBUG] Loaded %d %s records from %s (%d invalid)\n", len(records), kind, path, len(diags))
	return records
}

// LoadApps reads the application list file.
func LoadApps(path string) []App {
	return readRecords(path, "application", ParseApps)
}

// LoadGitSettings reads the git settings file.
func LoadGitSettings(path string) []GitSetting {
	return readRecords(path, "git setting", ParseGitSettings)
}

// LoadRepos reads the repository list file.
func LoadRepos(path string) []Repo {
	return readRecords(path, "repository", ParseRepos)
}
