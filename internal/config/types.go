package config

// App represents one application to install via winget.
// - Name: Display name, used only for log output.
// - ID: winget package identifier (e.g. Git.Git), passed to `winget install --id`.
type App struct {
	Name string
	ID   string
}

// GitSetting is a single key/value pair applied as global git configuration
// (e.g. user.name = Jane Doe). Order matters only for display; applying a
// key twice is harmless because `git config --global` overwrites.
type GitSetting struct {
	Key   string
	Value string
}

// Repo declares a repository to clone. UpstreamURL is optional; when set,
// a remote named "upstream" pointing at it is added to the fresh clone,
// which is the usual fork workflow.
type Repo struct {
	URL         string
	UpstreamURL string
}

// Diagnostic describes one input line that was rejected during parsing.
// Parsing never fails as a whole; bad lines are skipped and reported.
type Diagnostic struct {
	Line   int    // 1-based line number in the source file
	Text   string // The offending line, trimmed
	Reason string // Why it was rejected
}

// Config is the resolved master configuration: where the three record files
// live plus the defaults the two commands fall back to. Every field is
// overridable from the optional config.yaml and again from command flags.
type Config struct {
	AppsFile      string `yaml:"apps_file"`
	GitConfigFile string `yaml:"git_config_file"`
	ReposFile     string `yaml:"repos_file"`
	Workspace     string `yaml:"workspace"`
	ExportFile    string `yaml:"export_file"`
}
