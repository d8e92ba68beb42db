package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppsSkipsBlankAndCommentLines(t *testing.T) {
	raw := "\n" +
		"# package list\n" +
		"   \n" +
		"\t# indented comment\n" +
		"Git | Git.Git\n"

	apps, diags := ParseApps(raw)

	require.Len(t, apps, 1)
	assert.Empty(t, diags)
	assert.Equal(t, App{Name: "Git", ID: "Git.Git"}, apps[0])
}

func TestParseAppsMalformedLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no delimiter", raw: "Visual Studio Code\n"},
		{name: "empty id", raw: "Visual Studio Code |\n"},
		{name: "empty name", raw: "| Microsoft.VisualStudioCode\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps, diags := ParseApps(tt.raw)

			assert.Empty(t, apps)
			require.Len(t, diags, 1)
			assert.Equal(t, 1, diags[0].Line)
		})
	}
}

func TestParseAppsContinuesPastInvalidLines(t *testing.T) {
	raw := "Git | Git.Git\n" +
		"this line is broken\n" +
		"VS Code | Microsoft.VisualStudioCode\n"

	apps, diags := ParseApps(raw)

	require.Len(t, apps, 2)
	require.Len(t, diags, 1)
	assert.Equal(t, "Git.Git", apps[0].ID)
	assert.Equal(t, "Microsoft.VisualStudioCode", apps[1].ID)
	assert.Equal(t, 2, diags[0].Line)
}

func TestParseGitSettings(t *testing.T) {
	raw := "# identity\n" +
		"user.name = A B\n" +
		"user.email = a@example.com\n" +
		"core.autocrlf\n"

	settings, diags := ParseGitSettings(raw)

	require.Len(t, settings, 2)
	require.Len(t, diags, 1)
	assert.Equal(t, GitSetting{Key: "user.name", Value: "A B"}, settings[0])
	assert.Equal(t, GitSetting{Key: "user.email", Value: "a@example.com"}, settings[1])
	assert.Equal(t, "core.autocrlf", diags[0].Text)
}

func TestParseGitSettingsValueKeepsEqualsSigns(t *testing.T) {
	// Only the first = separates key from value.
	settings, diags := ParseGitSettings("alias.st = status --short=porcelain=x\n")

	require.Len(t, settings, 1)
	assert.Empty(t, diags)
	assert.Equal(t, "status --short=porcelain=x", settings[0].Value)
}

func TestParseRepos(t *testing.T) {
	raw := "https://github.com/me/tool.git\n" +
		"https://github.com/me/fork.git | https://github.com/them/original.git\n"

	repos, diags := ParseRepos(raw)

	require.Len(t, repos, 2)
	assert.Empty(t, diags)
	assert.Equal(t, Repo{URL: "https://github.com/me/tool.git"}, repos[0])
	assert.Equal(t, Repo{
		URL:         "https://github.com/me/fork.git",
		UpstreamURL: "https://github.com/them/original.git",
	}, repos[1])
}

func TestParseReposEmptyUpstreamAfterDelimiter(t *testing.T) {
	repos, diags := ParseRepos("https://github.com/me/tool.git |\n")

	assert.Empty(t, repos)
	require.Len(t, diags, 1)
}

func TestParseWhitespaceOnlyInputYieldsNothing(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n", "#a\n# b\n"} {
		apps, diags := ParseApps(raw)
		assert.Empty(t, apps)
		assert.Empty(t, diags)

		settings, diags := ParseGitSettings(raw)
		assert.Empty(t, settings)
		assert.Empty(t, diags)

		repos, diags := ParseRepos(raw)
		assert.Empty(t, repos)
		assert.Empty(t, diags)
	}
}
