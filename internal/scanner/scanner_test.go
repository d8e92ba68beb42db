package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatus scripts per-repository status output, keyed by the repo
// directory's base name.
type fakeStatus struct {
	output map[string]string
	fail   map[string]bool

	queried []string
}

func (f *fakeStatus) StatusShort(_ context.Context, dir string) (string, error) {
	name := filepath.Base(dir)
	f.queried = append(f.queried, name)
	if f.fail[name] {
		return "", errors.New("exit status 128")
	}
	return f.output[name], nil
}

// makeWorkspace builds a workspace directory containing the named repos
// (subdirectories with a .git marker) plus one plain directory and one
// loose file that the scan must ignore.
func makeWorkspace(t *testing.T, repos ...string) string {
	t.Helper()

	workspace := t.TempDir()
	for _, name := range repos {
		require.NoError(t, os.MkdirAll(filepath.Join(workspace, name, ".git"), 0755))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(workspace, "not-a-repo"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(workspace, "notes.txt"), []byte("x"), 0644))
	return workspace
}

func TestScanClassifiesRepositories(t *testing.T) {
	workspace := makeWorkspace(t, "clean1", "clean2", "dirty", "broken")

	git := &fakeStatus{
		output: map[string]string{
			"clean1": "",
			"clean2": "\n",
			"dirty":  " M main.go\n?? new.go\n",
		},
		fail: map[string]bool{"broken": true},
	}

	sum := Scan(context.Background(), git, workspace)

	assert.Equal(t, Summary{Clean: 2, Changed: 1, Errors: 1}, sum)
	assert.ElementsMatch(t, []string{"clean1", "clean2", "dirty", "broken"}, git.queried,
		"only directories with a .git marker are queried")
}

func TestScanGitFileMarkerCounts(t *testing.T) {
	// Worktrees and submodules use a .git file instead of a directory.
	workspace := t.TempDir()
	repoDir := filepath.Join(workspace, "worktree")
	require.NoError(t, os.MkdirAll(repoDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, ".git"), []byte("gitdir: elsewhere"), 0644))

	git := &fakeStatus{output: map[string]string{"worktree": ""}}

	sum := Scan(context.Background(), git, workspace)

	assert.Equal(t, Summary{Clean: 1}, sum)
}

func TestScanMissingWorkspace(t *testing.T) {
	git := &fakeStatus{}

	sum := Scan(context.Background(), git, filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, Summary{}, sum)
	assert.Empty(t, git.queried)
}

func TestScanEmptyWorkspace(t *testing.T) {
	sum := Scan(context.Background(), &fakeStatus{}, t.TempDir())
	assert.Equal(t, Summary{}, sum)
}
