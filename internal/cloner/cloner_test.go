package cloner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dev-migrate/internal/config"
)

// fakeGit simulates the git client for the clone phase. Successful clones
// create the target directory the way a real clone would, so the upstream
// step can find it.
type fakeGit struct {
	cloneErr    error
	upstreamErr error

	cloned        []string
	upstreamDirs  []string
	upstreamURLs  []string
	skipMakingDir bool
}

func (f *fakeGit) Clone(_ context.Context, workspace, url string) error {
	f.cloned = append(f.cloned, url)
	if f.cloneErr != nil {
		return f.cloneErr
	}
	if !f.skipMakingDir {
		if err := os.MkdirAll(filepath.Join(workspace, RepoDirName(url)), 0755); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGit) AddUpstream(_ context.Context, repoDir, url string) error {
	f.upstreamDirs = append(f.upstreamDirs, repoDir)
	f.upstreamURLs = append(f.upstreamURLs, url)
	return f.upstreamErr
}

func TestCloneAllAddsUpstreamOnce(t *testing.T) {
	workspace := t.TempDir()
	git := &fakeGit{}

	repos := []config.Repo{{
		URL:         "https://github.com/me/fork.git",
		UpstreamURL: "https://github.com/them/original.git",
	}}

	sum := CloneAll(context.Background(), git, workspace, repos)

	assert.Equal(t, Summary{Cloned: 1}, sum)
	require.Len(t, git.upstreamDirs, 1)
	assert.Equal(t, filepath.Join(workspace, "fork"), git.upstreamDirs[0])
	assert.Equal(t, "https://github.com/them/original.git", git.upstreamURLs[0])
}

func TestCloneAllSkipsInvalidURL(t *testing.T) {
	workspace := t.TempDir()
	git := &fakeGit{}

	repos := []config.Repo{
		{URL: "ftp://host/nope.git"},
		{URL: "https://github.com/me/tool.git"},
	}

	sum := CloneAll(context.Background(), git, workspace, repos)

	assert.Equal(t, Summary{Cloned: 1, Failed: 1}, sum)
	// The invalid URL never reached git.
	assert.Equal(t, []string{"https://github.com/me/tool.git"}, git.cloned)
}

func TestCloneAllCountsCloneFailures(t *testing.T) {
	workspace := t.TempDir()
	git := &fakeGit{cloneErr: errors.New("remote unreachable")}

	repos := []config.Repo{
		{URL: "https://github.com/me/a.git"},
		{URL: "https://github.com/me/b.git"},
	}

	sum := CloneAll(context.Background(), git, workspace, repos)

	assert.Equal(t, Summary{Failed: 2}, sum)
	assert.Len(t, git.cloned, 2, "a failed clone must not stop the loop")
}

func TestCloneAllUpstreamFailureStillCountsClone(t *testing.T) {
	workspace := t.TempDir()
	git := &fakeGit{upstreamErr: errors.New("remote upstream already exists")}

	repos := []config.Repo{{
		URL:         "https://github.com/me/fork.git",
		UpstreamURL: "https://github.com/them/original.git",
	}}

	sum := CloneAll(context.Background(), git, workspace, repos)

	assert.Equal(t, Summary{Cloned: 1}, sum)
}

func TestCloneAllMissingCloneDirSkipsUpstream(t *testing.T) {
	workspace := t.TempDir()
	git := &fakeGit{skipMakingDir: true}

	repos := []config.Repo{{
		URL:         "https://github.com/me/fork.git",
		UpstreamURL: "https://github.com/them/original.git",
	}}

	sum := CloneAll(context.Background(), git, workspace, repos)

	assert.Equal(t, Summary{Cloned: 1}, sum)
	assert.Empty(t, git.upstreamDirs)
}
