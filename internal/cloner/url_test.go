package cloner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRepoURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{url: "https://host/path.git", valid: true},
		{url: "https://gitlab.example.com/group/sub/project.git", valid: true},
		{url: "git@host:path.git", valid: true},
		{url: "git@github.com:owner/repo.git", valid: true},
		{url: "https://github.com/owner/repo", valid: true},
		{url: "https://github.com/owner/repo/", valid: true},
		{url: "ftp://host/path.git", valid: false},
		{url: "owner/repo", valid: false},
		{url: "https://github.com/owner", valid: false},
		{url: "git@host:path", valid: false},
		{url: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidRepoURL(tt.url), "url %q", tt.url)
		})
	}
}

func TestRepoDirName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "https://example.com/org/my-repo.git", want: "my-repo"},
		{url: "https://github.com/owner/repo", want: "repo"},
		{url: "https://github.com/owner/repo/", want: "repo"},
		{url: "git@github.com:owner/tool.git", want: "tool"},
		{url: "git@host:flat.git", want: "flat"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoDirName(tt.url))
		})
	}
}
