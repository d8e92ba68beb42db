package cloner

import (
	"regexp"
	"strings"
)

// repoURLPatterns are the accepted repository URL shapes: an https clone
// URL ending in .git on any host, an scp-style ssh URL, or a bare GitHub
// web URL (git accepts those for cloning as-is).
var repoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https://[^/\s]+/\S+\.git$`),
	regexp.MustCompile(`^git@[^:\s]+:\S+\.git$`),
	regexp.MustCompile(`^https://github\.com/[^/\s]+/[^/\s]+/?$`),
}

// ValidRepoURL reports whether url matches one of the accepted shapes.
// Anything else (ftp URLs, bare owner/repo shorthands) is rejected by the
// clone phase with a warning.
func ValidRepoURL(url string) bool {
	for _, p := range repoURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// RepoDirName derives the local directory name git will clone into: the
// last path segment of the URL with the .git suffix stripped. Works for
// both https and scp-style URLs.
func RepoDirName(url string) string {
	s := strings.TrimSuffix(url, "/")
	if i := strings.LastIndexAny(s, "/:"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, ".git")
}
