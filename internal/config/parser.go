package config

import (
	"strings"
)

// The three record files share one line discipline: UTF-8 text, blank lines
// and lines starting with `#` (after trimming) are ignored, every other line
// is a record split on a file-specific delimiter. The parse functions below
// are pure (text in, records plus diagnostics out) so they can be unit
// tested without touching the filesystem; the I/O lives in load.go.

// line is one surviving input line with its original position, kept so
// diagnostics can point back at the source file.
type line struct {
	num  int
	text string
}

// contentLines trims every line of raw and drops blanks and `#` comments.
func contentLines(raw string) []line {
	var out []line
	for i, l := range strings.Split(raw, "\n") {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		out = append(out, line{num: i + 1, text: t})
	}
	return out
}

// splitRecord splits a record line on the first occurrence of delim into
// exactly two trimmed fields. ok is false when the delimiter is absent.
func splitRecord(text, delim string) (first, second string, ok bool) {
	first, second, ok = strings.Cut(text, delim)
	return strings.TrimSpace(first), strings.TrimSpace(second), ok
}

// ParseApps parses the application list (`Display Name | package-id`).
// A line without the `|` delimiter or with an empty field yields one
// diagnostic and no record; parsing continues with the remaining lines.
func ParseApps(raw string) ([]App, []Diagnostic) {
	var (
		apps  []App
		diags []Diagnostic
	)
	for _, l := range contentLines(raw) {
		name, id, ok := splitRecord(l.text, "|")
		if !ok || name == "" || id == "" {
			diags = append(diags, Diagnostic{Line: l.num, Text: l.text, Reason: "expected 'Display Name | package-id'"})
			continue
		}
		apps = append(apps, App{Name: name, ID: id})
	}
	return apps, diags
}

// ParseGitSettings parses the git settings list (`key = value`).
func ParseGitSettings(raw string) ([]GitSetting, []Diagnostic) {
	var (
		settings []GitSetting
		diags    []Diagnostic
	)
	for _, l := range contentLines(raw) {
		key, value, ok := splitRecord(l.text, "=")
		if !ok || key == "" || value == "" {
			diags = append(diags, Diagnostic{Line: l.num, Text: l.text, Reason: "expected 'key = value'"})
			continue
		}
		settings = append(settings, GitSetting{Key: key, Value: value})
	}
	return settings, diags
}

// ParseRepos parses the repository list (`repo_url[|upstream_url]`).
// The upstream field is optional, so a line without the delimiter is a
// valid single-URL record; URL shape is checked later, in the clone phase,
// where a bad URL is counted as a per-record failure.
func ParseRepos(raw string) ([]Repo, []Diagnostic) {
	var (
		repos []Repo
		diags []Diagnostic
	)
	for _, l := range contentLines(raw) {
		url, upstream, ok := splitRecord(l.text, "|")
		if url == "" {
			diags = append(diags, Diagnostic{Line: l.num, Text: l.text, Reason: "missing repository URL"})
			continue
		}
		if ok && upstream == "" {
			diags = append(diags, Diagnostic{Line: l.num, Text: l.text, Reason: "empty upstream URL after '|'"})
			continue
		}
		repos = append(repos, Repo{URL: url, UpstreamURL: upstream})
	}
	return repos, diags
}
