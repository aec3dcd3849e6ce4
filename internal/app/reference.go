package app

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	quotesReplacer = strings.NewReplacer(
		`"`, "",
		`'`, "",
		"“", "",
		"”", "",
		"‘", "",
		"’", "",
	)
	trailingGoPattern   = regexp.MustCompile(`(?i)go$`)
	githubPrefixPattern = regexp.MustCompile(`(?i)^https?://(www\.)?github\.com/`)
)

// ParseReference parses github profile or repository link.
// Accepts full urls ("https://github.com/owner/repo") and short forms ("owner/repo", "owner").
// Returns false if no owner can be extracted.
//
// Trailing "go" is always stripped, so repositories with names ending with "go" can't be referenced.
func ParseReference(input string) (Reference, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Reference{}, false
	}

	s = quotesReplacer.Replace(s)
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = trailingGoPattern.ReplaceAllString(s, "")
	s = githubPrefixPattern.ReplaceAllString(s, "")

	var parts []string
	for _, p := range strings.Split(s, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 0:
		return Reference{}, false
	case 1:
		return Reference{Kind: ReferenceUser, Owner: parts[0]}, true
	default:
		return Reference{Kind: ReferenceRepo, Owner: parts[0], Repo: parts[1]}, true
	}
}
