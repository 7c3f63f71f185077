package util

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	mentionRe  = regexp.MustCompile(`@(\w+)`)
	hashtagRe  = regexp.MustCompile(`#(\w+)`)
)

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Mentions returns the usernames mentioned in content, without the @ and
// without duplicates, in first-seen order.
func Mentions(content string) []string {
	return captures(mentionRe, content)
}

// Hashtags returns the tags used in content, without the # and without
// duplicates, in first-seen order. Tags are lowercased so #Go and #go
// collapse to one.
func Hashtags(content string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range hashtagRe.FindAllStringSubmatch(content, -1) {
		t := strings.ToLower(m[1])
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func captures(re *regexp.Regexp, s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		out = append(out, m[1])
	}
	return out
}
