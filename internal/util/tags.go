package util

import (
	"regexp"
	"strings"
)

var tagSpaceRegexp = regexp.MustCompile(`\s+`)

// NormalizeTag collapses inner whitespace, trims, and lowercases a
// project or context name so filter matches are case-insensitive.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tagSpaceRegexp.ReplaceAllString(tag, " ")))
}

func HasTag(tags []string, name string) bool {
	normalized := NormalizeTag(name)
	for _, tag := range tags {
		if NormalizeTag(tag) == normalized {
			return true
		}
	}
	return false
}

func RemoveTag(tags []string, name string) []string {
	normalized := NormalizeTag(name)
	updated := make([]string, 0, len(tags))
	for _, tag := range tags {
		if NormalizeTag(tag) != normalized {
			updated = append(updated, tag)
		}
	}
	return updated
}
