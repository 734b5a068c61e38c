package post

import (
	"regexp"
	"strings"
)

var nonLetters = regexp.MustCompile(`[^a-z]+`)

// Slugify lowercases title and collapses every run of characters other
// than ASCII letters into a single hyphen, with no leading or trailing hyphen.
func Slugify(title string) string {
	slug := nonLetters.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// Filename returns the markdown filename for a post created on date.
func Filename(date, title string) string {
	return date + "-" + Slugify(title) + ".md"
}
