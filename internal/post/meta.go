// Package post derives post metadata and creates new post stubs.
package post

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ferrors "github.com/carlwiedemann/foresite/internal/errors"
	"github.com/carlwiedemann/foresite/internal/model"
)

var (
	datePattern    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	headingPattern = regexp.MustCompile(`^# [A-Za-z]`)
	datePrefix     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-?`)
)

// DateFromFilename returns the first YYYY-MM-DD substring of filename, or
// the empty string when there is none.
func DateFromFilename(filename string) string {
	return datePattern.FindString(filename)
}

// TitleFromContent returns the text of the first "# " heading that starts
// with an ASCII letter. It fails with ErrMissingTitle when there is none.
func TitleFromContent(content string) (string, error) {
	for _, line := range strings.Split(content, "\n") {
		if headingPattern.MatchString(line) {
			return strings.TrimSpace(strings.TrimPrefix(line, "#")), nil
		}
	}
	return "", ferrors.ErrMissingTitle
}

// Extract derives a post's date from its filename and its title from its content.
// The date silently degrades to empty; a missing title is an error.
func Extract(filename, content string) (model.PostMeta, error) {
	meta := model.PostMeta{Date: DateFromFilename(filename)}

	title, err := TitleFromContent(content)
	if err != nil {
		return meta, fmt.Errorf("%s: %w", filename, err)
	}
	meta.Title = title

	return meta, nil
}

// FallbackTitle builds a display title from a markdown filename, for posts
// that have no heading.
func FallbackTitle(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = datePrefix.ReplaceAllString(base, "")
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(strings.TrimSpace(base))
}
