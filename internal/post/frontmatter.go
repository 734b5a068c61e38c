package post

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the optional values a post may declare ahead of its body.
type FrontMatter struct {
	Title string
}

// SplitFrontMatter separates an optional front-matter block from the
// markdown body. A leading block only counts as front matter when it decodes
// to a mapping with at least one key; anything else, such as a post opening
// with a horizontal rule, is returned unchanged as body.
func SplitFrontMatter(content []byte) (FrontMatter, []byte) {
	var values map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(content), &values)
	if err != nil || len(values) == 0 {
		return FrontMatter{}, content
	}

	var fm FrontMatter
	switch t := values["title"].(type) {
	case nil:
	case string:
		fm.Title = t
	default:
		fm.Title = fmt.Sprint(t)
	}
	return fm, body
}
