// Package paths computes the canonical locations of a foresite project.
package paths

import (
	"path/filepath"
	"strings"
)

// Subdirectory names under the root.
const (
	DirMarkdown  = "md"
	DirOutput    = "out"
	DirTemplates = "templates"
)

// Template file names within DirTemplates.
const (
	FilePost    = "post.md.tmpl"
	FileWrapper = "wrapper.html.tmpl"
	FileList    = "_list.html.tmpl"
)

// FileIndex is the name of the generated index page.
const FileIndex = "index.html"

// FileSite is the optional site configuration file under the root.
const FileSite = "site.yaml"

// Paths joins fixed names onto a single root directory. It performs no I/O.
type Paths struct {
	Root string
}

// New returns Paths for the given root.
func New(root string) Paths {
	return Paths{Root: root}
}

// Markdown returns the markdown source directory.
func (p Paths) Markdown() string {
	return filepath.Join(p.Root, DirMarkdown)
}

// Output returns the generated HTML directory.
func (p Paths) Output() string {
	return filepath.Join(p.Root, DirOutput)
}

// Templates returns the template directory.
func (p Paths) Templates() string {
	return filepath.Join(p.Root, DirTemplates)
}

// MarkdownFile returns the path of a named file in the markdown directory.
func (p Paths) MarkdownFile(name string) string {
	return filepath.Join(p.Markdown(), name)
}

// OutputFile returns the path of a named file in the output directory.
func (p Paths) OutputFile(name string) string {
	return filepath.Join(p.Output(), name)
}

// TemplateFile returns the path of a named file in the template directory.
func (p Paths) TemplateFile(name string) string {
	return filepath.Join(p.Templates(), name)
}

// SiteFile returns the path of the site configuration file.
func (p Paths) SiteFile() string {
	return filepath.Join(p.Root, FileSite)
}

// Subdirectories lists the directories init creates, in creation order.
func (p Paths) Subdirectories() []string {
	return []string{p.Markdown(), p.Output(), p.Templates()}
}

// Relative strips the root prefix from path for display. Paths outside
// the root are returned unchanged.
func (p Paths) Relative(path string) string {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
