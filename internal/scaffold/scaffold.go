// Package scaffold creates the directory structure and default templates
// of a foresite project.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	ferrors "github.com/carlwiedemann/foresite/internal/errors"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
)

//go:embed skeleton/post.md.tmpl skeleton/wrapper.html.tmpl skeleton/_list.html.tmpl
var skeletonFS embed.FS

// TemplateNames lists the default templates copied by Init, in copy order.
func TemplateNames() []string {
	return []string{paths.FilePost, paths.FileWrapper, paths.FileList}
}

// DefaultTemplate returns the bundled contents of a named template.
func DefaultTemplate(name string) ([]byte, error) {
	return fs.ReadFile(skeletonFS, "skeleton/"+name)
}

// Init creates the project subdirectories and copies default templates
// into the template directory. Existing directories and files are left
// untouched. A failure on one item does not stop the others; failures are
// logged as they happen and reported together at the end.
func Init(p paths.Paths, notify func(string)) ([]string, error) {
	info, err := os.Stat(p.Root)
	if err != nil || !info.IsDir() {
		return nil, ferrors.DirectoryNotFound(p.Root)
	}
	if !writable(p.Root) {
		return nil, ferrors.PermissionDenied(p.Root)
	}

	status := output.NewStatus(notify)
	var errs []error

	for _, dir := range p.Subdirectories() {
		if err := touchDirectory(p, dir, status); err != nil {
			output.Warn("could not create directory", "path", p.Relative(dir), "error", err)
			errs = append(errs, err)
		}
	}

	for _, name := range TemplateNames() {
		if err := copyTemplate(p, name, status); err != nil {
			output.Warn("could not copy template", "name", name, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return status.Lines, ferrors.NewExitError(ferrors.Join(errs...), "Could not initialize %d item(s) in %s", len(errs), p.Root)
	}
	return status.Lines, nil
}

// Check verifies that every subdirectory Init creates is present.
func Check(p paths.Paths) error {
	for _, dir := range p.Subdirectories() {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			output.Debug("missing subdirectory", "path", dir)
			return ferrors.MissingSubdirectories()
		}
	}
	return nil
}

func touchDirectory(p paths.Paths, dir string, status *output.Status) error {
	rel := p.Relative(dir)

	err := os.Mkdir(dir, 0o755)
	switch {
	case err == nil:
		status.Emitf("Created %s/", rel)
		return nil
	case errors.Is(err, fs.ErrExist):
		status.Emitf("%s/ already exists", rel)
		return nil
	default:
		return fmt.Errorf("failed to create directory '%s': %w", rel, err)
	}
}

func copyTemplate(p paths.Paths, name string, status *output.Status) error {
	target := p.TemplateFile(name)
	rel := p.Relative(target)

	content, err := DefaultTemplate(name)
	if err != nil {
		return fmt.Errorf("reading default template %s: %w", name, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			status.Emitf("%s already exists", rel)
			return nil
		}
		return fmt.Errorf("failed to create file '%s': %w", rel, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", rel, err)
	}

	status.Emitf("Created %s", rel)
	return nil
}

// writable probes dir by creating and removing a temporary file.
func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".foresite-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
