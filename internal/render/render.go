// Package render executes user-editable templates.
//
// Templates are read from disk on every call so that hand edits take
// effect on the next build without restarting anything.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	ferrors "github.com/carlwiedemann/foresite/internal/errors"
)

// File renders the template at path against vars. Each entry of vars is
// available as {{ .name }}; extra entries are ignored.
func File(path string, vars map[string]any) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ferrors.ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}

	return String(filepath.Base(path), string(content), vars)
}

// String renders template text under the given name.
func String(name, text string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		if isUndefined(err) {
			return "", fmt.Errorf("%w: %s: %w", ferrors.ErrUndefinedVariable, name, err)
		}
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// isUndefined reports whether an execution error came from a lookup of a
// name that was never supplied.
func isUndefined(err error) bool {
	var execErr template.ExecError
	if !errors.As(err, &execErr) {
		return false
	}
	msg := execErr.Err.Error()
	return strings.Contains(msg, "map has no entry for key") ||
		strings.Contains(msg, "can't evaluate field")
}
