package post

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/carlwiedemann/foresite/internal/model"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
	"github.com/carlwiedemann/foresite/internal/render"
	"github.com/carlwiedemann/foresite/internal/scaffold"
)

// DateLayout formats post dates as YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Touch creates a markdown stub named after now and title, rendered from
// the post skeleton template. An existing file of the same name is left
// as it is. The returned string is the status message.
func Touch(p paths.Paths, title string, now time.Time) (string, error) {
	if err := scaffold.Check(p); err != nil {
		return "", err
	}

	if Slugify(title) == "" {
		return "", fmt.Errorf("title %q contains no letters to build a filename from", title)
	}

	date := now.Format(DateLayout)
	path := p.MarkdownFile(Filename(date, title))
	rel := p.Relative(path)

	if _, err := os.Stat(path); err == nil {
		return fmt.Sprintf("File %s already exists", rel), nil
	}

	content, err := render.File(p.TemplateFile(paths.FilePost), model.PostVars(title, date))
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Sprintf("File %s already exists", rel), nil
		}
		return "", fmt.Errorf("failed to create file '%s': %w", rel, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("failed to write file '%s': %w", rel, err)
	}

	output.Debug("created post", "path", path, "title", title)
	return fmt.Sprintf("Created %s", rel), nil
}
