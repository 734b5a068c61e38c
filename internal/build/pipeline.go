// Package build renders a foresite project's markdown posts and index page
// into its output directory.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carlwiedemann/foresite/internal/config"
	ferrors "github.com/carlwiedemann/foresite/internal/errors"
	"github.com/carlwiedemann/foresite/internal/markdown"
	"github.com/carlwiedemann/foresite/internal/model"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
	"github.com/carlwiedemann/foresite/internal/post"
	"github.com/carlwiedemann/foresite/internal/render"
	"github.com/carlwiedemann/foresite/internal/scaffold"
)

// Converter turns a markdown body into HTML.
type Converter interface {
	Convert(src []byte) (string, error)
}

// Builder runs full builds of one project. It holds no state between runs.
type Builder struct {
	Paths paths.Paths

	// Site is exposed to templates as `site`. Nil loads site.yaml on each run.
	Site config.Site

	// Converter defaults to the goldmark converter.
	Converter Converter

	// Notify, if set, receives each status message as it happens.
	Notify func(string)
}

// New returns a Builder for the project at p.
func New(p paths.Paths) *Builder {
	return &Builder{Paths: p}
}

// Run wipes the output directory and regenerates every post plus the
// index. Errors abort the build and leave partial output on disk.
func (b *Builder) Run() ([]string, error) {
	p := b.Paths

	if err := scaffold.Check(p); err != nil {
		return nil, err
	}

	site := b.Site
	if site == nil {
		loaded, err := config.LoadSite(p.SiteFile())
		if err != nil {
			return nil, err
		}
		site = loaded
	} else if _, ok := site["title"]; !ok {
		site = copySite(site)
		site["title"] = site.Title()
	}

	conv := b.Converter
	if conv == nil {
		conv = markdown.New()
	}

	if err := wipe(p.Output()); err != nil {
		return nil, err
	}

	sources, err := Sources(p)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ferrors.NoSourceFiles()
	}
	output.Debug("building posts", "count", len(sources), "root", p.Root)

	status := output.NewStatus(b.Notify)
	links := make([]model.Link, 0, len(sources))

	for _, source := range sources {
		link, err := b.renderPost(source, site, conv)
		if err != nil {
			return status.Lines, err
		}
		status.Emitf("Created %s", p.Relative(p.OutputFile(link.Href)))
		links = append(links, link)
	}

	indexPath := p.OutputFile(paths.FileIndex)
	if err := b.renderIndex(indexPath, links, site); err != nil {
		return status.Lines, err
	}
	status.Emitf("Created %s", p.Relative(indexPath))

	return status.Lines, nil
}

// Sources lists the markdown files directly inside the markdown directory,
// in lexical order.
func Sources(p paths.Paths) ([]string, error) {
	entries, err := os.ReadDir(p.Markdown())
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown directory '%s': %w", p.Relative(p.Markdown()), err)
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		sources = append(sources, p.MarkdownFile(e.Name()))
	}
	return sources, nil
}

// OutputName maps a markdown filename to its HTML filename.
func OutputName(markdownName string) string {
	return strings.TrimSuffix(filepath.Base(markdownName), ".md") + ".html"
}

func (b *Builder) renderPost(source string, site config.Site, conv Converter) (model.Link, error) {
	p := b.Paths
	name := filepath.Base(source)

	raw, err := os.ReadFile(source)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to read file '%s': %w", p.Relative(source), err)
	}

	fm, body := post.SplitFrontMatter(raw)

	meta, err := post.Extract(name, string(body))
	if fm.Title != "" {
		meta.Title = fm.Title
	} else if errors.Is(err, ferrors.ErrMissingTitle) {
		meta.Title = post.FallbackTitle(name)
		output.Warn("no title heading found, using filename", "path", p.Relative(source), "title", meta.Title)
	} else if err != nil {
		return model.Link{}, err
	}
	if meta.Date == "" {
		output.Debug("no date in filename", "path", p.Relative(source))
	}

	html, err := conv.Convert(body)
	if err != nil {
		return model.Link{}, fmt.Errorf("%s: %w", p.Relative(source), err)
	}

	page, err := render.File(p.TemplateFile(paths.FileWrapper), model.PageVars(meta.Title, html, site))
	if err != nil {
		return model.Link{}, err
	}

	href := OutputName(name)
	target := p.OutputFile(href)
	if err := os.WriteFile(target, []byte(page), 0o644); err != nil {
		return model.Link{}, fmt.Errorf("failed to write file '%s': %w", p.Relative(target), err)
	}

	return model.Link{Href: href, Title: meta.Title, Date: meta.Date}, nil
}

func (b *Builder) renderIndex(target string, links []model.Link, site config.Site) error {
	p := b.Paths

	list, err := render.File(p.TemplateFile(paths.FileList), model.ListVars(model.SortLinks(links), site))
	if err != nil {
		return err
	}

	page, err := render.File(p.TemplateFile(paths.FileWrapper), model.PageVars(site.Title(), list, site))
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", p.Relative(target), err)
	}
	return nil
}

// wipe removes every entry of dir, keeping dir itself.
func wipe(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory '%s': %w", dir, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove '%s': %w", e.Name(), err)
		}
	}
	output.Debug("cleaned output directory", "path", dir, "removed", len(entries))
	return nil
}

func copySite(site config.Site) config.Site {
	out := make(config.Site, len(site)+1)
	for k, v := range site {
		out[k] = v
	}
	return out
}
