// Package watch triggers full rebuilds when project sources change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/carlwiedemann/foresite/internal/output"
)

// DefaultDebounce is how long the watcher waits after the last change
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange after changes inside Dirs or to any of Files
// settle. Calls to OnChange never overlap.
type Watcher struct {
	// Dirs are watched non-recursively.
	Dirs []string

	// Files are watched through their parent directory.
	Files []string

	Debounce time.Duration
	OnChange func()

	mu sync.Mutex
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.Dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	for _, f := range w.Files {
		if err := fw.Add(filepath.Dir(f)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", f, err)
		}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			output.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.fire)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			output.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	dir := filepath.Dir(event.Name)
	for _, d := range w.Dirs {
		if filepath.Clean(d) == dir {
			return true
		}
	}
	for _, f := range w.Files {
		if filepath.Clean(f) == filepath.Clean(event.Name) {
			return true
		}
	}
	return false
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.OnChange != nil {
		w.OnChange()
	}
}
