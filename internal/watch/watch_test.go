package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	root := t.TempDir()
	md := filepath.Join(root, "md")
	site := filepath.Join(root, "site.yaml")

	w := &Watcher{Dirs: []string{md}, Files: []string{site}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write in watched dir", fsnotify.Event{Name: filepath.Join(md, "a.md"), Op: fsnotify.Write}, true},
		{"create in watched dir", fsnotify.Event{Name: filepath.Join(md, "b.md"), Op: fsnotify.Create}, true},
		{"remove in watched dir", fsnotify.Event{Name: filepath.Join(md, "b.md"), Op: fsnotify.Remove}, true},
		{"chmod ignored", fsnotify.Event{Name: filepath.Join(md, "a.md"), Op: fsnotify.Chmod}, false},
		{"watched file", fsnotify.Event{Name: site, Op: fsnotify.Write}, true},
		{"sibling of watched file", fsnotify.Event{Name: filepath.Join(root, "other.txt"), Op: fsnotify.Write}, false},
		{"output directory", fsnotify.Event{Name: filepath.Join(root, "out"), Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestRun_CallsOnChange(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := &Watcher{
		Dirs:     []string{dir},
		Debounce: 20 * time.Millisecond,
		OnChange: func() { calls.Add(1) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	target := filepath.Join(dir, "post.md")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(target, []byte(time.Now().String()), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	w := &Watcher{Dirs: []string{filepath.Join(t.TempDir(), "nope")}}

	err := w.Run(context.Background())
	assert.Error(t, err)
}
