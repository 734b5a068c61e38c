package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FORESITE_ROOT", "/should/not/win")

	cfg, err := Load(Options{Root: dir, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FORESITE_ROOT", dir)
	t.Setenv("FORESITE_VERBOSE", "true")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.True(t, cfg.Verbose)
}

func TestLoad_WorkingDirectory(t *testing.T) {
	t.Setenv("FORESITE_ROOT", "")

	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, wd, cfg.Root)
	assert.False(t, cfg.Verbose)
}

func TestLoad_RelativeRootIsMadeAbsolute(t *testing.T) {
	cfg, err := Load(Options{Root: "some/relative"})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Root))
	assert.Equal(t, "relative", filepath.Base(cfg.Root))
}

func TestLoadSite(t *testing.T) {
	tests := []struct {
		name      string
		content   *string
		wantTitle string
		wantKey   string
		wantValue any
		wantErr   bool
	}{
		{
			name:      "missing file uses defaults",
			wantTitle: DefaultSiteTitle,
		},
		{
			name:      "title and extra keys",
			content:   strPtr("title: My Blog\nauthor: Carl\n"),
			wantTitle: "My Blog",
			wantKey:   "author",
			wantValue: "Carl",
		},
		{
			name:      "empty title falls back",
			content:   strPtr("title: \"\"\n"),
			wantTitle: DefaultSiteTitle,
		},
		{
			name:      "numeric title",
			content:   strPtr("title: 2024\n"),
			wantTitle: "2024",
		},
		{
			name:      "boolean title",
			content:   strPtr("title: yes\n"),
			wantTitle: "true",
		},
		{
			name:      "structured title falls back",
			content:   strPtr("title:\n  - a\n  - b\n"),
			wantTitle: DefaultSiteTitle,
		},
		{
			name:    "malformed yaml",
			content: strPtr("title: [unterminated\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "site.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(filename, []byte(*tt.content), 0o644))
			}

			site, err := LoadSite(filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, site.Title())
			assert.Equal(t, tt.wantTitle, site["title"])
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantValue, site[tt.wantKey])
			}
		})
	}
}

func strPtr(s string) *string { return &s }
