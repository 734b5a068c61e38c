package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading with id",
			input:    "# Hello World\n",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:     "paragraph",
			input:    "Some *text*.\n",
			contains: []string{"<p>Some <em>text</em>.</p>"},
		},
		{
			name:     "gfm strikethrough",
			input:    "~~gone~~\n",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "raw html kept",
			input:    "<div class=\"x\">hi</div>\n",
			contains: []string{`<div class="x">hi</div>`},
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert([]byte(tt.input))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestConvert_Empty(t *testing.T) {
	got, err := New().Convert(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
