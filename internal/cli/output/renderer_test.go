package output

import (
	"bytes"
	"testing"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty piped", "", false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit yaml", ModeYAML, false, ModeYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithTTY(&buf, &buf, ModeMarkdown, false)
	r.Header(2, "Summary")
	assert.Equal(t, "## Summary\n\n", buf.String())

	buf.Reset()
	r = NewRendererWithTTY(&buf, &buf, ModeText, false)
	r.Header(1, "Summary")
	assert.Equal(t, "Summary\n\n", buf.String(), "no escape codes without a terminal")
}

func TestEncode(t *testing.T) {
	v := map[string]int{"nodes": 3}

	var buf bytes.Buffer
	r := NewRendererWithTTY(&buf, &buf, ModeJSON, false)
	ok, err := r.Encode(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"nodes": 3}`, buf.String())

	buf.Reset()
	r = NewRendererWithTTY(&buf, &buf, ModeYAML, false)
	ok, err = r.Encode(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nodes: 3\n", buf.String())

	buf.Reset()
	r = NewRendererWithTTY(&buf, &buf, ModeText, false)
	ok, err = r.Encode(v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, buf.String())
}

func TestWarningGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, ModeText, false)
	r.Warning("careful")

	assert.Empty(t, out.String())
	assert.Equal(t, "! careful\n", errOut.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **Nodes:** 12", FormatKeyValue("Nodes", "12"))
}

func TestStyles_GroupPlainWithoutTTY(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, false)
	assert.Equal(t, "main", s.Group(callgraph.GroupEntry).Render("main"))
	assert.Equal(t, "x", s.Group(callgraph.Group(99)).Render("x"))
}
