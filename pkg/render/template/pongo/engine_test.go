package pongo

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSource(t *testing.T) {
	_, err := New()
	require.Error(t, err)
}

func TestEngine_RenderTemplateFromBaseDir(t *testing.T) {
	engine, err := New(WithBaseDir("testdata"), WithGlobalData(map[string]any{"site": "Careers"}))
	require.NoError(t, err)

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "  Ada "})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada from Careers!", strings.TrimSpace(out))
}

func TestEngine_RenderTemplateFromFSWritesToOutputs(t *testing.T) {
	files := fstest.MapFS{
		"views/item.html": {Data: []byte(`<li>{{ label }}</li>`)},
	}
	engine, err := New(WithFS(files), WithExtension("html"))
	require.NoError(t, err)

	var buf bytes.Buffer
	out, err := engine.Render("views/item", struct {
		Label string `json:"label"`
	}{Label: "Email"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "<li>Email</li>", out)
	assert.Equal(t, out, buf.String())
}

func TestEngine_RenderInlineContent(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	require.NoError(t, err)

	out, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, "1-x", out)
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	require.NoError(t, err)

	_, err = engine.RenderTemplate("nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tpl")
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	require.NoError(t, err)

	require.NoError(t, engine.RegisterFilter("shout_test", func(in any, _ any) (any, error) {
		return strings.ToUpper(in.(string)), nil
	}))
	require.Error(t, engine.RegisterFilter("shout_test", func(in any, _ any) (any, error) { return in, nil }))

	out, err := engine.RenderString(`{{ word|shout_test }}`, map[string]any{"word": "hired"})
	require.NoError(t, err)
	assert.Equal(t, "HIRED", out)
}
