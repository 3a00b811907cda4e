package xmlio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briantilley/xmlgrep/tree"
)

func TestParseString(t *testing.T) {
	n, err := ParseString(`<div id="gallery"><img class="product-img"/>caption<b/></div>`)
	require.NoError(t, err)

	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, map[string]string{"id": "gallery"}, n.Attrs)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "img", n.Children[0].Tag)
	assert.Equal(t, "product-img", n.Children[0].Attrs["class"])
	assert.Equal(t, "b", n.Children[1].Tag)
}

func TestParseStringMalformed(t *testing.T) {
	_, err := ParseString(`<div><unclosed></div>`)
	require.Error(t, err)
}

func TestParseStringEmpty(t *testing.T) {
	_, err := ParseString(``)
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestParseText(t *testing.T) {
	n, err := ParseString(`<p>  hello  </p>`)
	require.NoError(t, err)
	assert.Equal(t, "hello", n.Text)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<a><b/></a>`), 0o644))

	// an argument containing a dot is a file path
	fromFile, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a", fromFile.Tag)

	// anything else is inline markup
	inline, err := Load(`<a><b/></a>`)
	require.NoError(t, err)
	assert.Equal(t, fromFile, inline)

	_, err = Load(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
}

func TestParseReader(t *testing.T) {
	n, err := Parse(strings.NewReader(`<a><b/></a>`))
	require.NoError(t, err)
	assert.Equal(t, "a", n.Tag)
}

func TestMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"leaf", `<a/>`},
		{"attrs and children", `<div id="gallery"><q/><div id="browse"><h1/></div></div>`},
		{"text", `<p>hello</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseString(tt.markup)
			require.NoError(t, err)

			out, err := Marshal(n)
			require.NoError(t, err)

			back, err := ParseString(out)
			require.NoError(t, err)
			assert.Equal(t, n, back)
		})
	}
}

func TestMarshalAttrOrderStable(t *testing.T) {
	n := tree.New("a").SetAttr("z", "1").SetAttr("b", "2").SetAttr("m", "3")

	first, err := Marshal(n)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Contains(t, first, `b="2" m="3" z="1"`)
}

func TestMarshalIndent(t *testing.T) {
	n, err := ParseString(`<a><b><c/></b></a>`)
	require.NoError(t, err)

	out, err := MarshalIndent(n, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  <b>")
	assert.Contains(t, out, "\n    <c/>")

	wide, err := MarshalIndent(n, 4)
	require.NoError(t, err)
	assert.Contains(t, wide, "\n    <b>")
}
