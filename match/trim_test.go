package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briantilley/xmlgrep/tree"
)

func TestTrimGallery(t *testing.T) {
	source := mustParse(t,
		`<div id="gallery"><q/><w/><e/><div id="browse"><r/><h1><l/></h1><t/></div></div>`)
	p := mustCompile(t, `<div id="gallery"><div id="browse"><h1/></div></div>`)

	trimmed, err := p.Trim(source)
	require.NoError(t, err)

	want := tree.New("div").SetAttr("id", "gallery").Append(
		tree.New("div").SetAttr("id", "browse").Append(
			tree.New("h1"),
		),
	)
	assert.Equal(t, want, trimmed)
}

func TestTrimMismatch(t *testing.T) {
	p := mustCompile(t, `<a><b/></a>`)
	_, err := p.Trim(mustParse(t, `<a><c/></a>`))
	require.ErrorIs(t, err, ErrMismatch)
}

func TestTrimStillMatches(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		pattern string
	}{
		{"leaf", `<a x="1"/>`, `<a/>`},
		{"gaps", `<a><x/><b/><y/><c/><z/></a>`, `<a><b/><c/></a>`},
		{"nested", `<a><b><k/><c/></b><d/></a>`, `<a><b><c/></b></a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mustParse(t, tt.source)
			p := mustCompile(t, tt.pattern)
			require.True(t, p.Match(source))

			trimmed, err := p.Trim(source)
			require.NoError(t, err)

			// a trimmed match still matches, and is no larger than the
			// subtree it came from
			assert.True(t, p.Match(trimmed))
			assert.LessOrEqual(t, trimmed.Size(), source.Size())
		})
	}
}

func TestTrimIsIndependentCopy(t *testing.T) {
	source := mustParse(t, `<a k="v"><b/><c/></a>`)
	p := mustCompile(t, `<a><b/></a>`)

	trimmed, err := p.Trim(source)
	require.NoError(t, err)
	require.Len(t, trimmed.Children, 1)
	assert.Equal(t, "b", trimmed.Children[0].Tag)

	// mutating the trimmed copy leaves the source untouched
	trimmed.Attrs["k"] = "changed"
	trimmed.Children[0].Tag = "z"
	assert.Equal(t, "v", source.Attrs["k"])
	assert.Equal(t, "b", source.Children[0].Tag)
}

func TestTrimPreservesText(t *testing.T) {
	source := mustParse(t, `<a><b>hello</b><c/></a>`)
	p := mustCompile(t, `<a><b/></a>`)

	trimmed, err := p.Trim(source)
	require.NoError(t, err)
	assert.Equal(t, "hello", trimmed.Children[0].Text)
}

// Trimming removes children but never reorders the survivors.
func TestTrimKeepsOrder(t *testing.T) {
	source := mustParse(t, `<a><x/><b/><y/><c/><b/></a>`)
	p := mustCompile(t, `<a><b/><c/></a>`)

	trimmed, err := p.Trim(source)
	require.NoError(t, err)
	require.Len(t, trimmed.Children, 2)
	assert.Equal(t, "b", trimmed.Children[0].Tag)
	assert.Equal(t, "c", trimmed.Children[1].Tag)
}
