package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briantilley/xmlgrep/tree"
)

func init() {
	color.NoColor = true
}

func TestFormatMatchesEmpty(t *testing.T) {
	out, err := FormatMatches("doc.xml", nil, false, 2)
	require.NoError(t, err)
	assert.Equal(t, "no matches in doc.xml\n", out)
}

func TestFormatMatchesCompact(t *testing.T) {
	matches := []*tree.Node{
		tree.New("a").Append(tree.New("b")),
		tree.New("a"),
	}

	out, err := FormatMatches("doc.xml", matches, false, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "match 1 of 2 in doc.xml\n<a><b/></a>\n")
	assert.Contains(t, out, "match 2 of 2 in doc.xml\n<a/>\n")
}

func TestFormatMatchesPretty(t *testing.T) {
	matches := []*tree.Node{tree.New("a").Append(tree.New("b"))}

	out, err := FormatMatches("doc.xml", matches, true, 4)
	require.NoError(t, err)
	assert.Contains(t, out, "<a>\n    <b/>\n</a>")
}

func TestFormatExists(t *testing.T) {
	assert.Equal(t, "true (doc.xml)\n", FormatExists("doc.xml", true))
	assert.Equal(t, "false (doc.xml)\n", FormatExists("doc.xml", false))
}
