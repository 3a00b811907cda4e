// Package formatter renders query results for human consumption.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/briantilley/xmlgrep/tree"
	"github.com/briantilley/xmlgrep/xmlio"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	ordStyle    = color.New(color.FgYellow, color.Bold)
	noneStyle   = color.New(color.FgRed, color.Bold)
)

// FormatMatches renders every match with a colored header and its
// serialized subtree. With pretty set, subtrees are indented by indent
// spaces per level; otherwise each match is one compact line, matching the
// round-trippable wire form.
func FormatMatches(name string, matches []*tree.Node, pretty bool, indent int) (string, error) {
	if len(matches) == 0 {
		return noneStyle.Sprint("no matches") + headerStyle.Sprintf(" in %s\n", name), nil
	}

	var b strings.Builder
	for i, m := range matches {
		b.WriteString(ordStyle.Sprintf("match %d of %d", i+1, len(matches)))
		b.WriteString(headerStyle.Sprintf(" in %s\n", name))

		body, err := serialize(m, pretty, indent)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimRight(body, "\n"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// FormatExists renders the outcome of an existence check.
func FormatExists(name string, found bool) string {
	if found {
		return ordStyle.Sprint("true") + headerStyle.Sprintf(" (%s)\n", name)
	}
	return noneStyle.Sprint("false") + headerStyle.Sprintf(" (%s)\n", name)
}

func serialize(n *tree.Node, pretty bool, indent int) (string, error) {
	if pretty {
		return xmlio.MarshalIndent(n, indent)
	}
	s, err := xmlio.Marshal(n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintln(s), nil
}
