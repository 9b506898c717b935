package gosource

import (
	"go/token"
	"strings"

	"github.com/dave/dst"
	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/annotation"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
)

var emptyPosition token.Position

// commentText returns the text of the comments in decs, with the comment
// markers removed. A line comment loses `//` and one following space; a block
// comment loses its delimiters and keeps its lines.
func commentText(decs dst.Decorations) string {
	var lines []string
	for _, d := range decs {
		switch {
		case strings.HasPrefix(d, "//"):
			line := strings.TrimPrefix(d, "//")
			lines = append(lines, strings.TrimPrefix(line, " "))
		case strings.HasPrefix(d, "/*"):
			body := strings.TrimSuffix(strings.TrimPrefix(d, "/*"), "*/")
			lines = append(lines, strings.Split(body, "\n")...)
		}
	}
	return strings.Join(lines, "\n")
}

// annotations parses the annotations written in the comments of node.
// Malformed annotations are left out of the result, and reported when they
// name a rule.
func (m *Manager) annotations(state *PackageState, node dst.Node, decs ...dst.Decorations) []annotation.Annotation {
	var out []annotation.Annotation
	for _, d := range decs {
		for _, a := range annotation.Parse(commentText(d)) {
			if a.Err != nil {
				if _, ok := expansion.Lookup(a.Name); !ok {
					continue
				}
				id := m.register(state, node)
				m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "malformed annotation %c%s: %v", a.Sigil, a.Name, a.Err))
				continue
			}
			out = append(out, a)
		}
	}
	return out
}
