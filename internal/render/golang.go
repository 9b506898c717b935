package render

import (
	"fmt"
	"strings"

	"github.com/tinoworks/tinomacro/internal/config"
)

const GoName = "go"

// Go renders generated syntax as Go source: methods instead of extensions,
// and calls into a runtime package instead of framework initializers.
type Go struct {
	comments
	pkg    string
	method string
}

func NewGo(cfg config.Configuration) *Go {
	return &Go{
		comments: comments{tag: cfg.Metadata.Tag},
		pkg:      cfg.Go.RuntimePackage,
		method:   cfg.Go.EqualMethod,
	}
}

func (g *Go) Name() string { return GoName }

// Equality renders a value receiver method so both T and *T satisfy an
// `Equal(T) bool` interface.
func (g *Go) Equality(typeName string, comparisons []string) string {
	return fmt.Sprintf(`// %[2]s reports whether lhs and rhs hold equal comparable fields.
func (lhs %[1]s) %[2]s(rhs %[1]s) bool {
	return %[3]s
}`, typeName, g.method, conjunction(comparisons))
}

func (g *Go) Resource(key, value string, bundle config.Bundle) string {
	return fmt.Sprintf("%[1]s.NewResource(%[2]s, %[1]s.Value(%[3]s), %[1]s.%[4]s)", g.pkg, key, value, g.bundleToken(bundle))
}

func (g *Go) Text(key string) string {
	return fmt.Sprintf("%[1]s.NewText(%[2]s, %[1]s.%[3]s)", g.pkg, key, g.bundleToken(config.BundleModule))
}

// LineComment renders a plain `//` line. gofmt rewrites `///` doc lines to
// `// /`.
func (g *Go) LineComment(content string) string {
	return "// " + g.tag + ": " + content
}

// bundleToken spells a bundle as an exported constant, BundleMain or
// BundleModule.
func (g *Go) bundleToken(b config.Bundle) string {
	s := string(b)
	if s == "" {
		return "Bundle"
	}
	return "Bundle" + strings.ToUpper(s[:1]) + s[1:]
}
