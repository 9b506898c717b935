// Package render turns the structural result of an expansion into source
// text for one target language.
package render

import (
	"strings"

	"github.com/tinoworks/tinomacro/internal/config"
)

// Dialect renders generated syntax. Implementations must be pure: the same
// input always yields byte-identical text.
type Dialect interface {
	// Name identifies the dialect on the command line and the plugin wire.
	Name() string

	// Equality renders the extension giving typeName an equality operator.
	// comparisons are member names in comparison order and may be empty.
	Equality(typeName string, comparisons []string) string

	// Resource renders a localized resource construction. key and value are
	// the literal sources, exactly as written.
	Resource(key, value string, bundle config.Bundle) string

	// Text renders a localized text construction around key.
	Text(key string) string

	// LineComment renders a single line comment starting with the tag.
	LineComment(content string) string

	// BlockComment renders a block comment whose first line is the tag.
	BlockComment(content string) string
}

// New returns the dialect registered under name, or nil.
func New(name string, cfg config.Configuration) Dialect {
	switch name {
	case "", SwiftName:
		return NewSwift(cfg)
	case GoName:
		return NewGo(cfg)
	default:
		return nil
	}
}

// Names lists the dialects New knows.
func Names() []string {
	return []string{SwiftName, GoName}
}

// conjunction joins per-member comparisons left to right with &&, or returns
// the literal true when there is nothing to compare.
func conjunction(comparisons []string) string {
	if len(comparisons) == 0 {
		return "true"
	}
	tests := make([]string, len(comparisons))
	for i, name := range comparisons {
		tests[i] = "lhs." + name + " == rhs." + name
	}
	return strings.Join(tests, " && ")
}

// comments renders the `///` line and `/** */` block documentation comments
// of Swift.
type comments struct {
	tag string
}

func (c comments) LineComment(content string) string {
	return "/// " + c.tag + ": " + content
}

func (c comments) BlockComment(content string) string {
	return "/** " + c.tag + ":\n" + content + "\n*/"
}
