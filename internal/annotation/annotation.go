// Package annotation reads annotation text such as `@Metadata("Home")` or
// `#L10n("home.title", "ホーム", bundle: .main)` into the syntax model.
//
// An annotation starts a line with `@` (attached annotations) or `#`
// (freestanding calls) followed by its name. An optional argument clause
// may span several lines when it contains a multiline string literal.
package annotation

import (
	"fmt"

	"github.com/tinoworks/tinomacro/internal/syntax"
)

const (
	AttachedSigil     byte = '@'
	FreestandingSigil byte = '#'
)

// Annotation is one parsed annotation.
type Annotation struct {
	Sigil        byte
	Name         string
	HasArguments bool
	Arguments    []syntax.Argument
	// ArgumentText is the trimmed text between the parentheses.
	ArgumentText string

	// Line is the zero based line of the text the annotation starts on.
	Line int
	// Err is set when the argument clause could not be parsed. Name and
	// Sigil are still valid.
	Err error
}

// Attribute converts an attached annotation to a syntax attribute.
func (a Annotation) Attribute(id syntax.NodeID) syntax.Attribute {
	return syntax.Attribute{
		ID:           id,
		Name:         a.Name,
		HasArguments: a.HasArguments,
		Arguments:    a.Arguments,
		ArgumentText: a.ArgumentText,
	}
}

// Call converts a freestanding annotation to a syntax call.
func (a Annotation) Call(id syntax.NodeID) *syntax.Call {
	return &syntax.Call{
		ID:        id,
		Name:      a.Name,
		Arguments: a.Arguments,
	}
}

func (a Annotation) String() string {
	s := string(a.Sigil) + a.Name
	if a.HasArguments {
		text := a.ArgumentText
		if text == "" {
			text = syntax.ArgumentsSource(a.Arguments)
		}
		s += "(" + text + ")"
	}
	return s
}

// SyntaxError locates a parse failure inside the annotation text.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Column+1, e.Msg)
}

// Parse returns every annotation found at the start of a line of text, in
// order. Lines that do not start with an annotation are ignored.
func Parse(text string) []Annotation {
	p := &parser{src: text}
	var out []Annotation

	for !p.eof() {
		p.skipHorizontalSpace()
		start := p.pos
		if a, ok := p.annotation(); ok {
			out = append(out, a)
			if a.Err != nil {
				// resume on the line after the annotation started
				p.pos = start
			}
		}
		p.skipLine()
	}

	return out
}

// ParseExpr parses text as exactly one expression.
func ParseExpr(text string) (syntax.Expr, error) {
	p := &parser{src: text}
	p.skipSpace()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after expression", p.peek())
	}
	return e, nil
}

// ParseOne parses text that must hold a single annotation, such as
// `@SkipEquatable` or `#LocalizedText("key")`.
func ParseOne(text string) (Annotation, error) {
	all := Parse(text)
	if len(all) != 1 {
		return Annotation{}, fmt.Errorf("expected one annotation, found %d", len(all))
	}
	if all[0].Err != nil {
		return all[0], all[0].Err
	}
	return all[0], nil
}
