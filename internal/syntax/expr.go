package syntax

import "strings"

// Expr is the closed set of expression nodes.
//
// Nodes read from source keep the trimmed text they were read from in Raw,
// and render back to it. Nodes built in code leave Raw empty and render from
// their parts.
type Expr interface {
	source(b *strings.Builder)
	raw() string
	exprNode()
}

// SegmentKind tags a string literal segment.
type SegmentKind uint8

const (
	// TextSegment is raw literal text, kept exactly as written.
	TextSegment SegmentKind = iota

	// InterpolationSegment is an interpolation span such as `\(name)`. Its
	// text is the original source of the span and is never evaluated.
	InterpolationSegment
)

// Segment is one piece of a string literal.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Text returns a raw text segment.
func Text(s string) Segment {
	return Segment{Kind: TextSegment, Text: s}
}

// Interpolation returns an opaque interpolation segment.
func Interpolation(src string) Segment {
	return Segment{Kind: InterpolationSegment, Text: src}
}

// StringLiteral is a string literal. Multiline literals are delimited by
// triple quotes, and their content does not include the newlines that follow
// the opening delimiter or precede the closing one.
type StringLiteral struct {
	Segments  []Segment
	Multiline bool
	Raw       string
}

// Content concatenates every segment. Interpolation spans contribute their
// source text.
func (s *StringLiteral) Content() string {
	b := strings.Builder{}
	for _, seg := range s.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Identifier is a bare name.
type Identifier struct {
	Name string
}

// MemberAccess is `base.member`. Base is nil for the implicit form `.member`.
type MemberAccess struct {
	Base   Expr
	Member string
	Raw    string
}

// CallExpr is `callee(arguments)`.
type CallExpr struct {
	Callee    Expr
	Arguments []Argument
	Raw       string
}

// Other is any expression the model does not break down: numbers, closures,
// operators. Text is its trimmed source.
type Other struct {
	Text string
}

func (*StringLiteral) exprNode() {}
func (*Identifier) exprNode()    {}
func (*MemberAccess) exprNode()  {}
func (*CallExpr) exprNode()      {}
func (*Other) exprNode()         {}

func (s *StringLiteral) source(b *strings.Builder) {
	if s.Multiline {
		b.WriteString("\"\"\"\n")
		b.WriteString(s.Content())
		b.WriteString("\n\"\"\"")
		return
	}
	b.WriteByte('"')
	b.WriteString(s.Content())
	b.WriteByte('"')
}

func (i *Identifier) source(b *strings.Builder) {
	b.WriteString(i.Name)
}

func (m *MemberAccess) source(b *strings.Builder) {
	b.WriteString(Source(m.Base))
	b.WriteByte('.')
	b.WriteString(m.Member)
}

func (c *CallExpr) source(b *strings.Builder) {
	b.WriteString(Source(c.Callee))
	b.WriteByte('(')
	b.WriteString(ArgumentsSource(c.Arguments))
	b.WriteByte(')')
}

func (o *Other) source(b *strings.Builder) {
	b.WriteString(o.Text)
}

func (s *StringLiteral) raw() string { return s.Raw }
func (i *Identifier) raw() string    { return i.Name }
func (m *MemberAccess) raw() string  { return m.Raw }
func (c *CallExpr) raw() string      { return c.Raw }
func (o *Other) raw() string         { return o.Text }

// Source returns the trimmed source text of an expression. A nil expression
// renders as the empty string.
func Source(e Expr) string {
	if e == nil {
		return ""
	}
	if raw := e.raw(); raw != "" {
		return raw
	}
	b := strings.Builder{}
	e.source(&b)
	return b.String()
}

// IsStringLiteral reports whether e is a string literal.
func IsStringLiteral(e Expr) bool {
	_, ok := e.(*StringLiteral)
	return ok
}

// Str builds a single line literal made of one text segment.
func Str(s string) *StringLiteral {
	return &StringLiteral{Segments: []Segment{Text(s)}}
}

// Ident builds an identifier expression.
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}
