package annotation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tinoworks/tinomacro/internal/syntax"
)

const tripleQuote = `"""`

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) next() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

func (p *parser) skipHorizontalSpace() {
	for !p.eof() {
		if c := p.src[p.pos]; c != ' ' && c != '\t' && c != '\r' {
			return
		}
		p.pos++
	}
}

func (p *parser) skipSpace() {
	for !p.eof() {
		if c := p.src[p.pos]; c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return
		}
		p.pos++
	}
}

// skipLine moves past the next newline, or to the end of the text.
func (p *parser) skipLine() {
	if i := strings.IndexByte(p.src[p.pos:], '\n'); i >= 0 {
		p.pos += i + 1
		return
	}
	p.pos = len(p.src)
}

func (p *parser) errorf(format string, args ...any) error {
	line := strings.Count(p.src[:p.pos], "\n")
	col := p.pos - (strings.LastIndexByte(p.src[:p.pos], '\n') + 1)
	return &SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (p *parser) ident() string {
	start := p.pos
	if !isIdentStart(p.peek()) {
		return ""
	}
	for !p.eof() && isIdentContinue(p.peek()) {
		p.next()
	}
	return p.src[start:p.pos]
}

// annotation parses `@Name` or `#Name` with its optional argument clause.
// It reports false, leaving the position untouched, when the text at the
// current position is not an annotation.
func (p *parser) annotation() (Annotation, bool) {
	start := p.pos
	sigil := p.peek()
	if sigil != rune(AttachedSigil) && sigil != rune(FreestandingSigil) {
		return Annotation{}, false
	}
	p.next()

	name := p.ident()
	if name == "" {
		p.pos = start
		return Annotation{}, false
	}

	// `@Name:` starts prose such as a generated `// @Metadata: text` line
	if p.peek() == ':' {
		p.pos = start
		return Annotation{}, false
	}

	a := Annotation{
		Sigil: byte(sigil),
		Name:  name,
		Line:  strings.Count(p.src[:start], "\n"),
	}
	if p.peek() != '(' {
		return a, true
	}

	a.HasArguments = true
	open := p.pos
	args, err := p.arguments()
	if err != nil {
		a.Err = err
		return a, true
	}
	a.Arguments = args
	a.ArgumentText = strings.TrimSpace(p.src[open+1 : p.pos-1])
	return a, true
}

// arguments parses a parenthesized, comma separated argument list. A
// trailing comma is accepted.
func (p *parser) arguments() ([]syntax.Argument, error) {
	p.next() // (
	args := []syntax.Argument{}

	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated argument list")
		}
		if p.peek() == ')' {
			p.next()
			return args, nil
		}

		arg, err := p.argument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.next()
		case ')':
			p.next()
			return args, nil
		default:
			if p.eof() {
				return nil, p.errorf("unterminated argument list")
			}
			return nil, p.errorf("expected ',' or ')', found %q", p.peek())
		}
	}
}

func (p *parser) argument() (syntax.Argument, error) {
	start := p.pos
	if label := p.ident(); label != "" {
		p.skipHorizontalSpace()
		if p.peek() == ':' && !p.hasPrefix("::") {
			p.next()
			p.skipSpace()
			value, err := p.expr()
			if err != nil {
				return syntax.Argument{}, err
			}
			return syntax.Argument{Label: label, Value: value}, nil
		}
		p.pos = start
	}

	value, err := p.expr()
	if err != nil {
		return syntax.Argument{}, err
	}
	return syntax.Argument{Value: value}, nil
}

// expr parses one argument expression. Expressions the model does not break
// down (operators, closures, collections) are kept as raw text up to the next
// top level ',' or ')'.
func (p *parser) expr() (syntax.Expr, error) {
	start := p.pos

	e, err := p.postfix()
	if err != nil {
		return nil, err
	}

	p.skipHorizontalSpace()
	if e != nil && (p.eof() || p.peek() == ',' || p.peek() == ')' || p.peek() == '\n') {
		return e, nil
	}

	p.pos = start
	return p.raw()
}

func (p *parser) postfix() (syntax.Expr, error) {
	start := p.pos
	e, err := p.primary()
	if err != nil || e == nil {
		return e, err
	}

	for {
		switch {
		case p.peek() == '.':
			save := p.pos
			p.next()
			member := p.ident()
			if member == "" {
				p.pos = save
				return e, nil
			}
			e = &syntax.MemberAccess{Base: e, Member: member, Raw: p.src[start:p.pos]}
		case p.peek() == '(':
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			e = &syntax.CallExpr{Callee: e, Arguments: args, Raw: p.src[start:p.pos]}
		default:
			return e, nil
		}
	}
}

// primary returns nil without an error when the expression must be read raw.
func (p *parser) primary() (syntax.Expr, error) {
	r := p.peek()
	switch {
	case r == '"', r == '#' && p.extendedDelimiter():
		return p.stringLiteral()
	case r == '.':
		p.next()
		member := p.ident()
		if member == "" {
			return nil, nil
		}
		return &syntax.MemberAccess{Member: member}, nil
	case isIdentStart(r):
		return syntax.Ident(p.ident()), nil
	case unicode.IsDigit(r):
		start := p.pos
		for !p.eof() && (isIdentContinue(p.peek()) || p.peek() == '.') {
			p.next()
		}
		return &syntax.Other{Text: p.src[start:p.pos]}, nil
	default:
		return nil, nil
	}
}

// raw reads balanced text up to the next top level ',' or ')'.
func (p *parser) raw() (syntax.Expr, error) {
	start := p.pos
	depth := 0

	for !p.eof() {
		switch r := p.peek(); r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return p.rawText(start)
			}
			depth--
		case ',':
			if depth == 0 {
				return p.rawText(start)
			}
		case '"':
			if _, err := p.stringLiteral(); err != nil {
				return nil, err
			}
			continue
		}
		p.next()
	}

	if depth > 0 {
		return nil, p.errorf("unbalanced expression")
	}
	return p.rawText(start)
}

func (p *parser) rawText(start int) (syntax.Expr, error) {
	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return nil, p.errorf("expected an expression")
	}
	return &syntax.Other{Text: text}, nil
}
