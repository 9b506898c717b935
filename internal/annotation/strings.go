package annotation

import (
	"strings"

	"github.com/tinoworks/tinomacro/internal/syntax"
)

// extendedDelimiter reports whether the text at the cursor opens a string
// literal wrapped in `#` delimiters, such as `#"k"#`.
func (p *parser) extendedDelimiter() bool {
	rest := strings.TrimLeft(p.src[p.pos:], "#")
	return len(rest) < len(p.src)-p.pos && strings.HasPrefix(rest, `"`)
}

// stringLiteral reads a single line or a multiline string literal, optionally
// wrapped in extended delimiters. Escape sequences are kept as written and
// interpolation spans are not evaluated.
func (p *parser) stringLiteral() (syntax.Expr, error) {
	begin := p.pos
	n := 0
	for p.pos+n < len(p.src) && p.src[p.pos+n] == '#' {
		n++
	}
	pounds := p.src[p.pos : p.pos+n]
	p.pos += n

	var lit *syntax.StringLiteral
	var err error
	if p.hasPrefix(tripleQuote) {
		lit, err = p.multilineLiteral(pounds)
	} else {
		lit, err = p.singleLineLiteral(pounds)
	}
	if err != nil {
		return nil, err
	}
	lit.Raw = p.src[begin:p.pos]
	return lit, nil
}

func (p *parser) singleLineLiteral(pounds string) (*syntax.StringLiteral, error) {
	p.next() // "
	start := p.pos
	closing := `"` + pounds
	escape := `\` + pounds

	for i := start; i < len(p.src); {
		rest := p.src[i:]
		switch {
		case rest[0] == '\n':
			p.pos = i
			return nil, p.errorf("unterminated string literal")
		case strings.HasPrefix(rest, escape+"("):
			end := interpolationEnd(p.src, i+len(escape)+1)
			if end < 0 {
				p.pos = i
				return nil, p.errorf("unterminated string interpolation")
			}
			i = end
		case strings.HasPrefix(rest, escape):
			i += len(escape) + 1
		case strings.HasPrefix(rest, closing):
			segments, err := p.segments(p.src[start:i], start, escape)
			if err != nil {
				return nil, err
			}
			p.pos = i + len(closing)
			return &syntax.StringLiteral{Segments: segments}, nil
		default:
			i++
		}
	}

	p.pos = len(p.src)
	return nil, p.errorf("unterminated string literal")
}

// multilineLiteral reads a `"""` literal. The opening delimiter ends its line,
// the closing delimiter starts its own line, and the indentation in front of
// the closing delimiter is removed from every content line.
func (p *parser) multilineLiteral(pounds string) (*syntax.StringLiteral, error) {
	p.pos += len(tripleQuote)
	p.skipHorizontalSpace()
	if p.peek() != '\n' {
		return nil, p.errorf("multiline string literal content must begin on a new line")
	}
	p.next()

	start := p.pos
	closing := tripleQuote + pounds
	var lines []string
	for !p.eof() {
		lineStart := p.pos
		p.skipLine()
		line := strings.TrimSuffix(strings.TrimSuffix(p.src[lineStart:p.pos], "\n"), "\r")

		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, closing) {
			lines = append(lines, line)
			continue
		}

		indent := line[:len(line)-len(trimmed)]
		for i := range lines {
			lines[i] = strings.TrimPrefix(lines[i], indent)
		}
		p.pos = lineStart + len(indent) + len(closing)

		segments, err := p.segments(strings.Join(lines, "\n"), start, `\`+pounds)
		if err != nil {
			return nil, err
		}
		return &syntax.StringLiteral{Segments: segments, Multiline: true}, nil
	}

	return nil, p.errorf("unterminated multiline string literal")
}

// segments splits literal content into text and interpolation segments.
// escape is `\` followed by the literal's pounds. offset is where the content
// starts in the source, for error positions.
func (p *parser) segments(content string, offset int, escape string) ([]syntax.Segment, error) {
	var segments []syntax.Segment
	text := strings.Builder{}
	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, syntax.Text(text.String()))
			text.Reset()
		}
	}

	for i := 0; i < len(content); {
		rest := content[i:]
		if strings.HasPrefix(rest, escape+"(") {
			end := interpolationEnd(content, i+len(escape)+1)
			if end < 0 {
				p.pos = offset + i
				return nil, p.errorf("unterminated string interpolation")
			}
			flush()
			segments = append(segments, syntax.Interpolation(content[i:end]))
			i = end
			continue
		}
		if strings.HasPrefix(rest, escape) && len(rest) > len(escape) {
			text.WriteString(rest[:len(escape)+1])
			i += len(escape) + 1
			continue
		}
		text.WriteByte(content[i])
		i++
	}
	flush()

	return segments, nil
}

// interpolationEnd returns the index just past the `)` closing an
// interpolation whose body starts at i, or -1. Parentheses inside nested
// string literals are not counted.
func interpolationEnd(s string, i int) int {
	depth := 1
	for i < len(s) {
		switch s[i] {
		case '"':
			i++
			for i < len(s) && s[i] != '"' {
				if s[i] == '\\' {
					i++
				}
				i++
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return -1
}
