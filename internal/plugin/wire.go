// Package plugin serves expansion requests over a stream of frames, so that a
// compiler or an editor can run the rules out of process.
package plugin

import (
	"fmt"

	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/annotation"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// Node IDs assigned to the nodes decoded from one request. Diagnostics name
// the annotation node.
const (
	annotationNode  syntax.NodeID = 1
	declarationNode syntax.NodeID = 2
)

// Request asks for the expansion of a single site.
//
// Source is the annotation as written, for example `@Metadata("Home")` or
// `#L10n("k", "v")`. When it is empty the site is a bare annotation named
// Rule. Declaration describes the annotated type for declaration rules.
type Request struct {
	ID          uint64       `json:"id" msgpack:"id"`
	Rule        string       `json:"rule,omitempty" msgpack:"rule,omitempty"`
	Source      string       `json:"source,omitempty" msgpack:"source,omitempty"`
	Declaration *Declaration `json:"declaration,omitempty" msgpack:"declaration,omitempty"`
}

// Declaration is the serialized form of syntax.Declaration. Inheritance
// entries and attributes are source text.
type Declaration struct {
	Name     string   `json:"name" msgpack:"name"`
	Inherits []string `json:"inherits,omitempty" msgpack:"inherits,omitempty"`
	Members  []Member `json:"members,omitempty" msgpack:"members,omitempty"`
}

// Member is the serialized form of syntax.Member. Kind is "property" or
// "other"; an empty kind means property.
type Member struct {
	Name       string   `json:"name" msgpack:"name"`
	Kind       string   `json:"kind,omitempty" msgpack:"kind,omitempty"`
	Type       string   `json:"type,omitempty" msgpack:"type,omitempty"`
	Attributes []string `json:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// Response answers the request with the same ID. Exactly one of Syntax,
// Diagnostic and Error is set.
type Response struct {
	ID         uint64      `json:"id" msgpack:"id"`
	Syntax     *Syntax     `json:"syntax,omitempty" msgpack:"syntax,omitempty"`
	Diagnostic *Diagnostic `json:"diagnostic,omitempty" msgpack:"diagnostic,omitempty"`
	// Error reports a request the engine could not interpret.
	Error string `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Syntax is generated source. Rules that produce nothing answer with an
// empty Kind and Text.
type Syntax struct {
	Kind     string `json:"kind" msgpack:"kind"`
	TypeName string `json:"typeName,omitempty" msgpack:"typeName,omitempty"`
	Text     string `json:"text" msgpack:"text"`
}

type Diagnostic struct {
	Kind     string `json:"kind" msgpack:"kind"`
	Severity string `json:"severity" msgpack:"severity"`
	Message  string `json:"message" msgpack:"message"`
	Node     int    `json:"node" msgpack:"node"`
	Position int    `json:"position,omitempty" msgpack:"position,omitempty"`
	Value    string `json:"value,omitempty" msgpack:"value,omitempty"`
}

// site decodes the request into the site handed to the expander.
func (r Request) site() (expansion.Site, error) {
	name := r.Rule
	var a annotation.Annotation

	if r.Source != "" {
		var err error
		a, err = annotation.ParseOne(r.Source)
		if err != nil {
			return expansion.Site{}, fmt.Errorf("parsing source: %w", err)
		}
		if name == "" {
			name = a.Name
		}
		if a.Name != name {
			return expansion.Site{}, fmt.Errorf("source annotation %q does not match rule %q", a.Name, name)
		}
	} else {
		a = annotation.Annotation{Name: name}
	}

	b, ok := expansion.Lookup(name)
	if !ok {
		return expansion.Site{}, fmt.Errorf("%w: %q", expansion.ErrUnknownRule, name)
	}

	site := expansion.Site{Name: name}
	if b.Kind == expansion.ExpressionCall {
		site.Call = a.Call(annotationNode)
		return site, nil
	}

	attr := a.Attribute(annotationNode)
	site.Attribute = &attr
	if r.Declaration != nil {
		decl, err := r.Declaration.syntax()
		if err != nil {
			return expansion.Site{}, err
		}
		site.Declaration = decl
	}
	return site, nil
}

func (d *Declaration) syntax() (*syntax.Declaration, error) {
	decl := &syntax.Declaration{ID: declarationNode, Name: d.Name}

	for _, text := range d.Inherits {
		e, err := annotation.ParseExpr(text)
		if err != nil {
			return nil, fmt.Errorf("parsing inherited type %q: %w", text, err)
		}
		decl.Inherits = append(decl.Inherits, e)
	}

	for _, m := range d.Members {
		member := syntax.Member{Kind: syntax.PropertyMember, Name: m.Name, Type: m.Type}
		switch m.Kind {
		case "", "property":
		case "other":
			member.Kind = syntax.OtherMember
		default:
			return nil, fmt.Errorf("member %q: unknown kind %q", m.Name, m.Kind)
		}

		for _, text := range m.Attributes {
			a, err := annotation.ParseOne(text)
			if err != nil {
				return nil, fmt.Errorf("member %q: parsing attribute: %w", m.Name, err)
			}
			member.Attributes = append(member.Attributes, a.Attribute(0))
		}
		decl.Members = append(decl.Members, member)
	}

	return decl, nil
}

func syntaxResponse(id uint64, g syntax.Generated) Response {
	s := &Syntax{Kind: syntax.GeneratedKind(g)}
	if g != nil {
		s.Text = g.Source()
	}
	if ext, ok := g.(*syntax.ExtensionBlock); ok {
		s.TypeName = ext.TypeName
	}
	return Response{ID: id, Syntax: s}
}

func diagnosticResponse(id uint64, d *diagnostic.Diagnostic) Response {
	return Response{
		ID: id,
		Diagnostic: &Diagnostic{
			Kind:     d.Kind.String(),
			Severity: d.Severity.String(),
			Message:  d.Message,
			Node:     int(d.Node),
			Position: d.Position,
			Value:    d.Value,
		},
	}
}
