// Package syntax contains the language neutral syntax model that expansion
// rules read and write.
//
// Nodes are plain values. Hosts build them from whatever tree they own (dst
// files, plugin requests) and keep a table from NodeID to source location so
// diagnostics can be attributed later.
package syntax

import "strings"

// NodeID identifies a node for the host that created it. Zero means unknown.
type NodeID int

// MemberKind classifies the members of a declaration.
type MemberKind uint8

const (
	// OtherMember is anything that is not a property: methods, nested types,
	// initializers.
	OtherMember MemberKind = iota

	// PropertyMember is a stored or computed property declaration.
	PropertyMember
)

func (k MemberKind) String() string {
	switch k {
	case PropertyMember:
		return "property"
	default:
		return "other"
	}
}

// Declaration is a type declaration with a member block.
type Declaration struct {
	ID         NodeID
	Name       string
	Members    []Member
	Inherits   []Expr // entries of the inheritance clause, in source order
	Attributes []Attribute
}

// Member is one entry of a declaration's member block.
//
// Name is empty when the member binds a pattern more complex than a single
// identifier.
type Member struct {
	Kind       MemberKind
	Name       string
	Type       string
	Attributes []Attribute
}

// HasAttribute reports whether an attribute with exactly the given name is
// attached to the member. Arguments are not inspected.
func (m Member) HasAttribute(name string) bool {
	for _, attr := range m.Attributes {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Attribute is an annotation attached to a declaration or a member.
//
// HasArguments is false for a bare attribute (`@Name`), and true as soon as
// an argument clause is written, even an empty one (`@Name()`).
// ArgumentText is the trimmed text between the parentheses when the
// attribute was read from source.
type Attribute struct {
	ID           NodeID
	Name         string
	HasArguments bool
	Arguments    []Argument
	ArgumentText string
}

// ArgumentsSource returns the argument clause without its parentheses, as it
// was written.
func (a Attribute) ArgumentsSource() string {
	if a.ArgumentText != "" {
		return a.ArgumentText
	}
	return ArgumentsSource(a.Arguments)
}

// Call is a freestanding call-like site such as `#Name(arguments)`.
type Call struct {
	ID        NodeID
	Name      string
	Arguments []Argument
}

// Argument is one element of an argument list. Label is empty for a
// positional argument.
type Argument struct {
	Label string
	Value Expr
}

// Source renders the argument the way it was written.
func (a Argument) Source() string {
	if a.Label == "" {
		return Source(a.Value)
	}
	return a.Label + ": " + Source(a.Value)
}

// ArgumentsSource renders an argument list without its parentheses.
func ArgumentsSource(args []Argument) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.Source()
	}
	return strings.Join(parts, ", ")
}
