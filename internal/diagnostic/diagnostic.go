// Package diagnostic builds the error values returned by expansion rules and
// reports them for hosts.
package diagnostic

import (
	"fmt"

	"github.com/tinoworks/tinomacro/internal/syntax"
)

// Kind is the failure taxonomy shared by every rule.
type Kind uint8

const (
	Unknown               Kind = 0
	InsufficientArguments Kind = 1
	ArgumentTypeMismatch  Kind = 2
	UnsupportedEnumValue  Kind = 3
	MissingArgument       Kind = 4
	EmptyArgument         Kind = 5
)

func (k Kind) String() string {
	switch k {
	case InsufficientArguments:
		return "InsufficientArguments"
	case ArgumentTypeMismatch:
		return "ArgumentTypeMismatch"
	case UnsupportedEnumValue:
		return "UnsupportedEnumValue"
	case MissingArgument:
		return "MissingArgument"
	case EmptyArgument:
		return "EmptyArgument"
	default:
		return "Unknown"
	}
}

// Severity of a diagnostic. Rules only ever produce errors.
type Severity uint8

const (
	SevError Severity = iota
)

func (s Severity) String() string {
	return "error"
}

// Diagnostic explains why a site could not be expanded.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Node     syntax.NodeID

	// Position is the zero based argument position for ArgumentTypeMismatch.
	Position int
	// Value is the offending text for UnsupportedEnumValue.
	Value string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// New builds an error diagnostic attributed to node.
func New(kind Kind, node syntax.NodeID, msg string) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: SevError,
		Message:  msg,
		Node:     node,
	}
}

// Newf is New with a formatted message.
func Newf(kind Kind, node syntax.NodeID, format string, args ...any) *Diagnostic {
	return New(kind, node, fmt.Sprintf(format, args...))
}

// Mismatch builds an ArgumentTypeMismatch for the argument at position.
func Mismatch(node syntax.NodeID, position int, msg string) *Diagnostic {
	d := New(ArgumentTypeMismatch, node, msg)
	d.Position = position
	return d
}

// Unsupported builds an UnsupportedEnumValue carrying the rejected text.
func Unsupported(node syntax.NodeID, value, msg string) *Diagnostic {
	d := New(UnsupportedEnumValue, node, msg)
	d.Value = value
	return d
}
