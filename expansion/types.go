// Package expansion implements the expansion rules and the registry hosts
// use to dispatch annotation sites to them.
//
// Every rule is a pure function of its site and of the Context it receives.
// Rules never keep state between calls, so hosts may expand any number of
// sites concurrently.
package expansion

import (
	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/render"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// Context carries the immutable constants a rule may read.
type Context struct {
	Config  config.Configuration
	Dialect render.Dialect
}

// SiteKind is where an annotation may be written.
type SiteKind uint8

const (
	// AttachedToDeclaration annotations are written on a type declaration.
	AttachedToDeclaration SiteKind = iota + 1

	// AttachedToMember annotations are written on a member of a type.
	AttachedToMember

	// ExpressionCall annotations are freestanding call-like expressions.
	ExpressionCall
)

func (k SiteKind) String() string {
	switch k {
	case AttachedToDeclaration:
		return "attached-to-declaration"
	case AttachedToMember:
		return "attached-to-member"
	case ExpressionCall:
		return "expression-call"
	default:
		return "unknown"
	}
}

// Site is one annotation location handed over by a host. Only the fields
// relevant to the rule's SiteKind need to be set: Attribute and Declaration
// for declaration annotations, Attribute and Member for member annotations,
// Call for expression calls.
type Site struct {
	Name        string
	Attribute   *syntax.Attribute
	Declaration *syntax.Declaration
	Member      *syntax.Member
	Call        *syntax.Call
}

// ruleFunc is the uniform signature the registry dispatches to.
type ruleFunc func(ctx Context, site Site) (syntax.Generated, error)
