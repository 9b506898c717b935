package syntax

// Generated is the syntax an expansion hands back to its host.
type Generated interface {
	// Source is the text to splice into the program.
	Source() string
	generated()
}

// ExtensionBlock adds behaviour to an existing type without touching its
// body.
type ExtensionBlock struct {
	TypeName string
	Text     string
}

// PeerDeclaration is inserted alongside the annotated declaration.
type PeerDeclaration struct {
	Text string
}

// ExpressionReplacement replaces the call site it was expanded from.
type ExpressionReplacement struct {
	Text string
}

func (e *ExtensionBlock) Source() string        { return e.Text }
func (p *PeerDeclaration) Source() string       { return p.Text }
func (e *ExpressionReplacement) Source() string { return e.Text }

func (*ExtensionBlock) generated()        {}
func (*PeerDeclaration) generated()       {}
func (*ExpressionReplacement) generated() {}

// GeneratedKind names the shape of a generated fragment, as used on the
// plugin wire.
func GeneratedKind(g Generated) string {
	switch g.(type) {
	case *ExtensionBlock:
		return "extension"
	case *PeerDeclaration:
		return "peer"
	case *ExpressionReplacement:
		return "expression"
	default:
		return ""
	}
}
