package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "nil expression",
			expr: nil,
			want: "",
		},
		{
			name: "string literal with interpolation",
			expr: &StringLiteral{Segments: []Segment{Text("Hello "), Interpolation(`\(name)`)}},
			want: `"Hello \(name)"`,
		},
		{
			name: "multiline string literal",
			expr: &StringLiteral{Segments: []Segment{Text("a\nb")}, Multiline: true},
			want: "\"\"\"\na\nb\n\"\"\"",
		},
		{
			name: "implicit member access",
			expr: &MemberAccess{Member: "main"},
			want: ".main",
		},
		{
			name: "qualified member access",
			expr: &MemberAccess{Base: Ident("ResourceBundle"), Member: "module"},
			want: "ResourceBundle.module",
		},
		{
			name: "call with labeled argument",
			expr: &CallExpr{
				Callee: Ident("f"),
				Arguments: []Argument{
					{Value: &Other{Text: "1"}},
					{Label: "bundle", Value: &MemberAccess{Member: "main"}},
				},
			},
			want: "f(1, bundle: .main)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Source(tt.expr))
		})
	}
}

func TestStringLiteralContent(t *testing.T) {
	lit := &StringLiteral{Segments: []Segment{Text("a"), Interpolation(`\(b)`), Text("c")}}
	assert.Equal(t, `a\(b)c`, lit.Content())
	assert.Equal(t, "", (&StringLiteral{}).Content())
}

func TestMemberHasAttribute(t *testing.T) {
	m := Member{Name: "x", Attributes: []Attribute{{Name: "SkipEquatable"}}}
	assert.True(t, m.HasAttribute("SkipEquatable"))
	assert.False(t, m.HasAttribute("skipEquatable"))
	assert.False(t, Member{}.HasAttribute("SkipEquatable"))
}

func TestGeneratedKind(t *testing.T) {
	assert.Equal(t, "extension", GeneratedKind(&ExtensionBlock{}))
	assert.Equal(t, "peer", GeneratedKind(&PeerDeclaration{}))
	assert.Equal(t, "expression", GeneratedKind(&ExpressionReplacement{}))
	assert.Equal(t, "", GeneratedKind(nil))
}
