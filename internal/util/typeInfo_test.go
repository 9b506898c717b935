package util

import (
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseStruct(t *testing.T, src string) *dst.StructType {
	t.Helper()
	f, err := decorator.Parse("package p\n\ntype T struct {\n" + src + "\n}\n")
	require.NoError(t, err)
	return f.Decls[0].(*dst.GenDecl).Specs[0].(*dst.TypeSpec).Type.(*dst.StructType)
}

func TestWriteExprWithoutPackage(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "A string", want: "string"},
		{field: "A *time.Time", want: "*time.Time"},
		{field: "A []byte", want: "[]byte"},
		{field: "A [4]int", want: "[4]int"},
		{field: "A map[string][]*User", want: "map[string][]*User"},
		{field: "A chan int", want: "chan int"},
		{field: "A Box[int]", want: "Box[int]"},
		{field: "A func()", want: "func(...)"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			st := parseStruct(t, tt.field)
			assert.Equal(t, tt.want, WriteExpr(st.Fields.List[0].Type, nil))
		})
	}

	assert.Equal(t, "", WriteExpr(nil, nil))
	assert.Equal(t, "l10n.Resource", WriteExpr(&dst.Ident{Name: "Resource", Path: "example.com/l10n"}, nil))
}

func TestComparableWithoutPackage(t *testing.T) {
	tests := []struct {
		field string
		want  bool
	}{
		{field: "A string", want: true},
		{field: "A *[]int", want: true},
		{field: "A [4]int", want: true},
		{field: "A time.Time", want: true},
		{field: "A any", want: true},
		{field: "A []byte", want: false},
		{field: "A [2][]int", want: false},
		{field: "A map[string]int", want: false},
		{field: "A func()", want: false},
		{field: "A struct{ B []int }", want: false},
		{field: "A struct{ B int }", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			st := parseStruct(t, tt.field)
			assert.Equal(t, tt.want, Comparable(st.Fields.List[0].Type, nil))
		})
	}
}

func TestReceiverTypeName(t *testing.T) {
	f, err := decorator.Parse(`package p

func (u User) A() {}
func (u *User) B() {}
func (p *Pair[K, V]) C() {}
func (b Box[T]) D() {}
func E() {}
`)
	require.NoError(t, err)

	var got []string
	for _, decl := range f.Decls {
		got = append(got, ReceiverTypeName(decl.(*dst.FuncDecl)))
	}
	assert.Equal(t, []string{"User", "User", "Pair", "Box", ""}, got)
	assert.Equal(t, "", ReceiverTypeName(nil))
}

func TestPositionWithoutPackage(t *testing.T) {
	assert.Nil(t, Position(dst.NewIdent("x"), nil))
	assert.Nil(t, Position(nil, &decorator.Package{}))
	assert.Nil(t, Position(dst.NewIdent("x"), &decorator.Package{}))
}
