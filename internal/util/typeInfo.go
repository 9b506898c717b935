package util

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Position returns the position of the AST node node was decorated from, or
// nil when node was not loaded from pkg.
func Position(node dst.Node, pkg *decorator.Package) *token.Position {
	if node == nil || pkg == nil || pkg.Decorator == nil || pkg.Fset == nil {
		return nil
	}

	astNode := pkg.Decorator.Ast.Nodes[node]
	if astNode == nil {
		return nil
	}

	pos := pkg.Fset.Position(astNode.Pos())
	return &pos
}

// WriteExpr returns the source of expr. Expressions that were loaded with pkg
// are printed from their AST; anything else is printed from the DST for the
// type expressions found in struct fields.
func WriteExpr(expr dst.Expr, pkg *decorator.Package) string {
	if expr == nil {
		return ""
	}

	if pkg != nil && pkg.Decorator != nil {
		if astExpr, ok := pkg.Decorator.Ast.Nodes[expr].(ast.Expr); ok {
			return types.ExprString(astExpr)
		}
	}

	b := strings.Builder{}
	writeTypeExpr(&b, expr)
	return b.String()
}

func writeTypeExpr(b *strings.Builder, expr dst.Expr) {
	switch v := expr.(type) {
	case *dst.Ident:
		if v.Path != "" {
			b.WriteString(v.Path[strings.LastIndexByte(v.Path, '/')+1:])
			b.WriteByte('.')
		}
		b.WriteString(v.Name)
	case *dst.SelectorExpr:
		writeTypeExpr(b, v.X)
		b.WriteByte('.')
		b.WriteString(v.Sel.Name)
	case *dst.StarExpr:
		b.WriteByte('*')
		writeTypeExpr(b, v.X)
	case *dst.ArrayType:
		b.WriteByte('[')
		if v.Len != nil {
			writeTypeExpr(b, v.Len)
		}
		b.WriteByte(']')
		writeTypeExpr(b, v.Elt)
	case *dst.MapType:
		b.WriteString("map[")
		writeTypeExpr(b, v.Key)
		b.WriteByte(']')
		writeTypeExpr(b, v.Value)
	case *dst.ChanType:
		b.WriteString("chan ")
		writeTypeExpr(b, v.Value)
	case *dst.Ellipsis:
		b.WriteString("...")
		writeTypeExpr(b, v.Elt)
	case *dst.BasicLit:
		b.WriteString(v.Value)
	case *dst.IndexExpr:
		writeTypeExpr(b, v.X)
		b.WriteByte('[')
		writeTypeExpr(b, v.Index)
		b.WriteByte(']')
	case *dst.FuncType:
		b.WriteString("func(...)")
	case *dst.InterfaceType:
		b.WriteString("interface{...}")
	case *dst.StructType:
		b.WriteString("struct{...}")
	}
}

// Comparable reports whether values of the type expr denotes can be compared
// with ==. Expressions loaded with pkg are checked with its type information.
// Otherwise only the syntax is judged: slices, maps and funcs are not
// comparable, and named types are assumed to be.
func Comparable(expr dst.Expr, pkg *decorator.Package) bool {
	if pkg != nil && pkg.Decorator != nil && pkg.TypesInfo != nil {
		if astExpr, ok := pkg.Decorator.Ast.Nodes[expr].(ast.Expr); ok {
			if t := pkg.TypesInfo.TypeOf(astExpr); t != nil {
				return types.Comparable(t)
			}
		}
	}

	switch v := expr.(type) {
	case *dst.ArrayType:
		return v.Len != nil && Comparable(v.Elt, nil)
	case *dst.MapType, *dst.FuncType:
		return false
	case *dst.StructType:
		if v.Fields == nil {
			return true
		}
		for _, field := range v.Fields.List {
			if !Comparable(field.Type, nil) {
				return false
			}
		}
	}
	return true
}

// ReceiverTypeName returns the name of the type a method is declared on,
// without pointer or type parameters. It returns "" for plain functions.
func ReceiverTypeName(fn *dst.FuncDecl) string {
	if fn == nil || fn.Recv == nil || len(fn.Recv.List) != 1 {
		return ""
	}

	expr := fn.Recv.List[0].Type
	for {
		switch v := expr.(type) {
		case *dst.StarExpr:
			expr = v.X
		case *dst.IndexExpr:
			expr = v.X
		case *dst.IndexListExpr:
			expr = v.X
		case *dst.Ident:
			return v.Name
		default:
			return ""
		}
	}
}
