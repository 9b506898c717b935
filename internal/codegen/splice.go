package codegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/dstutil"
)

// FuncDecl parses the source of a single function or method declaration,
// including its doc comment. The result is separated from the previous
// declaration by an empty line.
func FuncDecl(src string) (*dst.FuncDecl, error) {
	f, err := decorator.Parse("package p\n\n" + src + "\n")
	if err != nil {
		return nil, fmt.Errorf("parsing generated declaration: %w", err)
	}
	if len(f.Decls) != 1 {
		return nil, fmt.Errorf("generated source holds %d declarations, expected one", len(f.Decls))
	}

	fn, ok := f.Decls[0].(*dst.FuncDecl)
	if !ok {
		return nil, fmt.Errorf("generated declaration is a %T, expected a function", f.Decls[0])
	}

	f.Decls = nil
	fn.Decs.Before = dst.EmptyLine
	fn.Decs.After = dst.EmptyLine
	return fn, nil
}

// Expr parses the source of a single expression.
//
// When importPath is not empty, every selector on pkgName is turned into an
// identifier carrying the import path, so that a restorer managing imports
// adds the import to the file it is printed in.
func Expr(src, pkgName, importPath string) (dst.Expr, error) {
	f, err := decorator.Parse("package p\n\nvar _ = " + src + "\n")
	if err != nil {
		return nil, fmt.Errorf("parsing generated expression: %w", err)
	}

	spec := f.Decls[0].(*dst.GenDecl).Specs[0].(*dst.ValueSpec)
	if len(spec.Values) != 1 {
		return nil, fmt.Errorf("generated source holds %d expressions, expected one", len(spec.Values))
	}
	expr := spec.Values[0]
	spec.Values = nil

	if importPath == "" {
		return expr, nil
	}

	qualified := dstutil.Apply(expr, nil, func(c *dstutil.Cursor) bool {
		sel, ok := c.Node().(*dst.SelectorExpr)
		if !ok {
			return true
		}
		if x, ok := sel.X.(*dst.Ident); ok && x.Name == pkgName && x.Path == "" {
			c.Replace(&dst.Ident{Name: sel.Sel.Name, Path: importPath})
		}
		return true
	})
	return qualified.(dst.Expr), nil
}

// InsertDeclAfter inserts decl immediately after anchor in file. It returns
// false when anchor is not a top level declaration of file.
func InsertDeclAfter(file *dst.File, anchor, decl dst.Decl) bool {
	i := slices.Index(file.Decls, anchor)
	if i < 0 {
		return false
	}

	file.Decls = slices.Insert(file.Decls, i+1, decl)
	return true
}

// PrependComment adds comment in front of the existing comments of a node,
// on lines of its own. It returns false without changing decs when the same
// comment is already present.
func PrependComment(decs *dst.Decorations, comment string) bool {
	if slices.Contains(decs.All(), comment) {
		return false
	}
	if strings.HasPrefix(comment, "/*") {
		decs.Prepend(comment, "\n")
		return true
	}
	decs.Prepend(comment)
	return true
}
