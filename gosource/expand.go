package gosource

import (
	"errors"
	"go/token"
	"path"
	"slices"

	"github.com/dave/dst"
	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/annotation"
	"github.com/tinoworks/tinomacro/internal/codegen"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
	"github.com/tinoworks/tinomacro/internal/util"
)

// expandFile expands the annotations of the top level declarations of file.
// Generated declarations are inserted into file as they are produced and are
// not visited again.
func (m *Manager) expandFile(state *PackageState, file *dst.File) error {
	var errs []error
	for _, decl := range slices.Clone(file.Decls) {
		var err error
		switch v := decl.(type) {
		case *dst.GenDecl:
			switch v.Tok {
			case token.TYPE:
				err = m.expandTypeDecl(state, file, v)
			case token.VAR, token.CONST:
				err = m.expandValueDecl(state, file, v)
			}
		case *dst.FuncDecl:
			err = m.expandFuncDecl(state, file, v)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) changed(state *PackageState, file *dst.File) {
	state.modified[file] = true
	m.stats.Generated++
}

// expand dispatches one site. Diagnostics are reported and yield no syntax;
// any other error is a failure of the host.
func (m *Manager) expand(state *PackageState, site expansion.Site) (syntax.Generated, error) {
	m.stats.Sites++

	g, err := m.expander.Expand(site)
	if err != nil {
		var d *diagnostic.Diagnostic
		if errors.As(err, &d) {
			m.report(state, d)
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (m *Manager) expandTypeDecl(state *PackageState, file *dst.File, decl *dst.GenDecl) error {
	var errs []error
	anchor := dst.Decl(decl)

	for _, s := range decl.Specs {
		spec := s.(*dst.TypeSpec)

		peers := &spec.Decs.Start
		sources := []dst.Decorations{spec.Decs.Start}
		if !decl.Lparen {
			peers = &decl.Decs.Start
			sources = append(sources, decl.Decs.Start)
		}

		for _, a := range m.annotations(state, spec, sources...) {
			fn, err := m.expandAttached(state, file, spec, a, peers, spec)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if fn != nil {
				codegen.InsertDeclAfter(file, anchor, fn)
				anchor = fn
				m.changed(state, file)
			}
		}
	}

	return errors.Join(errs...)
}

func (m *Manager) expandValueDecl(state *PackageState, file *dst.File, decl *dst.GenDecl) error {
	var errs []error

	if decl.Lparen {
		for _, a := range m.annotations(state, decl, decl.Decs.Start) {
			if _, err := m.expandAttached(state, file, decl, a, &decl.Decs.Start, nil); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, s := range decl.Specs {
		spec := s.(*dst.ValueSpec)

		peers := &spec.Decs.Start
		sources := []dst.Decorations{spec.Decs.Start}
		if !decl.Lparen {
			peers = &decl.Decs.Start
			sources = append(sources, decl.Decs.Start)
		}

		for _, a := range m.annotations(state, spec, sources...) {
			var err error
			if a.Sigil == annotation.FreestandingSigil {
				err = m.expandValue(state, file, spec, a)
			} else {
				_, err = m.expandAttached(state, file, spec, a, peers, nil)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (m *Manager) expandFuncDecl(state *PackageState, file *dst.File, fn *dst.FuncDecl) error {
	var errs []error
	for _, a := range m.annotations(state, fn, fn.Decs.Start) {
		if _, err := m.expandAttached(state, file, fn, a, &fn.Decs.Start, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// expandAttached expands an annotation written on the declaration node.
// Generated comments are added to peers. spec is the type node declares, or
// nil. The returned declaration, if any, is the equality method of spec.
func (m *Manager) expandAttached(state *PackageState, file *dst.File, node dst.Node, a annotation.Annotation, peers *dst.Decorations, spec *dst.TypeSpec) (dst.Decl, error) {
	b, ok := expansion.Lookup(a.Name)
	if !ok {
		return nil, nil
	}
	if a.Sigil != annotation.AttachedSigil || b.Kind != expansion.AttachedToDeclaration {
		m.logger.Printf("ignoring %s: not a declaration annotation", a)
		return nil, nil
	}

	id := m.register(state, node)
	attr := a.Attribute(id)
	site := expansion.Site{Name: a.Name, Attribute: &attr}

	if b.Name == expansion.Equatable {
		switch {
		case spec == nil:
			m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s must annotate a type declaration", a))
			return nil, nil
		case spec.TypeParams != nil:
			m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s does not support generic types", a))
			return nil, nil
		case spec.Assign:
			m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s does not support type aliases", a))
			return nil, nil
		case state.equal[spec.Name.Name]:
			m.logger.Printf("%s already declares %s", spec.Name.Name, m.cfg.Go.EqualMethod)
			return nil, nil
		}
		site.Declaration = m.declaration(state, spec)
		if name, typ := m.incomparableField(state, spec, site.Declaration); name != "" {
			m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s cannot compare field %s of type %s, mark it @%s", a, name, typ, m.cfg.Equatable.SkipAttribute))
			return nil, nil
		}
	}

	g, err := m.expand(state, site)
	if err != nil || g == nil {
		return nil, err
	}

	switch g := g.(type) {
	case *syntax.ExtensionBlock:
		fn, err := codegen.FuncDecl(g.Source())
		if err != nil {
			m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s: %v", a, err))
			return nil, nil
		}
		state.equal[g.TypeName] = true
		m.logger.Printf("generated %s.%s", g.TypeName, m.cfg.Go.EqualMethod)
		return fn, nil

	case *syntax.PeerDeclaration:
		if codegen.PrependComment(peers, g.Source()) {
			m.changed(state, file)
		}
	}
	return nil, nil
}

// expandValue sets the value of a variable from the expression its annotation
// generates. A value already present is replaced.
func (m *Manager) expandValue(state *PackageState, file *dst.File, spec *dst.ValueSpec, a annotation.Annotation) error {
	b, ok := expansion.Lookup(a.Name)
	if !ok {
		return nil
	}
	if b.Kind != expansion.ExpressionCall {
		m.logger.Printf("ignoring %s: not an expression annotation", a)
		return nil
	}

	id := m.register(state, spec)
	if len(spec.Names) != 1 {
		m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s must annotate a single variable", a))
		return nil
	}

	g, err := m.expand(state, expansion.Site{Name: a.Name, Call: a.Call(id)})
	if err != nil || g == nil {
		return err
	}

	expr, err := codegen.Expr(g.Source(), m.cfg.Go.RuntimePackage, m.cfg.Go.RuntimeImport)
	if err != nil {
		m.report(state, diagnostic.Newf(diagnostic.Unknown, id, "%s: %v", a, err))
		return nil
	}

	spec.Values = []dst.Expr{expr}
	m.changed(state, file)
	m.logger.Printf("generated the value of %s", spec.Names[0].Name)
	return nil
}

// declaration builds the syntax model of a type. Struct fields become
// property members, one per name; embedded fields become inheritance entries.
func (m *Manager) declaration(state *PackageState, spec *dst.TypeSpec) *syntax.Declaration {
	decl := &syntax.Declaration{ID: m.register(state, spec), Name: spec.Name.Name}

	st, ok := spec.Type.(*dst.StructType)
	if !ok || st.Fields == nil {
		return decl
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			decl.Inherits = append(decl.Inherits, embeddedType(field.Type))
			continue
		}

		attrs := m.memberAttributes(state, field)
		typ := util.WriteExpr(field.Type, state.pkg)
		for _, name := range field.Names {
			member := syntax.Member{Kind: syntax.PropertyMember, Name: name.Name, Type: typ, Attributes: attrs}
			if name.Name == "_" {
				member.Name = ""
			}
			decl.Members = append(decl.Members, member)
		}
	}

	return decl
}

// incomparableField returns the first field the equality method would compare
// whose type does not support ==, together with its type.
func (m *Manager) incomparableField(state *PackageState, spec *dst.TypeSpec, decl *syntax.Declaration) (string, string) {
	st, ok := spec.Type.(*dst.StructType)
	if !ok || st.Fields == nil {
		return "", ""
	}

	compared := map[string]bool{}
	for _, name := range expansion.ComparedMembers(m.cfg.Equatable, expansion.Extract(decl)) {
		compared[name] = true
	}

	for _, field := range st.Fields.List {
		if util.Comparable(field.Type, state.pkg) {
			continue
		}
		for _, name := range field.Names {
			if compared[name.Name] {
				return name.Name, util.WriteExpr(field.Type, state.pkg)
			}
		}
	}
	return "", ""
}

// memberAttributes returns every attached annotation written on a field, and
// dispatches the ones registered as member rules.
func (m *Manager) memberAttributes(state *PackageState, field *dst.Field) []syntax.Attribute {
	var attrs []syntax.Attribute
	for _, a := range m.annotations(state, field, field.Decs.Start, field.Decs.End) {
		if a.Sigil != annotation.AttachedSigil {
			continue
		}
		attr := a.Attribute(m.register(state, field))
		attrs = append(attrs, attr)

		if b, ok := expansion.Lookup(a.Name); ok && b.Kind == expansion.AttachedToMember {
			if _, err := m.expand(state, expansion.Site{Name: a.Name, Attribute: &attr}); err != nil {
				m.logger.Printf("expanding %s: %v", a, err)
			}
		}
	}
	return attrs
}

// embeddedType converts the type of an embedded field into an inheritance
// entry. Only unqualified names count as conformances.
func embeddedType(expr dst.Expr) syntax.Expr {
	switch v := expr.(type) {
	case *dst.Ident:
		if v.Path == "" {
			return syntax.Ident(v.Name)
		}
		return &syntax.MemberAccess{Base: syntax.Ident(path.Base(v.Path)), Member: v.Name}
	case *dst.SelectorExpr:
		if x, ok := v.X.(*dst.Ident); ok {
			return &syntax.MemberAccess{Base: syntax.Ident(x.Name), Member: v.Sel.Name}
		}
	}
	return &syntax.Other{Text: util.WriteExpr(expr, nil)}
}
