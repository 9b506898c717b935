package expansion

import "github.com/tinoworks/tinomacro/internal/syntax"

// Members is the structural view of a declaration that rules query.
type Members struct {
	// Properties are the property members in source order. Their names may
	// be empty when the member binds a complex pattern.
	Properties []syntax.Member

	conformances map[string]struct{}
}

// Extract walks the member block and the inheritance clause of decl.
//
// Only identifier entries of the inheritance clause count as conformances;
// qualified names, generic applications and anything else are ignored.
func Extract(decl *syntax.Declaration) Members {
	m := Members{
		Properties:   []syntax.Member{},
		conformances: map[string]struct{}{},
	}
	if decl == nil {
		return m
	}

	for _, member := range decl.Members {
		if member.Kind == syntax.PropertyMember {
			m.Properties = append(m.Properties, member)
		}
	}

	for _, inherited := range decl.Inherits {
		if ident, ok := inherited.(*syntax.Identifier); ok && ident.Name != "" {
			m.conformances[ident.Name] = struct{}{}
		}
	}

	return m
}

// Conforms reports whether the declaration lists name in its inheritance
// clause.
func (m Members) Conforms(name string) bool {
	_, ok := m.conformances[name]
	return ok
}
