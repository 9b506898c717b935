package expansion

import (
	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// viewBodyMember holds the builder value of a view. It is never compared when
// the declaration conforms to the view marker.
const viewBodyMember = "body"

// ComparedMembers returns the names the equality operator compares, in
// source order.
func ComparedMembers(cfg config.EquatableConfig, members Members) []string {
	isView := members.Conforms(cfg.ViewMarker)

	names := []string{}
	for _, property := range members.Properties {
		if property.HasAttribute(cfg.SkipAttribute) {
			continue
		}
		if property.Name == "" {
			continue
		}
		if property.Name == viewBodyMember && isView {
			continue
		}
		names = append(names, property.Name)
	}
	return names
}

// SynthesizeEquality builds the extension declaring the equality operator of
// decl. It never fails: a declaration without comparable members compares
// equal unconditionally.
func SynthesizeEquality(ctx Context, decl *syntax.Declaration) *syntax.ExtensionBlock {
	members := Extract(decl)
	compared := ComparedMembers(ctx.Config.Equatable, members)

	return &syntax.ExtensionBlock{
		TypeName: decl.Name,
		Text:     ctx.Dialect.Equality(decl.Name, compared),
	}
}

func expandEquatable(ctx Context, site Site) (syntax.Generated, error) {
	return SynthesizeEquality(ctx, site.Declaration), nil
}
