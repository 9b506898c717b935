package expansion

import (
	"errors"
	"fmt"

	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/render"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// Name is one of the closed set of annotation names the engine recognizes.
type Name string

const (
	Equatable     Name = "Equatable"
	SkipEquatable Name = "SkipEquatable"
	L10n          Name = "L10n"
	LocalizedText Name = "LocalizedText"
	Metadata      Name = "Metadata"
)

var (
	// ErrUnknownRule is returned for a site whose name is not registered.
	ErrUnknownRule = errors.New("unknown expansion rule")

	// ErrIncompleteSite is returned when a site lacks the node its rule reads.
	ErrIncompleteSite = errors.New("incomplete expansion site")
)

// Binding ties a name to its rule and to the kind of site it accepts.
type Binding struct {
	Name Name
	Kind SiteKind
	// Role is the host-independent description of the rule.
	Role string

	expand ruleFunc
}

// bindings is the only mapping from names to rules.
var bindings = []Binding{
	{Name: Equatable, Kind: AttachedToDeclaration, Role: "equality-derive", expand: expandEquatable},
	{Name: SkipEquatable, Kind: AttachedToMember, Role: "equality-skip-marker", expand: expandSkipMarker},
	{Name: L10n, Kind: ExpressionCall, Role: "localized-resource", expand: expandL10n},
	{Name: LocalizedText, Kind: ExpressionCall, Role: "localized-text", expand: expandLocalizedText},
	{Name: Metadata, Kind: AttachedToDeclaration, Role: "metadata-comment", expand: expandMetadata},
}

var bindingsByName = func() map[Name]Binding {
	m := make(map[Name]Binding, len(bindings))
	for _, b := range bindings {
		m[b.Name] = b
	}
	return m
}()

// Lookup returns the binding registered under name. The match is exact.
func Lookup(name string) (Binding, bool) {
	b, ok := bindingsByName[Name(name)]
	return b, ok
}

// Bindings returns every registered binding in registration order.
func Bindings() []Binding {
	return append([]Binding(nil), bindings...)
}

// Expander dispatches sites to their rules with a fixed Context.
type Expander struct {
	ctx Context
}

// NewExpander creates an expander that renders with dialect. A nil dialect
// selects the Swift dialect.
func NewExpander(cfg config.Configuration, dialect render.Dialect) *Expander {
	if dialect == nil {
		dialect = render.NewSwift(cfg)
	}
	return &Expander{
		ctx: Context{Config: cfg, Dialect: dialect},
	}
}

// Config returns the configuration the expander was created with.
func (e *Expander) Config() config.Configuration {
	return e.ctx.Config
}

// Dialect returns the dialect generated syntax is rendered with.
func (e *Expander) Dialect() render.Dialect {
	return e.ctx.Dialect
}

// Expand runs the rule registered for site.Name.
//
// The returned error is a *diagnostic.Diagnostic when the site is invalid
// for its rule; ErrUnknownRule and ErrIncompleteSite report host mistakes.
// A nil Generated with a nil error means the rule produces no syntax.
func (e *Expander) Expand(site Site) (syntax.Generated, error) {
	b, ok := Lookup(site.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, site.Name)
	}

	if err := checkSite(b, site); err != nil {
		return nil, err
	}

	return b.expand(e.ctx, site)
}

func checkSite(b Binding, site Site) error {
	var missing string
	switch b.Kind {
	case AttachedToDeclaration:
		switch {
		case site.Attribute == nil:
			missing = "attribute"
		case site.Declaration == nil && b.Name == Equatable:
			missing = "declaration"
		}
	case AttachedToMember:
		if site.Attribute == nil {
			missing = "attribute"
		}
	case ExpressionCall:
		if site.Call == nil {
			missing = "call"
		}
	}

	if missing != "" {
		return fmt.Errorf("%w: %s site %q has no %s", ErrIncompleteSite, b.Kind, b.Name, missing)
	}
	return nil
}
