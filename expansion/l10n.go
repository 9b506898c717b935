package expansion

import (
	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

const bundleLabel = "bundle"

// resourceRules are the argument rules of #L10n(key, default, bundle:).
func resourceRules(cfg config.Configuration) ArgumentRules {
	macro := "#" + string(L10n)

	values := make([]EnumValue, len(config.Bundles))
	for i, b := range config.Bundles {
		values[i] = EnumValue{
			Canonical: string(b),
			Spellings: cfg.BundleSpellings(b),
		}
	}

	return ArgumentRules{
		Positions: []PositionRule{
			{
				StringLiteral: true,
				Mismatch:      "First argument to " + macro + " must be a string literal key",
			},
			{
				StringLiteral: true,
				Mismatch:      "`default` argument to " + macro + " must be a string literal",
			},
		},
		Insufficient: macro + " requires at least `key` and `default` arguments",
		Enum: &EnumRule{
			Label:       bundleLabel,
			Values:      values,
			Default:     string(cfg.L10n.DefaultBundle),
			Unsupported: "Unsupported bundle expression for " + macro + ": %s",
		},
	}
}

// SynthesizeResource expands #L10n into a localized resource construction.
// The key and default literals are embedded exactly as written.
func SynthesizeResource(ctx Context, call *syntax.Call) (*syntax.ExpressionReplacement, error) {
	args, err := ValidateArguments(call.ID, call.Arguments, resourceRules(ctx.Config))
	if err != nil {
		return nil, err
	}

	key := syntax.Source(args.Positional[0])
	value := syntax.Source(args.Positional[1])

	return &syntax.ExpressionReplacement{
		Text: ctx.Dialect.Resource(key, value, config.Bundle(args.Enum)),
	}, nil
}

func expandL10n(ctx Context, site Site) (syntax.Generated, error) {
	r, err := SynthesizeResource(ctx, site.Call)
	if err != nil {
		return nil, err
	}
	return r, nil
}
