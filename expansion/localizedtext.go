package expansion

import (
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// SynthesizeText expands #LocalizedText into a text construction scoped to
// the calling module. The key may be any expression; it is embedded as
// written. Arguments after the first are ignored.
func SynthesizeText(ctx Context, call *syntax.Call) (*syntax.ExpressionReplacement, error) {
	if len(call.Arguments) == 0 || call.Arguments[0].Value == nil {
		return nil, diagnostic.New(diagnostic.MissingArgument, call.ID, "Missing localization key argument.")
	}

	key := syntax.Source(call.Arguments[0].Value)
	return &syntax.ExpressionReplacement{Text: ctx.Dialect.Text(key)}, nil
}

func expandLocalizedText(ctx Context, site Site) (syntax.Generated, error) {
	r, err := SynthesizeText(ctx, site.Call)
	if err != nil {
		return nil, err
	}
	return r, nil
}
