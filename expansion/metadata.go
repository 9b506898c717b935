package expansion

import (
	"strings"

	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// SynthesizeComment expands @Metadata into a documentation comment placed
// next to the annotated declaration. Content spanning several lines becomes a
// block comment reproducing every line verbatim.
func SynthesizeComment(ctx Context, attr *syntax.Attribute) (*syntax.PeerDeclaration, error) {
	tag := ctx.Config.Metadata.Tag

	if !attr.HasArguments {
		return nil, diagnostic.New(diagnostic.MissingArgument, attr.ID, tag+" requires a string argument describing the metadata")
	}

	content := metadataContent(attr)
	if content == "" {
		return nil, diagnostic.New(diagnostic.EmptyArgument, attr.ID, tag+" requires a non-empty string argument")
	}

	if strings.Contains(content, "\n") {
		return &syntax.PeerDeclaration{Text: ctx.Dialect.BlockComment(content)}, nil
	}
	return &syntax.PeerDeclaration{Text: ctx.Dialect.LineComment(content)}, nil
}

// metadataContent extracts the comment text. A leading string literal, with
// or without a label, contributes its segments with interpolation spans kept
// as written. Anything else falls back to the source of the whole argument
// clause, exactly as written.
func metadataContent(attr *syntax.Attribute) string {
	if len(attr.Arguments) > 0 {
		if lit, ok := attr.Arguments[0].Value.(*syntax.StringLiteral); ok {
			return lit.Content()
		}
	}
	return attr.ArgumentsSource()
}

func expandMetadata(ctx Context, site Site) (syntax.Generated, error) {
	p, err := SynthesizeComment(ctx, site.Attribute)
	if err != nil {
		return nil, err
	}
	return p, nil
}
