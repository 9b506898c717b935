package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

func metadataAttr(args ...syntax.Argument) *syntax.Attribute {
	return &syntax.Attribute{ID: 7, Name: string(Metadata), HasArguments: true, Arguments: args}
}

func TestSynthesizeComment(t *testing.T) {
	tests := []struct {
		name string
		args []syntax.Argument
		want string
	}{
		{
			name: "single line",
			args: []syntax.Argument{{Value: syntax.Str("ホーム画面")}},
			want: "/// @Metadata: ホーム画面",
		},
		{
			name: "multiline literal",
			args: []syntax.Argument{{Value: &syntax.StringLiteral{
				Segments:  []syntax.Segment{syntax.Text("複数行\nのメタデータ")},
				Multiline: true,
			}}},
			want: "/** @Metadata:\n複数行\nのメタデータ\n*/",
		},
		{
			name: "interpolation is preserved",
			args: []syntax.Argument{{Value: &syntax.StringLiteral{Segments: []syntax.Segment{
				syntax.Text("Hello "), syntax.Interpolation(`\(name)`), syntax.Text("!"),
			}}}},
			want: `/// @Metadata: Hello \(name)!`,
		},
		{
			name: "labeled literal",
			args: []syntax.Argument{{Label: "note", Value: syntax.Str("x")}},
			want: "/// @Metadata: x",
		},
		{
			name: "non literal falls back to the argument source",
			args: []syntax.Argument{{Value: &syntax.Other{Text: "123"}}},
			want: "/// @Metadata: 123",
		},
		{
			name: "fallback keeps every argument",
			args: []syntax.Argument{{Value: syntax.Ident("a")}, {Label: "b", Value: syntax.Str("c")}},
			want: `/// @Metadata: a, b: "c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SynthesizeComment(testContext(), metadataAttr(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Source())
		})
	}
}

func TestSynthesizeCommentDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		attr     *syntax.Attribute
		wantKind diagnostic.Kind
		wantMsg  string
	}{
		{
			name:     "no argument clause",
			attr:     &syntax.Attribute{ID: 7, Name: string(Metadata)},
			wantKind: diagnostic.MissingArgument,
			wantMsg:  "@Metadata requires a string argument describing the metadata",
		},
		{
			name:     "empty argument clause",
			attr:     metadataAttr(),
			wantKind: diagnostic.EmptyArgument,
			wantMsg:  "@Metadata requires a non-empty string argument",
		},
		{
			name:     "empty literal",
			attr:     metadataAttr(syntax.Argument{Value: syntax.Str("")}),
			wantKind: diagnostic.EmptyArgument,
			wantMsg:  "@Metadata requires a non-empty string argument",
		},
		{
			name:     "literal without segments",
			attr:     metadataAttr(syntax.Argument{Value: &syntax.StringLiteral{}}),
			wantKind: diagnostic.EmptyArgument,
			wantMsg:  "@Metadata requires a non-empty string argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SynthesizeComment(testContext(), tt.attr)
			assert.Nil(t, got)

			d := asDiagnostic(t, err)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantMsg, d.Message)
			assert.Equal(t, syntax.NodeID(7), d.Node)
		})
	}
}

func TestSynthesizeCommentSingleLineLiteralWithNewlineEscape(t *testing.T) {
	// an escaped \n is two characters of source, not a line break
	got, err := SynthesizeComment(testContext(), metadataAttr(syntax.Argument{Value: syntax.Str(`a\nb`)}))
	require.NoError(t, err)
	assert.Equal(t, `/// @Metadata: a\nb`, got.Source())
}
