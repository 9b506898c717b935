package expansion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

var testRules = ArgumentRules{
	Positions: []PositionRule{
		{StringLiteral: true, Mismatch: "first must be a literal"},
		{StringLiteral: false},
		{StringLiteral: true, Mismatch: "third must be a literal"},
	},
	Insufficient: "need three",
	Enum: &EnumRule{
		Label: "mode",
		Values: []EnumValue{
			{Canonical: "fast", Spellings: []string{".fast", "Mode.fast"}},
			{Canonical: "slow", Spellings: []string{".slow", "Mode.slow"}},
		},
		Default:     "slow",
		Unsupported: "unsupported mode %s",
	},
}

func asDiagnostic(t *testing.T, err error) *diagnostic.Diagnostic {
	t.Helper()
	var d *diagnostic.Diagnostic
	require.True(t, errors.As(err, &d), "expected a diagnostic, got %v", err)
	return d
}

func TestValidateArguments(t *testing.T) {
	lit := syntax.Str("x")
	ident := syntax.Ident("y")

	tests := []struct {
		name      string
		args      []syntax.Argument
		wantKind  diagnostic.Kind
		wantMsg   string
		wantPos   int
		wantEnum  string
		wantValue string
	}{
		{
			name:     "too few arguments is checked before types",
			args:     []syntax.Argument{{Value: ident}, {Value: ident}},
			wantKind: diagnostic.InsufficientArguments,
			wantMsg:  "need three",
		},
		{
			name:     "enumerated argument does not fill a position",
			args:     []syntax.Argument{{Value: lit}, {Value: lit}, {Label: "mode", Value: &syntax.MemberAccess{Member: "fast"}}},
			wantKind: diagnostic.InsufficientArguments,
			wantMsg:  "need three",
		},
		{
			name:     "first mismatch wins",
			args:     []syntax.Argument{{Value: ident}, {Value: ident}, {Value: ident}},
			wantKind: diagnostic.ArgumentTypeMismatch,
			wantMsg:  "first must be a literal",
			wantPos:  0,
		},
		{
			name:     "later mismatch",
			args:     []syntax.Argument{{Value: lit}, {Value: ident}, {Value: &syntax.Other{Text: "3"}}},
			wantKind: diagnostic.ArgumentTypeMismatch,
			wantMsg:  "third must be a literal",
			wantPos:  2,
		},
		{
			name:     "type checks run before the enum lookup",
			args:     []syntax.Argument{{Value: ident}, {Value: lit}, {Value: lit}, {Label: "mode", Value: ident}},
			wantKind: diagnostic.ArgumentTypeMismatch,
			wantMsg:  "first must be a literal",
		},
		{
			name:      "unsupported enumerated value",
			args:      []syntax.Argument{{Value: lit}, {Value: lit}, {Value: lit}, {Label: "mode", Value: syntax.Ident("turbo")}},
			wantKind:  diagnostic.UnsupportedEnumValue,
			wantMsg:   "unsupported mode turbo",
			wantValue: "turbo",
		},
		{
			name:     "omitted enumerated argument uses the default",
			args:     []syntax.Argument{{Value: lit}, {Value: ident}, {Value: lit}},
			wantEnum: "slow",
		},
		{
			name:     "bare spelling",
			args:     []syntax.Argument{{Value: lit}, {Value: ident}, {Value: lit}, {Label: "mode", Value: &syntax.MemberAccess{Member: "fast"}}},
			wantEnum: "fast",
		},
		{
			name:     "qualified spelling and documentation labels",
			args:     []syntax.Argument{{Label: "mode", Value: &syntax.MemberAccess{Base: syntax.Ident("Mode"), Member: "fast"}}, {Value: lit}, {Label: "other", Value: ident}, {Value: lit}},
			wantEnum: "fast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateArguments(9, tt.args, testRules)
			if tt.wantKind == diagnostic.Unknown {
				require.NoError(t, err)
				assert.Len(t, got.Positional, 3)
				assert.Equal(t, tt.wantEnum, got.Enum)
				return
			}

			d := asDiagnostic(t, err)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantMsg, d.Message)
			assert.Equal(t, tt.wantPos, d.Position)
			assert.Equal(t, tt.wantValue, d.Value)
			assert.Equal(t, syntax.NodeID(9), d.Node)
			assert.Equal(t, diagnostic.SevError, d.Severity)
		})
	}
}

func TestValidateArgumentsFirstEnumArgumentWins(t *testing.T) {
	args := []syntax.Argument{
		{Value: syntax.Str("a")}, {Value: syntax.Str("b")}, {Value: syntax.Str("c")},
		{Label: "mode", Value: &syntax.MemberAccess{Member: "fast"}},
		{Label: "mode", Value: syntax.Ident("bogus")},
	}

	got, err := ValidateArguments(0, args, testRules)
	require.NoError(t, err)
	assert.Equal(t, "fast", got.Enum)
}

func TestValidateArgumentsWithoutEnum(t *testing.T) {
	rules := ArgumentRules{
		Positions:    []PositionRule{{StringLiteral: true, Mismatch: "literal"}},
		Insufficient: "need one",
	}

	got, err := ValidateArguments(0, []syntax.Argument{{Value: syntax.Str("a")}, {Label: "mode", Value: syntax.Ident("x")}}, rules)
	require.NoError(t, err)
	assert.Equal(t, []syntax.Expr{syntax.Str("a")}, got.Positional)
	assert.Equal(t, "", got.Enum)

	_, err = ValidateArguments(0, nil, rules)
	assert.Equal(t, diagnostic.InsufficientArguments, asDiagnostic(t, err).Kind)
}
