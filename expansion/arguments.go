package expansion

import (
	"fmt"

	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/syntax"
)

// PositionRule describes one required argument.
type PositionRule struct {
	// StringLiteral requires the argument to be a string literal.
	StringLiteral bool
	// Mismatch is the message reported when StringLiteral is violated.
	Mismatch string
}

// EnumValue is one canonical value of an enumerated argument together with
// every source spelling that selects it.
type EnumValue struct {
	Canonical string
	Spellings []string
}

// EnumRule describes an optional labeled argument with a closed domain.
type EnumRule struct {
	Label   string
	Values  []EnumValue
	Default string
	// Unsupported is a format string receiving the rejected source text.
	Unsupported string
}

// ArgumentRules parameterize ValidateArguments.
type ArgumentRules struct {
	Positions []PositionRule
	// Insufficient is reported when fewer arguments than Positions are given.
	Insufficient string
	Enum         *EnumRule
}

// ExtractedArguments is the result of a successful validation.
type ExtractedArguments struct {
	// Positional holds one expression per PositionRule, in order.
	Positional []syntax.Expr
	// Enum is the canonical value of the enumerated argument, or the rule's
	// default when it was omitted.
	Enum string
}

// ValidateArguments checks args against rules. Checks run in a fixed order:
// the argument count, then the literal requirement of each position in
// declaration order, then the lookup of the enumerated argument.
//
// Positions are filled by the arguments that are not the enumerated labeled
// argument, in the order they were written. Any label they carry is
// documentation only.
func ValidateArguments(node syntax.NodeID, args []syntax.Argument, rules ArgumentRules) (ExtractedArguments, error) {
	var enumArg *syntax.Argument
	fill := make([]syntax.Expr, 0, len(args))
	for i := range args {
		if rules.Enum != nil && args[i].Label == rules.Enum.Label {
			if enumArg == nil {
				enumArg = &args[i]
			}
			continue
		}
		fill = append(fill, args[i].Value)
	}

	if len(fill) < len(rules.Positions) {
		return ExtractedArguments{}, diagnostic.New(diagnostic.InsufficientArguments, node, rules.Insufficient)
	}

	extracted := ExtractedArguments{
		Positional: fill[:len(rules.Positions)],
	}

	for i, position := range rules.Positions {
		if position.StringLiteral && !syntax.IsStringLiteral(extracted.Positional[i]) {
			return ExtractedArguments{}, diagnostic.Mismatch(node, i, position.Mismatch)
		}
	}

	if rules.Enum == nil {
		return extracted, nil
	}

	if enumArg == nil {
		extracted.Enum = rules.Enum.Default
		return extracted, nil
	}

	canonical, err := normalizeEnum(node, syntax.Source(enumArg.Value), rules.Enum)
	if err != nil {
		return ExtractedArguments{}, err
	}
	extracted.Enum = canonical
	return extracted, nil
}

// normalizeEnum maps the trimmed source text of an enumerated argument to its
// canonical value.
func normalizeEnum(node syntax.NodeID, text string, rule *EnumRule) (string, error) {
	for _, value := range rule.Values {
		for _, spelling := range value.Spellings {
			if spelling == text {
				return value.Canonical, nil
			}
		}
	}
	return "", diagnostic.Unsupported(node, text, fmt.Sprintf(rule.Unsupported, text))
}
