package render

import (
	"fmt"

	"github.com/tinoworks/tinomacro/internal/config"
)

const SwiftName = "swift"

// Swift renders the text a Swift compiler plugin expects back.
type Swift struct {
	comments
	conformance string
}

func NewSwift(cfg config.Configuration) *Swift {
	return &Swift{
		comments:    comments{tag: cfg.Metadata.Tag},
		conformance: cfg.Equatable.Conformance,
	}
}

func (s *Swift) Name() string { return SwiftName }

func (s *Swift) Equality(typeName string, comparisons []string) string {
	return fmt.Sprintf(`extension %[1]s: %[2]s {
    public static func == (lhs: %[1]s, rhs: %[1]s) -> Bool {
        return %[3]s
    }
}`, typeName, s.conformance, conjunction(comparisons))
}

func (s *Swift) Resource(key, value string, bundle config.Bundle) string {
	return fmt.Sprintf(`LocalizedStringResource(
    %s,
    defaultValue: String.LocalizationValue(%s),
    bundle: Bundle.%s
)`, key, value, bundle)
}

func (s *Swift) Text(key string) string {
	return "Text(" + key + ", bundle: .module)"
}
