package expansion

import "github.com/tinoworks/tinomacro/internal/syntax"

// expandSkipMarker generates nothing. The marker only matters to
// SynthesizeEquality, which reads it off the member's attributes.
func expandSkipMarker(Context, Site) (syntax.Generated, error) {
	return nil, nil
}
