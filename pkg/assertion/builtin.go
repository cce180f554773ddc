package assertion

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// buildEqualTo compares the target with Value.
func buildEqualTo(def Definition) (matcher.Matcher, error) {
	return matcher.EqualTo(def.Value), nil
}

// buildHasItem requires the target to be an iterable holding
// Value.
func buildHasItem(def Definition) (matcher.Matcher, error) {
	return matcher.HasItem(def.Value), nil
}

// buildHasItems requires the target to be an iterable holding
// every entry of Values.
func buildHasItems(def Definition) (matcher.Matcher, error) {
	if len(def.Values) == 0 {
		return nil, fmt.Errorf(
			"%s requires at least one entry in values", def.Type,
		)
	}
	return matcher.HasItems(def.Values...), nil
}
