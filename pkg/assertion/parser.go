package assertion

import "strings"

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into its components. If no colon is present
// the entire string is treated as the type and value is nil.
//
// Examples:
//
//	"equal_to:ok"     -> ("equal_to", "ok")
//	"has_item"        -> ("has_item", nil)
//	"has_items:a,b"   -> ("has_items", "a,b")
func ParseAssertionString(
	s string,
) (assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}

// ParseDefinition builds a Definition for target from a compact
// assertion string. For has_items the value is split on commas
// into Values; every other type keeps it as Value.
func ParseDefinition(target, s string) Definition {
	assertionType, value := ParseAssertionString(s)
	def := Definition{Type: assertionType, Target: target}

	str, ok := value.(string)
	if assertionType == "has_items" && ok {
		for _, v := range strings.Split(str, ",") {
			def.Values = append(def.Values, strings.TrimSpace(v))
		}
		return def
	}

	def.Value = value
	return def
}
