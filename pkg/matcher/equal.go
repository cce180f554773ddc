package matcher

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.matchers/pkg/description"
)

// compareAll lets cmp look inside unexported struct fields.
var compareAll = cmp.Exporter(func(reflect.Type) bool { return true })

type isEqual struct {
	Base
	expected any
}

// EqualTo returns a matcher that is satisfied by values deeply
// equal to expected. Slices and arrays of any rank compare
// element by element; types with an Equal method are compared
// with it. Values of different dynamic types are never equal,
// so EqualTo(2) matches an int but not an int64.
func EqualTo(expected any) Matcher {
	return &isEqual{expected: expected}
}

func (m *isEqual) Matches(actual any) bool {
	return cmp.Equal(actual, m.expected, compareAll)
}

func (m *isEqual) DescribeTo(d description.Description) {
	d.AppendValue(m.expected)
}
