package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/description"
)

func assertMatches(t *testing.T, m Matcher, actual any) {
	t.Helper()
	if !assert.True(t, m.Matches(actual), "expected %s to match %v", Describe(m), actual) {
		t.Logf("mismatch: %s", Mismatch(m, actual))
	}
}

func assertDoesNotMatch(t *testing.T, m Matcher, actual any) {
	t.Helper()
	assert.False(t, m.Matches(actual), "expected %s not to match %v", Describe(m), actual)
}

func assertDescription(t *testing.T, expected string, m Matcher) {
	t.Helper()
	assert.Equal(t, expected, Describe(m))
}

func assertMismatchDescription(t *testing.T, expected string, m Matcher, actual any) {
	t.Helper()
	assert.False(t, m.Matches(actual), "precondition: %v should not match", actual)
	assert.Equal(t, expected, Mismatch(m, actual))
}

// assertNullAndUnknownTypeSafe checks a matcher neither panics
// nor matches on nil and on a value of an unrelated type.
func assertNullAndUnknownTypeSafe(t *testing.T, m Matcher) {
	t.Helper()
	type unknown struct{}
	assert.NotPanics(t, func() {
		m.Matches(nil)
		m.Matches(unknown{})
		m.DescribeMismatch(nil, description.New())
		m.DescribeMismatch(unknown{}, description.New())
	})
}

// mismatchable succeeds for want and otherwise explains itself
// as "mismatched: <item>".
func mismatchable(want string) Matcher {
	return TypeSafe[string](
		func(d description.Description) {
			d.AppendText("mismatchable: " + want)
		},
		func(item string, mismatch description.Description) bool {
			if item == want {
				return true
			}
			mismatch.AppendText("mismatched: " + item)
			return false
		},
	)
}
