// Package expect turns a failed match into a test failure whose
// message states what was expected and why the value fell short.
package expect

import (
	"errors"
	"strings"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// TestingT is the subset of testing.T the assertions use. It is
// an interface so the assertions themselves can be tested.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Failure reports a value that did not satisfy a matcher.
type Failure struct {
	// Reason is the optional caller-supplied context.
	Reason string

	// Expected is the matcher's description.
	Expected string

	// Mismatch explains why the value failed.
	Mismatch string
}

// Error composes the failure message:
//
//	reason
//	Expected: <expectation>
//	     but: <mismatch>
func (f *Failure) Error() string {
	var b strings.Builder
	if f.Reason != "" {
		b.WriteString(f.Reason)
		b.WriteString("\n")
	}
	b.WriteString("Expected: ")
	b.WriteString(f.Expected)
	b.WriteString("\n     but: ")
	b.WriteString(f.Mismatch)
	return b.String()
}

// IsFailure reports whether err is, or wraps, a *Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// Check returns nil when m matches actual and a *Failure
// otherwise. The answer and the mismatch come from one traversal
// of actual, so channels and one-shot sequences are reported on
// the elements they actually held.
func Check(reason string, actual any, m matcher.Matcher) error {
	mismatch := description.New()
	if matcher.Diagnose(m, actual, mismatch) {
		return nil
	}

	return &Failure{
		Reason:   reason,
		Expected: matcher.Describe(m),
		Mismatch: mismatch.String(),
	}
}

// That reports a test error when m does not match actual and
// returns whether it matched.
func That(t TestingT, actual any, m matcher.Matcher) bool {
	t.Helper()
	return ThatReason(t, "", actual, m)
}

// ThatReason is That with a reason prepended to the failure
// message.
func ThatReason(
	t TestingT,
	reason string,
	actual any,
	m matcher.Matcher,
) bool {
	t.Helper()
	if err := Check(reason, actual, m); err != nil {
		t.Errorf("%s", err.Error())
		return false
	}
	return true
}

// Must is That followed by FailNow on failure.
func Must(t TestingT, actual any, m matcher.Matcher) {
	t.Helper()
	if !ThatReason(t, "", actual, m) {
		t.FailNow()
	}
}
