// Package matcher provides composable predicates that can
// describe what they expect and explain why a value did not
// satisfy them.
package matcher

import "digital.vasic.matchers/pkg/description"

// Matcher decides whether a candidate value satisfies an
// expectation. Matchers accept any candidate; narrowing to the
// type they understand is their own concern. Implementations
// must not retain the candidate and must be safe to share
// between goroutines once constructed.
type Matcher interface {
	description.SelfDescribing

	// Matches reports whether actual satisfies the matcher.
	Matches(actual any) bool

	// DescribeMismatch writes why actual did not satisfy the
	// matcher. It is only meaningful after Matches returned
	// false for the same value.
	DescribeMismatch(actual any, mismatch description.Description)
}

// Diagnosing is implemented by matchers that explain a
// mismatch while deciding it, so one traversal of the
// candidate produces both the answer and the explanation.
type Diagnosing interface {
	Matcher

	// MatchesDiagnosing reports whether actual satisfies the
	// matcher, writing the reason into mismatch when it does
	// not.
	MatchesDiagnosing(actual any, mismatch description.Description) bool
}

// Base supplies the default DescribeMismatch. Embed it in
// matchers that have nothing more specific to say.
type Base struct{}

// DescribeMismatch writes "was " followed by the candidate.
func (Base) DescribeMismatch(
	actual any,
	mismatch description.Description,
) {
	mismatch.AppendText("was ").AppendValue(actual)
}

type funcMatcher struct {
	Base
	describe func(description.Description)
	matches  func(any) bool
}

// New builds a plain matcher from a description callback and a
// predicate. It panics if either callback is nil.
func New(
	describe func(description.Description),
	matches func(actual any) bool,
) Matcher {
	if describe == nil || matches == nil {
		panic("matcher.New requires describe and matches callbacks")
	}
	return &funcMatcher{describe: describe, matches: matches}
}

func (m *funcMatcher) DescribeTo(d description.Description) {
	m.describe(d)
}

func (m *funcMatcher) Matches(actual any) bool {
	return m.matches(actual)
}

// Diagnose evaluates m against actual and, when it does not
// match, writes the mismatch into mismatch. Diagnosing matchers
// are evaluated once; others get Matches followed by
// DescribeMismatch.
func Diagnose(
	m Matcher,
	actual any,
	mismatch description.Description,
) bool {
	if dm, ok := m.(Diagnosing); ok {
		return dm.MatchesDiagnosing(actual, mismatch)
	}
	if m.Matches(actual) {
		return true
	}
	m.DescribeMismatch(actual, mismatch)
	return false
}

// Describe returns the expectation text of m.
func Describe(m Matcher) string {
	return description.ToString(m)
}

// Mismatch returns the mismatch text m produces for actual.
func Mismatch(m Matcher, actual any) string {
	d := description.New()
	m.DescribeMismatch(actual, d)
	return d.String()
}

// lift returns expected itself when it is a Matcher and an
// equality matcher for it otherwise.
func lift(expected any) Matcher {
	if m, ok := expected.(Matcher); ok {
		return m
	}
	return EqualTo(expected)
}
