package matcher

import (
	"reflect"

	"digital.vasic.matchers/pkg/description"
)

// typeSafe gates a candidate on nil and on a conversion to T
// before handing it to a typed predicate.
type typeSafe[T any] struct {
	convert     func(any) (T, bool)
	describe    func(description.Description)
	matchSafely func(T, description.Description) bool
}

// TypeSafe builds a diagnosing matcher for candidates of type T.
// A nil candidate fails with "was null" and a candidate whose
// dynamic type is not assignable to T fails with a mismatch
// naming its type. Otherwise matchSafely decides, and whatever
// it writes to the description becomes the mismatch text.
//
// When T is an interface type any implementation is accepted,
// which is how a matcher for a general element type applies to
// containers of more specific ones.
func TypeSafe[T any](
	describe func(description.Description),
	matchSafely func(actual T, mismatch description.Description) bool,
) Diagnosing {
	return narrowing(
		func(actual any) (T, bool) {
			v, ok := actual.(T)
			return v, ok
		},
		describe,
		matchSafely,
	)
}

func narrowing[T any](
	convert func(any) (T, bool),
	describe func(description.Description),
	matchSafely func(T, description.Description) bool,
) *typeSafe[T] {
	if describe == nil || matchSafely == nil {
		panic("matcher.TypeSafe requires describe and matchSafely callbacks")
	}
	return &typeSafe[T]{
		convert:     convert,
		describe:    describe,
		matchSafely: matchSafely,
	}
}

func (m *typeSafe[T]) DescribeTo(d description.Description) {
	m.describe(d)
}

func (m *typeSafe[T]) Matches(actual any) bool {
	return m.MatchesDiagnosing(actual, description.None)
}

func (m *typeSafe[T]) DescribeMismatch(
	actual any,
	mismatch description.Description,
) {
	m.MatchesDiagnosing(actual, mismatch)
}

func (m *typeSafe[T]) MatchesDiagnosing(
	actual any,
	mismatch description.Description,
) bool {
	if description.IsNil(actual) {
		mismatch.AppendText("was null")
		return false
	}

	v, ok := m.convert(actual)
	if !ok {
		mismatch.AppendText("was a ").
			AppendText(reflect.TypeOf(actual).String()).
			AppendText(" (").
			AppendValue(actual).
			AppendText(")")
		return false
	}

	return m.matchSafely(v, mismatch)
}
