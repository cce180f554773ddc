package matcher

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/iterable"
)

type hasItems struct {
	items []Matcher
}

// HasItems returns a matcher that is satisfied by an iterable
// containing, in any order and among any other elements, an item
// for each argument. Arguments are lifted as in HasItem. The
// requirements are checked in argument order and the mismatch
// reports the first unsatisfied one, followed by why it failed.
//
// A channel or sequence function is collected once before the
// requirements are checked, so each of them sees every element.
//
// HasItems panics when called without arguments.
func HasItems(expected ...any) Diagnosing {
	if len(expected) == 0 {
		panic("matcher.HasItems requires at least one expected item")
	}
	items := make([]Matcher, len(expected))
	for i, e := range expected {
		items[i] = HasItemMatching(lift(e))
	}
	return &hasItems{items: items}
}

func (m *hasItems) DescribeTo(d description.Description) {
	described := make([]description.SelfDescribing, len(m.items))
	for i, item := range m.items {
		described[i] = item
	}
	d.AppendList("(", " and ", ")", described...)
}

func (m *hasItems) Matches(actual any) bool {
	actual = iterable.Replayable(actual)
	for _, item := range m.items {
		if !item.Matches(actual) {
			return false
		}
	}
	return true
}

func (m *hasItems) DescribeMismatch(
	actual any,
	mismatch description.Description,
) {
	m.MatchesDiagnosing(actual, mismatch)
}

func (m *hasItems) MatchesDiagnosing(
	actual any,
	mismatch description.Description,
) bool {
	actual = iterable.Replayable(actual)
	for _, item := range m.items {
		itemMismatch := description.New()
		if !Diagnose(item, actual, itemMismatch) {
			mismatch.AppendDescriptionOf(item).
				AppendText(" ").
				AppendText(itemMismatch.String())
			return false
		}
	}
	return true
}
