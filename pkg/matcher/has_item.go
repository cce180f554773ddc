package matcher

import (
	"iter"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/iterable"
)

type hasItem struct {
	element Matcher
}

// HasItem returns a matcher that is satisfied by any iterable
// (see iterable.Of) with at least one element satisfying
// expected. A Matcher argument is used as the element matcher;
// any other value is compared with EqualTo.
func HasItem(expected any) Matcher {
	return HasItemMatching(lift(expected))
}

// HasItemMatching is the explicit form of HasItem. It panics if
// element is nil.
//
// The candidate is iterated once. Every element is offered to
// element until one matches; when none does, the mismatch lists
// the element matcher's explanation for each of them.
func HasItemMatching(element Matcher) Diagnosing {
	if element == nil {
		panic("matcher.HasItemMatching requires an element matcher")
	}
	h := &hasItem{element: element}
	return narrowing(iterable.Of, h.describeTo, h.matchesSafely)
}

func (h *hasItem) describeTo(d description.Description) {
	d.AppendText("a collection containing ").
		AppendDescriptionOf(h.element)
}

func (h *hasItem) matchesSafely(
	items iter.Seq[any],
	mismatch description.Description,
) bool {
	explain := !description.IsNull(mismatch)
	mismatches := description.New()
	empty := true

	for item := range items {
		var itemMismatch description.Description = description.None
		if explain {
			itemMismatch = description.New()
		}
		if Diagnose(h.element, item, itemMismatch) {
			return true
		}
		if !empty {
			mismatches.AppendText(", ")
		}
		empty = false
		mismatches.AppendText(itemMismatch.String())
	}

	if empty {
		mismatch.AppendText("was empty")
		return false
	}

	mismatch.AppendText("mismatches were: [").
		AppendText(mismatches.String()).
		AppendText("]")
	return false
}
