package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/description"
)

func TestHasItems_MatchesMultipleItemsInCollection(t *testing.T) {
	m1 := HasItems(EqualTo("a"), EqualTo("b"), EqualTo("c"))
	assertMatches(t, m1, []string{"a", "b", "c"})

	m2 := HasItems("a", "b", "c")
	assertMatches(t, m2, []string{"a", "b", "c"})

	m3 := HasItems(EqualTo("a"), EqualTo("b"), EqualTo("c"))
	assertMatches(t, m3, []string{"c", "b", "a"})

	m4 := HasItems(EqualTo("a"), EqualTo("b"), EqualTo("c"))
	assertMatches(t, m4, []string{"e", "c", "b", "a", "d"})

	m5 := HasItems(EqualTo("a"), EqualTo("b"), EqualTo("c"))
	assertDoesNotMatch(t, m5, []string{"e", "c", "b", "d"})
}

func TestHasItems_ReportsFirstUnsatisfiedItem(t *testing.T) {
	m := HasItems(3, 4)

	assertMismatchDescription(t,
		"a collection containing <4> mismatches were: [was <1>, was <2>, was <3>]",
		m, []int{1, 2, 3})
}

func TestHasItems_ReportsInConstructionOrder(t *testing.T) {
	m := HasItems("x", "y")

	assertMismatchDescription(t,
		`a collection containing "x" mismatches were: [was "a"]`,
		m, []string{"a"})
}

func TestHasItems_Description(t *testing.T) {
	assertDescription(t,
		`(a collection containing "a" and a collection containing "b")`,
		HasItems("a", "b"))
	assertDescription(t,
		"(a collection containing mismatchable: a)",
		HasItems(mismatchable("a")))
}

func TestHasItems_NullAndEmpty(t *testing.T) {
	m := HasItems("a", "b")

	assertMismatchDescription(t, `a collection containing "a" was null`, m, nil)
	assertMismatchDescription(t, `a collection containing "a" was empty`, m, []string{})
	assertNullAndUnknownTypeSafe(t, m)
}

func TestHasItems_IsConjunctionOfHasItem(t *testing.T) {
	candidates := [][]int{
		{},
		{1},
		{1, 2},
		{2, 3, 1},
		{4, 4, 4},
	}
	expected := []any{1, 2}

	for _, xs := range candidates {
		all := true
		for _, e := range expected {
			all = all && HasItem(e).Matches(xs)
		}
		assert.Equal(t, all, HasItems(expected...).Matches(xs), "candidate %v", xs)
	}
}

func TestHasItems_OrderOfMatchersIsImmaterial(t *testing.T) {
	candidates := [][]string{
		{"a", "b", "c"},
		{"c"},
		{"b", "a"},
		{},
	}

	for _, xs := range candidates {
		forward := HasItems("a", "b", "c").Matches(xs)
		assert.Equal(t, forward, HasItems("c", "a", "b").Matches(xs), "candidate %v", xs)
		assert.Equal(t, forward, HasItems("b", "c", "a").Matches(xs), "candidate %v", xs)
	}
}

func TestHasItems_PanicsWithoutArguments(t *testing.T) {
	assert.Panics(t, func() { HasItems() })
}

func chanOf(values ...int) <-chan int {
	ch := make(chan int, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)
	return ch
}

func TestHasItems_ChannelOrderOfMatchersIsImmaterial(t *testing.T) {
	assert.True(t, HasItems(1, 2).Matches(chanOf(1, 2)))
	assert.True(t, HasItems(2, 1).Matches(chanOf(1, 2)))
	assert.False(t, HasItems(3, 1).Matches(chanOf(1, 2)))
	assert.False(t, HasItems(1, 3).Matches(chanOf(1, 2)))
}

func TestHasItems_ChannelIsConjunctionOfHasItem(t *testing.T) {
	candidates := [][]int{{}, {1}, {1, 2}, {2, 3, 1}, {4, 4, 4}}
	expected := []any{2, 1}

	for _, xs := range candidates {
		all := true
		for _, e := range expected {
			all = all && HasItem(e).Matches(chanOf(xs...))
		}
		assert.Equal(t, all, HasItems(expected...).Matches(chanOf(xs...)), "candidate %v", xs)
	}
}

func TestHasItems_ChannelMismatchSeesEveryElement(t *testing.T) {
	d := description.New()
	ok := HasItems(1, 4).MatchesDiagnosing(chanOf(1, 2, 3), d)

	assert.False(t, ok)
	assert.Equal(t,
		"a collection containing <4> mismatches were: [was <1>, was <2>, was <3>]",
		d.String())
}

func TestHasItems_OneShotSeq(t *testing.T) {
	used := false
	seq := func(yield func(string) bool) {
		if used {
			return
		}
		used = true
		for _, s := range []string{"a", "b"} {
			if !yield(s) {
				return
			}
		}
	}

	assert.True(t, HasItems("b", "a").Matches(seq))
}
