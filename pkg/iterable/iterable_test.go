package iterable

import (
	"maps"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, v any) []any {
	t.Helper()
	seq, ok := Of(v)
	require.True(t, ok, "expected %T to be iterable", v)
	var out []any
	for e := range seq {
		out = append(out, e)
	}
	return out
}

func TestOf_Slices(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, collect(t, []string{"a", "b"}))
	assert.Equal(t, []any{1, nil}, collect(t, []any{1, nil}))
	assert.Empty(t, collect(t, []int(nil)))
}

func TestOf_Arrays(t *testing.T) {
	arr := [3]int{1, 2, 3}
	assert.Equal(t, []any{1, 2, 3}, collect(t, arr))
	assert.Equal(t, []any{1, 2, 3}, collect(t, &arr))
}

func TestOf_MapYieldsValues(t *testing.T) {
	got := collect(t, map[string]int{"a": 1, "b": 2})
	sort.Slice(got, func(i, j int) bool { return got[i].(int) < got[j].(int) })
	assert.Equal(t, []any{1, 2}, got)

	assert.Empty(t, collect(t, map[string]int(nil)))
}

func TestOf_SetKeysViaSeq(t *testing.T) {
	set := map[any]struct{}{2: {}}
	assert.Equal(t, []any{2}, collect(t, maps.Keys(set)))
}

func TestOf_Channel(t *testing.T) {
	ch := make(chan string, 2)
	ch <- "x"
	ch <- "y"
	close(ch)

	assert.Equal(t, []any{"x", "y"}, collect(t, ch))
	assert.Empty(t, collect(t, ch))

	var recvOnly <-chan string = make(chan string)
	_, ok := Of(recvOnly)
	assert.True(t, ok)

	var sendOnly chan<- string = make(chan string)
	_, ok = Of(sendOnly)
	assert.False(t, ok)
}

func TestOf_SeqFunc(t *testing.T) {
	assert.Equal(t, []any{1, 2}, collect(t, slices.Values([]int{1, 2})))

	var anySeq func(func(any) bool) = func(yield func(any) bool) {
		yield("only")
	}
	assert.Equal(t, []any{"only"}, collect(t, anySeq))
}

func TestOf_SeqStopsEarly(t *testing.T) {
	calls := 0
	seq, ok := Of(func(yield func(int) bool) {
		for i := 0; i < 10; i++ {
			calls++
			if !yield(i) {
				return
			}
		}
	})
	require.True(t, ok)

	for e := range seq {
		if e == 2 {
			break
		}
	}
	assert.Equal(t, 3, calls)
}

func TestOf_NotIterable(t *testing.T) {
	var nilChan chan int
	var nilSeq func(func(int) bool)
	var nilArr *[2]int

	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "abc"},
		{"int", 42},
		{"struct", struct{}{}},
		{"pointer to int", new(int)},
		{"nil array pointer", nilArr},
		{"nil channel", nilChan},
		{"nil seq", nilSeq},
		{"wrong func shape", func(int) bool { return true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Of(tt.value)
			assert.False(t, ok)
		})
	}
}

func TestSinglePass(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"slice", []int{1}, false},
		{"array", [1]int{1}, false},
		{"map", map[string]int{"a": 1}, false},
		{"channel", make(chan int), true},
		{"receive-only channel", (<-chan int)(make(chan int)), true},
		{"seq", slices.Values([]int{1}), true},
		{"plain func", func(int) bool { return true }, false},
		{"string", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SinglePass(tt.value))
		})
	}
}

func TestReplayable_Channel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	v := Replayable(ch)
	assert.Equal(t, []any{1, 2, 3}, v)
	assert.Equal(t, []any{1, 2, 3}, collect(t, v))
	assert.Equal(t, []any{1, 2, 3}, collect(t, v))
}

func TestReplayable_OneShotSeq(t *testing.T) {
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

	v := Replayable(seq)
	assert.Equal(t, []any{"a", "b"}, collect(t, v))
	assert.Equal(t, []any{"a", "b"}, collect(t, v))
}

func TestReplayable_LeavesOtherValues(t *testing.T) {
	var nilChan chan int
	s := []int{1, 2}

	assert.Equal(t, s, Replayable(s))
	assert.Equal(t, 7, Replayable(7))
	assert.Nil(t, Replayable(nil))
	assert.Equal(t, nilChan, Replayable(nilChan))

	empty := make(chan int)
	close(empty)
	assert.Equal(t, []any{}, Replayable(empty))
}
