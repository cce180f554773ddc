// Package iterable adapts the container shapes Go code hands to a
// matcher (slices, arrays, maps, channels and range-over-func
// sequences) into a single element sequence.
package iterable

import (
	"iter"
	"reflect"
)

var boolType = reflect.TypeOf(true)

// Of returns a sequence over the elements of v and true when v is
// iterable. Slices, arrays and pointers to arrays yield their
// elements in index order. Maps yield their values; use
// maps.Keys to match against the keys of a set. A channel is
// drained until closed, so it can be ranged over only once.
// Functions of the shape func(yield func(V) bool) are treated as
// iter.Seq values. Strings are values, not iterables.
//
// Nil slices and nil maps are empty sequences. A nil pointer, nil
// channel or nil function is not iterable.
func Of(v any) (iter.Seq[any], bool) {
	if v == nil {
		return nil, false
	}
	if seq, ok := v.(iter.Seq[any]); ok {
		return seq, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return indexed(rv), true
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Array {
			return nil, false
		}
		return indexed(rv.Elem()), true
	case reflect.Map:
		return mapValues(rv), true
	case reflect.Chan:
		if rv.IsNil() || rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, false
		}
		return received(rv), true
	case reflect.Func:
		if rv.IsNil() || !IsSeqFunc(rv.Type()) {
			return nil, false
		}
		return yielded(rv), true
	}

	return nil, false
}

// IsSeqFunc reports whether t has the shape of iter.Seq[V] for
// some V.
func IsSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0) == boolType
}

func indexed(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func mapValues(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		it := rv.MapRange()
		for it.Next() {
			if !yield(it.Value().Interface()) {
				return
			}
		}
	}
}

func received(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := rv.Recv()
			if !ok {
				return
			}
			if !yield(v.Interface()) {
				return
			}
		}
	}
}

func yielded(rv reflect.Value) iter.Seq[any] {
	yieldType := rv.Type().In(0)
	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(
			yieldType,
			func(args []reflect.Value) []reflect.Value {
				return []reflect.Value{
					reflect.ValueOf(yield(args[0].Interface())),
				}
			},
		)
		rv.Call([]reflect.Value{fn})
	}
}

// SinglePass reports whether v can be ranged over only once.
// Channels are drained by iteration, and sequence functions are
// not guaranteed to replay.
func SinglePass(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Chan:
		return true
	case reflect.Func:
		return IsSeqFunc(t)
	}
	return false
}

// Replayable returns v unchanged unless it is a single-pass
// iterable, in which case its elements are collected into a
// []any that can be traversed any number of times.
func Replayable(v any) any {
	if !SinglePass(v) {
		return v
	}
	seq, ok := Of(v)
	if !ok {
		return v
	}
	items := []any{}
	for e := range seq {
		items = append(items, e)
	}
	return items
}
