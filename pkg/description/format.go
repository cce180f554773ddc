package description

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"digital.vasic.matchers/pkg/iterable"
)

// Char marks a rune that should be rendered as a character
// ('a') rather than as the integer Go stores it as.
type Char rune

// FormatValue renders v the way AppendValue does:
//
//	"text"      strings, quoted with \" \\ \n \r \t escaped
//	'c'         Char values
//	<3> <4.0>   integer and floating point numbers
//	null        nil, nil pointers, nil interfaces
//	[a, b]      slices, arrays and iter.Seq values, recursively
//	<v>         anything else, via fmt's %v (Stringer honoured)
func FormatValue(v any) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

// IsNil reports whether v is nil or a nil pointer, interface,
// channel or function. Nil slices and maps are not considered
// nil: they are empty containers.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// maxDepth bounds how deeply nested collections are rendered.
const maxDepth = 32

// formatter tracks the slices being rendered so that a slice
// containing itself renders as [...] instead of recursing.
type formatter struct {
	b     *strings.Builder
	depth int
	open  map[sliceKey]struct{}
}

type sliceKey struct {
	ptr uintptr
	len int
}

func writeValue(b *strings.Builder, v any) {
	f := formatter{b: b}
	f.value(v)
}

func (f *formatter) value(v any) {
	b := f.b
	if IsNil(v) {
		b.WriteString("null")
		return
	}

	switch x := v.(type) {
	case string:
		writeQuoted(b, x, '"')
		return
	case Char:
		writeQuoted(b, string(rune(x)), '\'')
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		if _, ok := v.(fmt.Stringer); !ok {
			b.WriteString("<" + strconv.FormatInt(rv.Int(), 10) + ">")
			return
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if _, ok := v.(fmt.Stringer); !ok {
			b.WriteString("<" + strconv.FormatUint(rv.Uint(), 10) + ">")
			return
		}
	case reflect.Float32, reflect.Float64:
		b.WriteString("<" + formatFloat(rv.Float(), rv.Type().Bits()) + ">")
		return
	case reflect.Slice, reflect.Array:
		f.seq(rv, v)
		return
	case reflect.Func:
		if iterable.IsSeqFunc(rv.Type()) {
			f.seq(rv, v)
			return
		}
	}

	fmt.Fprintf(b, "<%v>", v)
}

func (f *formatter) seq(rv reflect.Value, v any) {
	if f.depth >= maxDepth {
		f.b.WriteString("[...]")
		return
	}
	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		key := sliceKey{ptr: rv.Pointer(), len: rv.Len()}
		if _, ok := f.open[key]; ok {
			f.b.WriteString("[...]")
			return
		}
		if f.open == nil {
			f.open = make(map[sliceKey]struct{})
		}
		f.open[key] = struct{}{}
		defer delete(f.open, key)
	}

	f.depth++
	defer func() { f.depth-- }()

	seq, _ := iterable.Of(v)
	f.b.WriteByte('[')
	first := true
	for e := range seq {
		if !first {
			f.b.WriteString(", ")
		}
		first = false
		f.value(e)
	}
	f.b.WriteByte(']')
}

// formatFloat always keeps a decimal point or exponent so that
// 4 renders as 4.0.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}

func writeQuoted(b *strings.Builder, s string, quote byte) {
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '"':
			if quote == '"' {
				b.WriteString(`\"`)
			} else {
				b.WriteRune(r)
			}
		case '\'':
			if quote == '\'' {
				b.WriteString(`\'`)
			} else {
				b.WriteRune(r)
			}
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
}
