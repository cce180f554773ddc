// Package description provides the append-only text sink that
// matchers write their expectations and mismatch explanations
// into.
package description

import "strings"

// SelfDescribing is implemented by anything that can write a
// description of itself, most notably matchers.
type SelfDescribing interface {
	// DescribeTo appends the receiver's description to d.
	DescribeTo(d Description)
}

// Description accumulates human-readable text. Every Append
// method returns the receiver so calls can be chained. A
// Description is not safe for concurrent use.
type Description interface {
	// AppendText appends s verbatim.
	AppendText(s string) Description

	// AppendValue appends v rendered by FormatValue.
	AppendValue(v any) Description

	// AppendValueList appends values rendered by FormatValue,
	// separated by sep and enclosed in start and end.
	AppendValueList(start, sep, end string, values ...any) Description

	// AppendList appends the self-descriptions of items,
	// separated by sep and enclosed in start and end.
	AppendList(start, sep, end string, items ...SelfDescribing) Description

	// AppendDescriptionOf appends the self-description of item.
	AppendDescriptionOf(item SelfDescribing) Description

	// String returns the text accumulated so far.
	String() string
}

// StringDescription is the default Description, backed by a
// strings.Builder. The zero value is ready to use.
type StringDescription struct {
	buf strings.Builder
}

// New returns an empty StringDescription.
func New() *StringDescription {
	return &StringDescription{}
}

// ToString returns the self-description of item as a string.
func ToString(item SelfDescribing) string {
	d := New()
	d.AppendDescriptionOf(item)
	return d.String()
}

// AppendText appends s verbatim.
func (d *StringDescription) AppendText(s string) Description {
	d.buf.WriteString(s)
	return d
}

// AppendValue appends v rendered by FormatValue.
func (d *StringDescription) AppendValue(v any) Description {
	writeValue(&d.buf, v)
	return d
}

// AppendValueList appends a delimited sequence of values.
func (d *StringDescription) AppendValueList(
	start, sep, end string,
	values ...any,
) Description {
	d.buf.WriteString(start)
	for i, v := range values {
		if i > 0 {
			d.buf.WriteString(sep)
		}
		writeValue(&d.buf, v)
	}
	d.buf.WriteString(end)
	return d
}

// AppendList appends a delimited sequence of self-descriptions.
func (d *StringDescription) AppendList(
	start, sep, end string,
	items ...SelfDescribing,
) Description {
	d.buf.WriteString(start)
	for i, item := range items {
		if i > 0 {
			d.buf.WriteString(sep)
		}
		d.AppendDescriptionOf(item)
	}
	d.buf.WriteString(end)
	return d
}

// AppendDescriptionOf asks item to describe itself into d.
func (d *StringDescription) AppendDescriptionOf(
	item SelfDescribing,
) Description {
	if item == nil {
		d.buf.WriteString("null")
		return d
	}
	item.DescribeTo(d)
	return d
}

// String returns the accumulated text.
func (d *StringDescription) String() string {
	return d.buf.String()
}
