package description

// None is a shared NullDescription.
var None Description = NullDescription{}

// NullDescription discards everything written to it. Pass it
// when only the match decision is needed.
type NullDescription struct{}

// AppendText is a no-op.
func (n NullDescription) AppendText(_ string) Description { return n }

// AppendValue is a no-op.
func (n NullDescription) AppendValue(_ any) Description { return n }

// AppendValueList is a no-op.
func (n NullDescription) AppendValueList(
	_, _, _ string, _ ...any,
) Description {
	return n
}

// AppendList is a no-op.
func (n NullDescription) AppendList(
	_, _, _ string, _ ...SelfDescribing,
) Description {
	return n
}

// AppendDescriptionOf is a no-op.
func (n NullDescription) AppendDescriptionOf(
	_ SelfDescribing,
) Description {
	return n
}

// String always returns the empty string.
func (NullDescription) String() string { return "" }

// IsNull reports whether d discards its input.
func IsNull(d Description) bool {
	_, ok := d.(NullDescription)
	return ok
}
