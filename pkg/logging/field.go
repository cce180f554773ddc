package logging

import (
	"github.com/davecgh/go-spew/spew"

	"digital.vasic.matchers/pkg/description"
)

// LogField creates a Field from a key-value pair.
func LogField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StringField creates a Field with a string value.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField creates a Field with an integer value.
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// BoolField creates a Field with a boolean value.
func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates a Field for an error value. If err is nil,
// the value is set to the string "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// ValueField renders value the way matcher descriptions do, so
// log entries and failure messages agree on notation.
func ValueField(key string, value any) Field {
	return Field{Key: key, Value: description.FormatValue(value)}
}

// DumpField renders value as a full spew dump, including types
// and nested pointers. It is meant for debug entries.
func DumpField(key string, value any) Field {
	return Field{Key: key, Value: dumper.Sdump(value)}
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}
