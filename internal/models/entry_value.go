package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrUnsupportedValue is returned when a column value is neither a number nor a string.
var ErrUnsupportedValue = errors.New("value must be a number or a string")

// ValueKind discriminates the variants of EntryValue.
type ValueKind uint8

// Supported value kinds
const (
	KindNumber ValueKind = iota + 1
	KindText
)

// EntryValue is the value of a column entry: either a number or a piece of text.
// Only numeric values take part in statistics and net profit.
type EntryValue struct {
	kind   ValueKind
	number float64
	text   string
}

// NumberValue returns a numeric EntryValue.
func NumberValue(v float64) EntryValue {
	return EntryValue{kind: KindNumber, number: v}
}

// TextValue returns a textual EntryValue.
func TextValue(v string) EntryValue {
	return EntryValue{kind: KindText, text: v}
}

// Kind returns the variant of the value. The zero EntryValue has kind 0.
func (v EntryValue) Kind() ValueKind { return v.kind }

// IsZero reports whether the value was never set.
func (v EntryValue) IsZero() bool { return v.kind == 0 }

// Number returns the numeric value and whether the value is numeric.
func (v EntryValue) Number() (float64, bool) {
	return v.number, v.kind == KindNumber
}

// Text returns the textual value and whether the value is text.
func (v EntryValue) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// String renders the value for logs.
func (v EntryValue) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v EntryValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.number)
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (v *EntryValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = EntryValue{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*v = NumberValue(f)
		return nil
	default:
		return ErrUnsupportedValue
	}
}
