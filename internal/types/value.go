// Package types provides core data structures for FITS header metadata.
//
// This package defines the Header, Keyword, and Value types that represent
// a parsed FITS header, plus the typed errors the engine reports.
package types

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindString is a quoted string value.
	KindString Kind = iota
	// KindInteger is a signed 64-bit integer value.
	KindInteger
	// KindFloat is a 64-bit floating-point value.
	KindFloat
	// KindBool is a logical value (T or F in card text).
	KindBool
	// KindNull is an explicitly empty or NULL value.
	KindNull
	// KindInvalid marks a value whose card text could not be coerced.
	KindInvalid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindInvalid:
		return "Invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a FITS keyword value.
//
// Value is a closed tagged union: exactly one of the six kinds holds at a
// time. Use Kind() to discriminate and the typed accessors to extract the
// payload. The zero Value is an empty String.
type Value struct {
	str  string
	num  int64
	real float64
	flag bool
	kind Kind
}

// StringValue returns a Value holding a string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntegerValue returns a Value holding a signed 64-bit integer.
func IntegerValue(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// FloatValue returns a Value holding a 64-bit float.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// BoolValue returns a Value holding a logical.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// NullValue returns the explicit NULL value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// InvalidValue returns the coercion-failure marker value.
func InvalidValue() Value {
	return Value{kind: KindInvalid}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string payload. ok is false unless Kind is KindString.
func (v Value) Str() (s string, ok bool) {
	return v.str, v.kind == KindString
}

// Int returns the integer payload. ok is false unless Kind is KindInteger.
func (v Value) Int() (i int64, ok bool) {
	return v.num, v.kind == KindInteger
}

// Float returns the float payload. ok is false unless Kind is KindFloat.
func (v Value) Float() (f float64, ok bool) {
	return v.real, v.kind == KindFloat
}

// Bool returns the logical payload. ok is false unless Kind is KindBool.
func (v Value) Bool() (b bool, ok bool) {
	return v.flag, v.kind == KindBool
}

// IsNull reports whether the value is the explicit NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsInvalid reports whether the value is the coercion-failure marker.
func (v Value) IsInvalid() bool {
	return v.kind == KindInvalid
}

// String renders the value the way it would appear in card text:
// logicals as T/F, NULL and INVALID as those literals.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindBool:
		if v.flag {
			return "T"
		}
		return "F"
	case KindNull:
		return "NULL"
	default:
		return "INVALID"
	}
}

// MarshalJSON maps each variant to its natural JSON type.
// Null and Invalid both serialize as JSON null; use the Keyword valid
// flag to tell them apart.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInteger:
		return json.Marshal(v.num)
	case KindFloat:
		return json.Marshal(v.real)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}
