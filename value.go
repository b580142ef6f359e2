package fitsmeta

import (
	"github.com/simonhull/fitsmeta/internal/types"
)

// Value is an alias to types.Value.
// Re-exported from internal/types to keep the public API at the root.
type Value = types.Value

// Kind is an alias to types.Kind.
// Re-exported from internal/types to keep the public API at the root.
type Kind = types.Kind

// Re-export all value kind constants.
const (
	KindString  = types.KindString
	KindInteger = types.KindInteger
	KindFloat   = types.KindFloat
	KindBool    = types.KindBool
	KindNull    = types.KindNull
	KindInvalid = types.KindInvalid
)

// StringValue returns a Value holding a string.
func StringValue(s string) Value { return types.StringValue(s) }

// IntegerValue returns a Value holding a signed 64-bit integer.
func IntegerValue(i int64) Value { return types.IntegerValue(i) }

// FloatValue returns a Value holding a 64-bit float.
func FloatValue(f float64) Value { return types.FloatValue(f) }

// BoolValue returns a Value holding a logical.
func BoolValue(b bool) Value { return types.BoolValue(b) }

// NullValue returns the explicit NULL value.
func NullValue() Value { return types.NullValue() }
