package logkv

import (
	"encoding/json"
	"fmt"
	"time"
)

// Valuer is an optional interface that types implement to provide their own
// log representation. AnyValue uses the returned Value instead of erasing
// the original.
type Valuer interface {
	LogValue() Value
}

// AnyValue captures an arbitrary value.
//
// Known scalar types become primitives with lossless widening; pointers to
// scalars capture their pointee, or the absent value when nil (the Option
// analogue); time values capture through their display form; errors,
// marshalers, and stringers capture with their respective erased kinds,
// recoverable via Downcast. Anything else is captured via CaptureDebug.
//
// Interface hooks are consulted in a fixed order: Valuer first, then Filler,
// error, json.Marshaler, fmt.Stringer.
func AnyValue(v any) Value {
	if p, ok := toPrimitive(v); ok {
		return Value{prim: p}
	}

	switch v := v.(type) {
	case Value:
		return v
	case time.Duration:
		return CaptureDisplay(v)
	case time.Time:
		return CaptureDisplay(v)
	case *bool:
		if v == nil {
			return NoneValue()
		}
		return BoolValue(*v)
	case *string:
		if v == nil {
			return NoneValue()
		}
		return StringValue(*v)
	case *int:
		if v == nil {
			return NoneValue()
		}
		return IntValue(*v)
	case *int64:
		if v == nil {
			return NoneValue()
		}
		return Int64Value(*v)
	case *uint64:
		if v == nil {
			return NoneValue()
		}
		return Uint64Value(*v)
	case *float64:
		if v == nil {
			return NoneValue()
		}
		return Float64Value(*v)
	case *time.Duration:
		if v == nil {
			return NoneValue()
		}
		return CaptureDisplay(*v)
	case Valuer:
		return v.LogValue()
	case Filler:
		return FromFill(v)
	case error:
		return CaptureError(v)
	case json.Marshaler:
		return CaptureMarshaler(v)
	case fmt.Stringer:
		return CaptureDisplay(v)
	default:
		return CaptureDebug(v)
	}
}
