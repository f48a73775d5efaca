package logkv

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/willibrandon/logkv/selflog"
)

// Value is a single datum attached to a log event.
//
// A Value holds exactly one of: a primitive scalar (copied into the Value
// itself, no allocation), or an erased reference to the caller's original
// value tagged with how it was captured (debug, display, error, structured,
// or fill-deferred). Copying a Value copies the tag and the reference, never
// the referent.
//
// Values are meant to live inside a single logging call: constructed at the
// call site, visited or coerced by the backend, then dropped. An erased
// Value keeps its referent alive for as long as the Value itself is kept.
//
// The zero Value is the absent value (it visits as VisitNone).
type Value struct {
	prim primitive

	// payload holds the erased capture for the non-primitive kinds:
	// any for Debug, fmt.Stringer for Display, error for Error,
	// json.Marshaler for Structured, Filler for Fill.
	payload any

	// token is the original value behind a Capture* constructor; it is what
	// Downcast recovers. From* constructors leave it nil.
	token any
}

// NoneValue returns the absent value.
func NoneValue() Value { return Value{} }

// Int64Value returns a Value for a signed integer.
func Int64Value(v int64) Value { return Value{prim: int64Primitive(v)} }

// IntValue returns a Value for an int.
func IntValue(v int) Value { return Int64Value(int64(v)) }

// Uint64Value returns a Value for an unsigned integer.
func Uint64Value(v uint64) Value { return Value{prim: uint64Primitive(v)} }

// UintValue returns a Value for a uint.
func UintValue(v uint) Value { return Uint64Value(uint64(v)) }

// Float64Value returns a Value for a floating-point number.
func Float64Value(v float64) Value { return Value{prim: float64Primitive(v)} }

// BoolValue returns a Value for a bool.
func BoolValue(v bool) Value { return Value{prim: boolPrimitive(v)} }

// RuneValue returns a Value for a single rune.
//
// rune is an alias for int32, so AnyValue captures int32 arguments as signed
// integers; rune capture is always explicit through this constructor.
func RuneValue(v rune) Value { return Value{prim: runePrimitive(v)} }

// StringValue returns a Value for a string. The string is shared, not
// copied; AsString returns the same string header back.
func StringValue(v string) Value { return Value{prim: stringPrimitive(v)} }

// FromDebug captures v for debug formatting only.
//
// Nothing is recoverable from the result besides its formatted text: both
// coercions and Downcast report absence. Use CaptureDebug when the value
// should stay recoverable.
func FromDebug(v any) Value {
	return Value{prim: primitive{kind: kindDebug}, payload: v}
}

// FromDisplay captures a fmt.Stringer for display formatting only.
// Like FromDebug, the result supports formatting but not Downcast.
func FromDisplay(v fmt.Stringer) Value {
	return Value{prim: primitive{kind: kindDisplay}, payload: v}
}

// FromError captures an error. Visitors implementing ErrorVisitor receive it
// as an error; others receive its message through VisitDebug.
func FromError(err error) Value {
	return Value{prim: primitive{kind: kindError}, payload: err}
}

// FromMarshaler captures a value that carries its own serialized form.
// Visitors implementing StructuredVisitor receive the marshaler itself;
// others receive its raw JSON text through VisitDebug.
func FromMarshaler(v json.Marshaler) Value {
	return Value{prim: primitive{kind: kindStructured}, payload: v}
}

// FromFill captures a Filler whose representation is decided at visit time.
// Each visit hands the Filler a fresh one-shot Slot.
func FromFill(f Filler) Value {
	return Value{prim: primitive{kind: kindFill}, payload: f}
}

// CaptureDebug captures v, keeping it recoverable.
//
// If v's concrete type is a known scalar it is captured as a primitive
// directly, so formatting machinery is never involved and coercions succeed.
// Otherwise v is captured for debug formatting and additionally recorded so
// Downcast can recover it. Primitive short-circuited captures carry no
// downcast token; coerce those instead.
func CaptureDebug(v any) Value {
	if p, ok := toPrimitive(v); ok {
		return Value{prim: p}
	}
	return Value{prim: primitive{kind: kindDebug}, payload: v, token: v}
}

// CaptureDisplay captures a fmt.Stringer, keeping it recoverable via
// Downcast. See CaptureDebug for the primitive short-circuit.
func CaptureDisplay(v fmt.Stringer) Value {
	if p, ok := toPrimitive(v); ok {
		return Value{prim: p}
	}
	return Value{prim: primitive{kind: kindDisplay}, payload: v, token: v}
}

// CaptureError captures an error, keeping it recoverable via Downcast.
func CaptureError(err error) Value {
	return Value{prim: primitive{kind: kindError}, payload: err, token: err}
}

// CaptureMarshaler captures a json.Marshaler, keeping it recoverable via
// Downcast. See CaptureDebug for the primitive short-circuit.
func CaptureMarshaler(v json.Marshaler) Value {
	if p, ok := toPrimitive(v); ok {
		return Value{prim: p}
	}
	return Value{prim: primitive{kind: kindStructured}, payload: v, token: v}
}

// Visit dispatches the value to exactly one method of vis.
//
// The only error a visit can produce is one returned by the visitor itself
// (or, for structured captures without a StructuredVisitor, a marshal
// failure). Fill captures invoke the Filler with a fresh Slot; the Filler's
// single fill call lands on vis like any direct capture would.
func (v Value) Visit(vis Visitor) error {
	switch v.prim.kind {
	case kindDebug:
		return vis.VisitDebug(v.payload)
	case kindDisplay:
		return visitDisplay(vis, v.payload.(fmt.Stringer))
	case kindError:
		return visitError(vis, v.payload.(error))
	case kindStructured:
		return visitStructured(vis, v.payload.(json.Marshaler))
	case kindFill:
		return v.payload.(Filler).Fill(&Slot{visitor: vis})
	default:
		return v.prim.visit(vis)
	}
}

// String renders the value as text using the same single-dispatch visit the
// structured paths use. Primitives render directly; erased captures run one
// formatting pass.
func (v Value) String() string {
	var sb strings.Builder
	if err := v.Visit(&fmtVisitor{w: &sb}); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[value] render failed: %v", err)
		}
	}
	return sb.String()
}
