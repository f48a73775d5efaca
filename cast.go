package logkv

import (
	"encoding/json"
	"fmt"

	"github.com/willibrandon/logkv/selflog"
)

// Coercions pull a concrete scalar back out of a Value. They are cheap when
// the capture was already primitive and run a single visit pass otherwise.
// A mismatch is absence, not an error: asking a string-valued Value for a
// number simply reports false.
//
// Numeric coercions are cross-kind permissive: a signed capture coerces to
// an unsigned request (and so on) using Go conversion semantics, wrapping
// and truncating the way a native conversion would.

// castVisitor recovers a primitive from an erased capture. Debug, display,
// error, and structured values have no primitive form, so their fallback
// methods leave ok unset.
type castVisitor struct {
	prim primitive
	ok   bool
}

func (c *castVisitor) VisitInt64(v int64) error {
	c.prim, c.ok = int64Primitive(v), true
	return nil
}

func (c *castVisitor) VisitUint64(v uint64) error {
	c.prim, c.ok = uint64Primitive(v), true
	return nil
}

func (c *castVisitor) VisitFloat64(v float64) error {
	c.prim, c.ok = float64Primitive(v), true
	return nil
}

func (c *castVisitor) VisitBool(v bool) error {
	c.prim, c.ok = boolPrimitive(v), true
	return nil
}

func (c *castVisitor) VisitRune(v rune) error {
	c.prim, c.ok = runePrimitive(v), true
	return nil
}

func (c *castVisitor) VisitString(v string) error {
	c.prim, c.ok = stringPrimitive(v), true
	return nil
}

func (c *castVisitor) VisitNone() error {
	c.prim, c.ok = primitive{}, true
	return nil
}

func (c *castVisitor) VisitDebug(v any) error { return nil }

// The upgrade methods are implemented as no-ops so that casting an erased
// capture never runs the caller's String, Error, or MarshalJSON.
func (c *castVisitor) VisitDisplay(fmt.Stringer) error      { return nil }
func (c *castVisitor) VisitError(error) error               { return nil }
func (c *castVisitor) VisitStructured(json.Marshaler) error { return nil }

// cast resolves the value to a primitive if it has one. Primitive captures
// return directly; erased captures (including fills) run one visit.
func (v Value) cast() (primitive, bool) {
	if v.prim.kind < kindDebug {
		return v.prim, true
	}
	var c castVisitor
	if err := v.Visit(&c); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[cast] visit failed: %v", err)
		}
		return primitive{}, false
	}
	return c.prim, c.ok
}

// AsInt64 coerces the value to an int64.
func (v Value) AsInt64() (int64, bool) {
	p, ok := v.cast()
	if !ok {
		return 0, false
	}
	switch p.kind {
	case kindInt64:
		return p.int64(), true
	case kindUint64:
		return int64(p.uint64()), true
	case kindFloat64:
		return int64(p.float64()), true
	}
	return 0, false
}

// AsInt32 coerces the value to an int32.
func (v Value) AsInt32() (int32, bool) {
	n, ok := v.AsInt64()
	return int32(n), ok
}

// AsInt16 coerces the value to an int16.
func (v Value) AsInt16() (int16, bool) {
	n, ok := v.AsInt64()
	return int16(n), ok
}

// AsInt8 coerces the value to an int8.
func (v Value) AsInt8() (int8, bool) {
	n, ok := v.AsInt64()
	return int8(n), ok
}

// AsInt coerces the value to an int.
func (v Value) AsInt() (int, bool) {
	n, ok := v.AsInt64()
	return int(n), ok
}

// AsUint64 coerces the value to a uint64.
func (v Value) AsUint64() (uint64, bool) {
	p, ok := v.cast()
	if !ok {
		return 0, false
	}
	switch p.kind {
	case kindUint64:
		return p.uint64(), true
	case kindInt64:
		return uint64(p.int64()), true
	case kindFloat64:
		return uint64(p.float64()), true
	}
	return 0, false
}

// AsUint32 coerces the value to a uint32.
func (v Value) AsUint32() (uint32, bool) {
	n, ok := v.AsUint64()
	return uint32(n), ok
}

// AsUint16 coerces the value to a uint16.
func (v Value) AsUint16() (uint16, bool) {
	n, ok := v.AsUint64()
	return uint16(n), ok
}

// AsUint8 coerces the value to a uint8.
func (v Value) AsUint8() (uint8, bool) {
	n, ok := v.AsUint64()
	return uint8(n), ok
}

// AsUint coerces the value to a uint.
func (v Value) AsUint() (uint, bool) {
	n, ok := v.AsUint64()
	return uint(n), ok
}

// AsFloat64 coerces the value to a float64.
func (v Value) AsFloat64() (float64, bool) {
	p, ok := v.cast()
	if !ok {
		return 0, false
	}
	switch p.kind {
	case kindFloat64:
		return p.float64(), true
	case kindInt64:
		return float64(p.int64()), true
	case kindUint64:
		return float64(p.uint64()), true
	}
	return 0, false
}

// AsFloat32 coerces the value to a float32.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.AsFloat64()
	return float32(f), ok
}

// AsBool reports the value as a bool. Only bool captures succeed.
func (v Value) AsBool() (bool, bool) {
	p, ok := v.cast()
	if !ok || p.kind != kindBool {
		return false, false
	}
	return p.boolean(), true
}

// AsRune reports the value as a rune. Only rune captures succeed.
func (v Value) AsRune() (rune, bool) {
	p, ok := v.cast()
	if !ok || p.kind != kindRune {
		return 0, false
	}
	return p.character(), true
}

// AsString reports the value as a string. The capture's string is returned
// as-is, zero copy; this also covers fills that report a string at visit
// time. Erased captures that only format do not coerce — render them with
// String instead.
func (v Value) AsString() (string, bool) {
	p, ok := v.cast()
	if !ok || p.kind != kindString {
		return "", false
	}
	return p.str, true
}

// Downcast recovers the original value behind a Capture* constructor.
//
// It succeeds only when the value was erased by CaptureDebug,
// CaptureDisplay, CaptureError, or CaptureMarshaler and T is the exact
// concrete type that was captured. Values built by From* constructors, and
// captures that short-circuited to a primitive, always report false.
func Downcast[T any](v Value) (T, bool) {
	if v.token != nil {
		if t, ok := v.token.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Is reports whether Downcast[T] would succeed for this value.
func Is[T any](v Value) bool {
	_, ok := Downcast[T](v)
	return ok
}
