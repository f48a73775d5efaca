package logkv

import "math"

// kind identifies the active representation of a Value. The low kinds are
// primitives that can be copied without allocating; the rest hold an erased
// reference to the caller's value.
type kind uint8

const (
	kindNone kind = iota
	kindInt64
	kindUint64
	kindFloat64
	kindBool
	kindRune
	kindString

	// Erased kinds. Everything below kindDebug dispatches through the
	// primitive fast path; everything from here on may run caller code.
	kindDebug
	kindDisplay
	kindError
	kindStructured
	kindFill
)

// primitive is a captured scalar. Scalars are packed into a single uint64
// plus a string header so copying a primitive never allocates.
type primitive struct {
	kind kind
	num  uint64
	str  string
}

func int64Primitive(v int64) primitive     { return primitive{kind: kindInt64, num: uint64(v)} }
func uint64Primitive(v uint64) primitive   { return primitive{kind: kindUint64, num: v} }
func float64Primitive(v float64) primitive { return primitive{kind: kindFloat64, num: math.Float64bits(v)} }
func runePrimitive(v rune) primitive       { return primitive{kind: kindRune, num: uint64(uint32(v))} }
func stringPrimitive(v string) primitive   { return primitive{kind: kindString, str: v} }

func boolPrimitive(v bool) primitive {
	var n uint64
	if v {
		n = 1
	}
	return primitive{kind: kindBool, num: n}
}

func (p primitive) int64() int64     { return int64(p.num) }
func (p primitive) uint64() uint64   { return p.num }
func (p primitive) float64() float64 { return math.Float64frombits(p.num) }
func (p primitive) boolean() bool    { return p.num != 0 }
func (p primitive) character() rune  { return rune(uint32(p.num)) }

// visit dispatches the primitive to the single matching visitor method.
func (p primitive) visit(vis Visitor) error {
	switch p.kind {
	case kindInt64:
		return vis.VisitInt64(p.int64())
	case kindUint64:
		return vis.VisitUint64(p.uint64())
	case kindFloat64:
		return vis.VisitFloat64(p.float64())
	case kindBool:
		return vis.VisitBool(p.boolean())
	case kindRune:
		return vis.VisitRune(p.character())
	case kindString:
		return vis.VisitString(p.str)
	default:
		return vis.VisitNone()
	}
}

// toPrimitive captures a value as a primitive when its concrete type is one
// of the known scalar types. Narrower integers widen losslessly; float32
// widens exactly to float64. This is the compile-time answer to the original
// build-generated type-id table: a closed type switch the compiler resolves
// directly.
//
// int32 deliberately widens to int64 rather than a rune: rune is an alias
// for int32, so rune capture has to be opt-in via RuneValue.
func toPrimitive(v any) (primitive, bool) {
	switch v := v.(type) {
	case nil:
		return primitive{}, true
	case bool:
		return boolPrimitive(v), true
	case string:
		return stringPrimitive(v), true
	case int:
		return int64Primitive(int64(v)), true
	case int8:
		return int64Primitive(int64(v)), true
	case int16:
		return int64Primitive(int64(v)), true
	case int32:
		return int64Primitive(int64(v)), true
	case int64:
		return int64Primitive(v), true
	case uint:
		return uint64Primitive(uint64(v)), true
	case uint8:
		return uint64Primitive(uint64(v)), true
	case uint16:
		return uint64Primitive(uint64(v)), true
	case uint32:
		return uint64Primitive(uint64(v)), true
	case uint64:
		return uint64Primitive(v), true
	case float32:
		return float64Primitive(float64(v)), true
	case float64:
		return float64Primitive(v), true
	}
	return primitive{}, false
}
