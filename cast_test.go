package logkv

import (
	"testing"
	"unsafe"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		v := Uint64Value(1)
		if got, ok := v.AsUint8(); !ok || got != 1 {
			t.Errorf("AsUint8() = %v, %v, want 1, true", got, ok)
		}
		if got, ok := v.AsUint16(); !ok || got != 1 {
			t.Errorf("AsUint16() = %v, %v, want 1, true", got, ok)
		}
		if got, ok := v.AsUint32(); !ok || got != 1 {
			t.Errorf("AsUint32() = %v, %v, want 1, true", got, ok)
		}
		if got, ok := v.AsUint64(); !ok || got != 1 {
			t.Errorf("AsUint64() = %v, %v, want 1, true", got, ok)
		}
		if got, ok := v.AsUint(); !ok || got != 1 {
			t.Errorf("AsUint() = %v, %v, want 1, true", got, ok)
		}
	})

	t.Run("signed", func(t *testing.T) {
		v := Int64Value(-1)
		if got, ok := v.AsInt8(); !ok || got != -1 {
			t.Errorf("AsInt8() = %v, %v, want -1, true", got, ok)
		}
		if got, ok := v.AsInt16(); !ok || got != -1 {
			t.Errorf("AsInt16() = %v, %v, want -1, true", got, ok)
		}
		if got, ok := v.AsInt32(); !ok || got != -1 {
			t.Errorf("AsInt32() = %v, %v, want -1, true", got, ok)
		}
		if got, ok := v.AsInt64(); !ok || got != -1 {
			t.Errorf("AsInt64() = %v, %v, want -1, true", got, ok)
		}
		if got, ok := v.AsInt(); !ok || got != -1 {
			t.Errorf("AsInt() = %v, %v, want -1, true", got, ok)
		}
	})

	t.Run("float", func(t *testing.T) {
		if got, ok := Float64Value(1).AsFloat32(); !ok || got != 1 {
			t.Errorf("AsFloat32() = %v, %v, want 1, true", got, ok)
		}
		if got, ok := Float64Value(1).AsFloat64(); !ok || got != 1 {
			t.Errorf("AsFloat64() = %v, %v, want 1, true", got, ok)
		}
	})

	t.Run("bool and rune", func(t *testing.T) {
		if got, ok := BoolValue(true).AsBool(); !ok || !got {
			t.Errorf("AsBool() = %v, %v, want true, true", got, ok)
		}
		if got, ok := RuneValue('a').AsRune(); !ok || got != 'a' {
			t.Errorf("AsRune() = %q, %v, want 'a', true", got, ok)
		}
	})

	t.Run("string", func(t *testing.T) {
		if got, ok := StringValue("a string").AsString(); !ok || got != "a string" {
			t.Errorf("AsString() = %q, %v, want \"a string\", true", got, ok)
		}
	})
}

func TestCrossKindNumericCast(t *testing.T) {
	t.Run("signed to unsigned", func(t *testing.T) {
		if got, ok := Int64Value(1).AsUint32(); !ok || got != 1 {
			t.Errorf("AsUint32() = %v, %v, want 1, true", got, ok)
		}
	})

	t.Run("unsigned to signed", func(t *testing.T) {
		if got, ok := Uint64Value(1).AsInt32(); !ok || got != 1 {
			t.Errorf("AsInt32() = %v, %v, want 1, true", got, ok)
		}
	})

	t.Run("negative wraps like a native conversion", func(t *testing.T) {
		got, ok := Int64Value(-1).AsUint32()
		if want := uint32(0xFFFFFFFF); !ok || got != want {
			t.Errorf("AsUint32() = %v, %v, want %v, true", got, ok, want)
		}
	})

	t.Run("float truncates, never rounds", func(t *testing.T) {
		if got, ok := Float64Value(1.9).AsInt32(); !ok || got != 1 {
			t.Errorf("AsInt32() = %v, %v, want 1, true", got, ok)
		}
	})

	t.Run("integers convert to float", func(t *testing.T) {
		if got, ok := Int64Value(-2).AsFloat64(); !ok || got != -2 {
			t.Errorf("AsFloat64() = %v, %v, want -2, true", got, ok)
		}
	})
}

func TestCoercionMismatchIsAbsence(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		fail func(Value) bool
	}{
		{"string is not a number", StringValue("42"), func(v Value) bool { _, ok := v.AsUint32(); return !ok }},
		{"number is not a bool", Int64Value(1), func(v Value) bool { _, ok := v.AsBool(); return !ok }},
		{"number is not a rune", Int64Value(97), func(v Value) bool { _, ok := v.AsRune(); return !ok }},
		{"debug capture has no primitive", FromDebug(widget{}), func(v Value) bool { _, ok := v.AsInt64(); return !ok }},
		{"display capture has no primitive", FromDisplay(label("9")), func(v Value) bool { _, ok := v.AsInt64(); return !ok }},
		{"none is not a string", NoneValue(), func(v Value) bool { _, ok := v.AsString(); return !ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.fail(tt.v) {
				t.Errorf("coercion unexpectedly succeeded for %v", tt.v)
			}
		})
	}
}

func TestStringCaptureZeroCopy(t *testing.T) {
	s := "hello, a string long enough to matter"

	got, ok := StringValue(s).AsString()
	if !ok || got != s {
		t.Fatalf("AsString() = %q, %v, want %q, true", got, ok, s)
	}
	if unsafe.StringData(got) != unsafe.StringData(s) {
		t.Error("AsString() returned a copy, want the original string's backing data")
	}
}

// Capture constructors must short-circuit known scalars so coercion never
// touches the formatting path.
func TestCaptureShortCircuit(t *testing.T) {
	if got, ok := CaptureDebug(42).AsInt32(); !ok || got != 42 {
		t.Errorf("CaptureDebug(42).AsInt32() = %v, %v, want 42, true", got, ok)
	}
	if got, ok := CaptureDebug(uint64(42)).AsUint32(); !ok || got != 42 {
		t.Errorf("CaptureDebug(42u64).AsUint32() = %v, %v, want 42, true", got, ok)
	}
	if got, ok := CaptureDebug("a string").AsString(); !ok || got != "a string" {
		t.Errorf("CaptureDebug(str).AsString() = %q, %v, want \"a string\", true", got, ok)
	}

	// The non-capturing constructor never short-circuits.
	if _, ok := FromDebug(42).AsInt32(); ok {
		t.Error("FromDebug(42).AsInt32() succeeded, want absence")
	}
}

func TestDowncast(t *testing.T) {
	w := &widget{Name: "gear"}

	t.Run("exact type recovers the original", func(t *testing.T) {
		v := CaptureDebug(w)
		got, ok := Downcast[*widget](v)
		if !ok || got != w {
			t.Errorf("Downcast[*widget]() = %v, %v, want original pointer, true", got, ok)
		}
		if !Is[*widget](v) {
			t.Error("Is[*widget]() = false, want true")
		}
	})

	t.Run("other types report absence", func(t *testing.T) {
		v := CaptureDebug(w)
		if _, ok := Downcast[widget](v); ok {
			t.Error("Downcast[widget]() succeeded, want absence for non-pointer type")
		}
		if _, ok := Downcast[string](v); ok {
			t.Error("Downcast[string]() succeeded, want absence")
		}
	})

	t.Run("from constructors never downcast", func(t *testing.T) {
		if _, ok := Downcast[*widget](FromDebug(w)); ok {
			t.Error("Downcast on FromDebug value succeeded, want absence")
		}
	})

	t.Run("short-circuited primitives never downcast", func(t *testing.T) {
		if _, ok := Downcast[int](CaptureDebug(42)); ok {
			t.Error("Downcast on primitive capture succeeded, want absence")
		}
	})

	t.Run("capture display and error", func(t *testing.T) {
		l := label("tag")
		if got, ok := Downcast[label](CaptureDisplay(l)); !ok || got != l {
			t.Errorf("Downcast[label]() = %v, %v, want %v, true", got, ok, l)
		}
	})
}

// neverFormat panics if its String method runs, proving primitives never
// invoke formatting machinery during coercion.
type neverFormat struct{}

func (neverFormat) String() string { panic("formatting invoked for a primitive") }

func TestPrimitiveCoercionSkipsFormatting(t *testing.T) {
	// A primitive capture resolves without a visit at all; this must hold
	// even when the capture came through the short-circuit.
	v := CaptureDebug(uint8(7))
	if got, ok := v.AsUint64(); !ok || got != 7 {
		t.Fatalf("AsUint64() = %v, %v, want 7, true", got, ok)
	}

	// Sanity-check the guard type actually panics when formatted.
	defer func() {
		if recover() == nil {
			t.Error("neverFormat.String() did not panic")
		}
	}()
	_ = FromDisplay(neverFormat{}).String()
}
