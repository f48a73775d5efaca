package logkv

import "testing"

var (
	benchValue  Value
	benchUint   uint64
	benchOK     bool
	benchString string
)

func BenchmarkUint64Value(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchValue = Uint64Value(1)
	}
}

func BenchmarkAnyValueInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchValue = AnyValue(42)
	}
}

func BenchmarkAnyValueString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchValue = AnyValue("a string")
	}
}

func BenchmarkCaptureDebugStruct(b *testing.B) {
	w := &widget{Name: "gear"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchValue = CaptureDebug(w)
	}
}

func BenchmarkAsUint64Primitive(b *testing.B) {
	v := Uint64Value(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchUint, benchOK = v.AsUint64()
	}
}

func BenchmarkAsUint64Fill(b *testing.B) {
	v := FromFill(fillSigned{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchUint, benchOK = v.AsUint64()
	}
}

func BenchmarkStringPrimitive(b *testing.B) {
	v := Uint64Value(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchString = v.String()
	}
}

func BenchmarkStringDebug(b *testing.B) {
	v := FromDebug(widget{Name: "gear"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchString = v.String()
	}
}

func BenchmarkVisitPrimitive(b *testing.B) {
	v := Uint64Value(42)
	var vis castVisitor
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Visit(&vis)
	}
}
