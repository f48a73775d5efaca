// Package logkv provides structured value capture for logging pipelines.
//
// A Value is a cheap, type-erased handle to a datum attached to a log event.
// It is built for the hot path of a logging call: capturing a primitive
// (integer, float, bool, rune, string) never allocates and never touches
// formatting machinery, while arbitrary types fall back to debug or display
// formatting that runs only when a backend actually renders the value.
//
// # Capturing values
//
// There are a few ways to capture a value:
//
//	v := logkv.Uint64Value(42)        // explicit primitive constructor
//	v := logkv.AnyValue(user)         // closed type switch over common types
//	v := logkv.CaptureDebug(&widget)  // erased capture, downcast supported
//	v := logkv.FromDebug(&widget)     // erased capture, formatting only
//	v := logkv.FromFill(adapter)      // representation decided at visit time
//
// # Consuming values
//
// Backends pull data back out of a Value in three ways. Coercions are
// best-effort and cheap for primitives:
//
//	if n, ok := v.AsUint64(); ok { ... }
//
// A Visitor receives exactly one callback per visit, preserving the value's
// captured kind:
//
//	err := v.Visit(myVisitor)
//
// And every Value renders as text through fmt.Stringer, using the same
// single-dispatch visit internally:
//
//	fmt.Println(v)
//
// # Lifetime
//
// A Value is intended to be created, visited, and dropped within a single
// logging call. Erased captures hold a reference to the caller's original
// value, so retaining a Value beyond the call that produced it also retains
// whatever it captured.
package logkv
