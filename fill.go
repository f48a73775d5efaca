package logkv

import (
	"encoding/json"
	"fmt"
)

// Filler defers a value's representation to visit time.
//
// Adapters bridging other logging ecosystems often cannot decide how to
// represent a value until they already hold a visitor. A Filler captured via
// FromFill receives a fresh Slot on every visit and must call exactly one of
// its fill methods.
type Filler interface {
	// Fill writes a single value into the slot. Implementations must call
	// exactly one fill method; a second call panics.
	Fill(slot *Slot) error
}

// Slot is the one-shot target a Filler writes into. It wraps the visitor of
// the visit that is currently in progress.
//
// At most one fill call may succeed per Slot. A second call is a bug in the
// adapter, not a data condition, and panics rather than returning an error:
// the deferred-fill protocol has no way to represent an overwritten value
// inside a single log call.
type Slot struct {
	visitor Visitor
	filled  bool
}

func (s *Slot) fill(fn func(Visitor) error) error {
	if s.filled {
		panic("logkv: slot already filled")
	}
	s.filled = true
	return fn(s.visitor)
}

// FillAny fills the slot by capturing v the same way AnyValue would.
func (s *Slot) FillAny(v any) error {
	return s.fill(func(vis Visitor) error { return AnyValue(v).Visit(vis) })
}

// FillValue fills the slot with an already-captured Value.
func (s *Slot) FillValue(v Value) error {
	return s.fill(func(vis Visitor) error { return v.Visit(vis) })
}

// FillDebug fills the slot with a value to be debug-formatted.
func (s *Slot) FillDebug(v any) error {
	return s.fill(func(vis Visitor) error { return vis.VisitDebug(v) })
}

// FillDisplay fills the slot with a displayable value.
func (s *Slot) FillDisplay(v fmt.Stringer) error {
	return s.fill(func(vis Visitor) error { return visitDisplay(vis, v) })
}

// FillError fills the slot with an error.
func (s *Slot) FillError(err error) error {
	return s.fill(func(vis Visitor) error { return visitError(vis, err) })
}

// FillMarshaler fills the slot with a value carrying its own serialized form.
func (s *Slot) FillMarshaler(v json.Marshaler) error {
	return s.fill(func(vis Visitor) error { return visitStructured(vis, v) })
}
