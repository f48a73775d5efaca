package logkv

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/willibrandon/logkv/selflog"
)

// Visitor is the contract a Value announces itself through. Visiting a Value
// calls exactly one method, exactly once, synchronously.
//
// VisitDebug is the mandatory universal fallback: every erased value can at
// minimum be formatted, so there is no "unsupported type" error anywhere in
// this package. The argument is formatted with the %+v verb when rendered.
//
// Visitors that can do better than formatting for displayable, error, or
// structured values additionally implement DisplayVisitor, ErrorVisitor, or
// StructuredVisitor; dispatch upgrades to those methods when present.
type Visitor interface {
	VisitInt64(v int64) error
	VisitUint64(v uint64) error
	VisitFloat64(v float64) error
	VisitBool(v bool) error
	VisitRune(v rune) error
	VisitString(v string) error
	VisitNone() error
	VisitDebug(v any) error
}

// DisplayVisitor is an optional Visitor upgrade for values captured from a
// fmt.Stringer. Without it the value's rendered text goes to VisitDebug.
type DisplayVisitor interface {
	VisitDisplay(v fmt.Stringer) error
}

// ErrorVisitor is an optional Visitor upgrade for captured errors. Without
// it the error goes to VisitDebug.
type ErrorVisitor interface {
	VisitError(err error) error
}

// StructuredVisitor is an optional Visitor upgrade for values that carry
// their own serialized form. Without it the value is marshaled once and the
// raw JSON text goes to VisitDebug.
type StructuredVisitor interface {
	VisitStructured(v json.Marshaler) error
}

func visitDisplay(vis Visitor, v fmt.Stringer) error {
	if dv, ok := vis.(DisplayVisitor); ok {
		return dv.VisitDisplay(v)
	}
	return vis.VisitDebug(v.String())
}

func visitError(vis Visitor, err error) error {
	if ev, ok := vis.(ErrorVisitor); ok {
		return ev.VisitError(err)
	}
	return vis.VisitDebug(err)
}

func visitStructured(vis Visitor, v json.Marshaler) error {
	if sv, ok := vis.(StructuredVisitor); ok {
		return sv.VisitStructured(v)
	}
	b, err := v.MarshalJSON()
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[value] structured marshal failed: %v", err)
		}
		return err
	}
	return vis.VisitDebug(string(b))
}

// fmtVisitor renders a value as text. It backs Value.String and keeps the
// rendering rules in one place: strings and runes are quoted, absent values
// render as nil, and erased captures format with %+v.
type fmtVisitor struct {
	w io.Writer
}

func (f *fmtVisitor) VisitInt64(v int64) error {
	_, err := fmt.Fprintf(f.w, "%d", v)
	return err
}

func (f *fmtVisitor) VisitUint64(v uint64) error {
	_, err := fmt.Fprintf(f.w, "%d", v)
	return err
}

func (f *fmtVisitor) VisitFloat64(v float64) error {
	_, err := fmt.Fprintf(f.w, "%v", v)
	return err
}

func (f *fmtVisitor) VisitBool(v bool) error {
	_, err := fmt.Fprintf(f.w, "%t", v)
	return err
}

func (f *fmtVisitor) VisitRune(v rune) error {
	_, err := fmt.Fprintf(f.w, "%q", v)
	return err
}

func (f *fmtVisitor) VisitString(v string) error {
	_, err := fmt.Fprintf(f.w, "%q", v)
	return err
}

func (f *fmtVisitor) VisitNone() error {
	_, err := io.WriteString(f.w, "nil")
	return err
}

func (f *fmtVisitor) VisitDebug(v any) error {
	_, err := fmt.Fprintf(f.w, "%+v", v)
	return err
}

func (f *fmtVisitor) VisitDisplay(v fmt.Stringer) error {
	_, err := io.WriteString(f.w, v.String())
	return err
}

func (f *fmtVisitor) VisitError(err error) error {
	_, werr := io.WriteString(f.w, err.Error())
	return werr
}
